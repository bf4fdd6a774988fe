package results

import "time"

// Result is one persisted recommendation outcome, keyed by the session that
// produced it.
type Result struct {
	ID           string         `json:"id"`
	SessionID    string         `json:"sessionId"`
	ChampionName string         `json:"championName"`
	ChampionRole string         `json:"championRole"`
	Score        float64        `json:"score"`
	Confidence   int            `json:"confidence"`
	Explanation  string         `json:"explanation"`
	AnswersHash  string         `json:"answersHash"`
	Answers      map[int]string `json:"answers"`
	CreatedAt    time.Time      `json:"createdAt"`
}
