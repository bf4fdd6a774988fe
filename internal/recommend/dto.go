package recommend

import (
	"recommender-backend/internal/catalog"
	"recommender-backend/internal/questionnaire"
)

type recommendRequest struct {
	Answers questionnaire.AnswerSet `json:"answers" binding:"required"`
}

type championPayload struct {
	Name        string             `json:"name"`
	Title       string             `json:"title,omitempty"`
	Role        string             `json:"role"`
	Difficulty  int                `json:"difficulty"`
	Attributes  catalog.Attributes `json:"attributes"`
	Description string             `json:"description,omitempty"`
}

type candidatePayload struct {
	Champion    championPayload `json:"champion"`
	Score       float64         `json:"score"`
	Confidence  int             `json:"confidence"`
	Explanation string          `json:"explanation"`
}

type recommendResponse struct {
	SessionID      string             `json:"sessionId"`
	ResultID       string             `json:"resultId,omitempty"`
	Recommendation candidatePayload   `json:"recommendation"`
	Alternatives   []candidatePayload `json:"alternatives"`
}

func toChampionPayload(champ catalog.Champion) championPayload {
	return championPayload{
		Name:        champ.Name,
		Title:       champ.Title,
		Role:        champ.Role,
		Difficulty:  champ.Difficulty,
		Attributes:  champ.Attributes,
		Description: champ.Description,
	}
}
