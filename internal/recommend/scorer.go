package recommend

import (
	"math"

	"recommender-backend/internal/catalog"
	"recommender-backend/internal/questionnaire"
)

// scorer computes one champion's raw score for an answer set. The
// implementation is selected once per champion when the engine is built:
// champions with matching factors use the factor table, the rest fall back to
// their numeric profile. Both are pure and safe for concurrent use.
type scorer interface {
	Score(answers questionnaire.AnswerSet) float64
}

// factorScorer is the primary path: a weighted average over the questionnaire
// using the champion's per-category match weights.
type factorScorer struct {
	champ     catalog.Champion
	questions *questionnaire.Questionnaire
	norm      float64
}

func (s factorScorer) Score(answers questionnaire.AnswerSet) float64 {
	var num, den float64
	for _, q := range s.questions.All() {
		answer, ok := answers[q.ID]
		if !ok {
			continue
		}
		// Undeclared answer values and missing factor rows both contribute
		// zero; payloads may come from untrusted input.
		w, ok := s.champ.FactorFor(q.Category, answer)
		if !ok {
			continue
		}
		num += float64(w) * q.Weight
		den += q.Weight
	}
	if den <= 0 {
		return 0
	}
	return num / den / s.norm
}

// profileScorer is the fallback path for champions without curated match
// data: a global heuristic over the numeric profile, not a per-question sum.
type profileScorer struct {
	champ           catalog.Champion
	questions       *questionnaire.Questionnaire
	roleBonus       float64
	difficultyScale float64
}

func (s profileScorer) Score(answers questionnaire.AnswerSet) float64 {
	if len(answers) == 0 {
		return 0
	}
	pref := s.questions.Preferences(answers)

	var score float64
	if pref.Role != "" && pref.Role == s.champ.Role {
		score += s.roleBonus
	}

	closeness := 10 - math.Abs(float64(pref.Difficulty-s.champ.Difficulty))
	if closeness > 0 {
		score += closeness * s.difficultyScale
	}

	for _, dim := range profileDims {
		score += float64(s.champ.Attributes.Dim(dim)) * float64(pref.Dim(dim)) / 10
	}
	return score
}

var profileDims = []string{"damage", "toughness", "control", "mobility", "utility"}
