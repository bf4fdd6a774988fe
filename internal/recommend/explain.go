package recommend

import (
	"fmt"
	"strings"

	"recommender-backend/internal/catalog"
	"recommender-backend/internal/questionnaire"
)

const (
	// Factor weights at or above this value are strong enough to call out.
	explainThreshold = 8

	confidenceExcellent = 85
	confidenceGood      = 70
)

// explainCategories lists question categories notable enough to name in an
// explanation, with the clause template for each.
var explainCategories = []struct {
	category string
	clause   func(answer string) string
}{
	{questionnaire.CategoryRole, func(a string) string {
		return fmt.Sprintf("Perfect role alignment with %s champions.", a)
	}},
	{questionnaire.CategoryDifficulty, func(a string) string {
		return fmt.Sprintf("Matches your preference for %s champions.", strings.ToLower(a))
	}},
	{"gameplay", func(a string) string {
		return fmt.Sprintf("Excels in %s.", strings.ToLower(a))
	}},
	{"abilities", func(a string) string {
		return fmt.Sprintf("Strong %s capabilities.", strings.ToLower(a))
	}},
}

// Explain builds the human-readable rationale for a recommendation. Output is
// deterministic for identical input and always non-empty. Presentation only,
// it never feeds back into scoring.
func (e *Engine) Explain(champ catalog.Champion, answers questionnaire.AnswerSet, confidence int) string {
	var clauses []string
	if champ.HasMatchingFactors() {
		clauses = e.factorClauses(champ, answers)
	} else {
		clauses = e.profileClauses(champ, answers)
	}

	if len(clauses) == 0 {
		clauses = append(clauses, fmt.Sprintf("%s is recommended based on your questionnaire responses.", champ.Name))
	}

	switch {
	case confidence >= confidenceExcellent:
		clauses = append(clauses, "This is an excellent match based on your preferences!")
	case confidence >= confidenceGood:
		clauses = append(clauses, "This champion should work well for your playstyle.")
	default:
		clauses = append(clauses, "This champion might be worth trying based on your answers.")
	}

	return strings.Join(clauses, " ")
}

func (e *Engine) factorClauses(champ catalog.Champion, answers questionnaire.AnswerSet) []string {
	var clauses []string
	for _, ec := range explainCategories {
		question, ok := e.questions.ByCategory(ec.category)
		if !ok {
			continue
		}
		answer, ok := answers[question.ID]
		if !ok {
			continue
		}
		if weight, ok := champ.FactorFor(ec.category, answer); ok && weight >= explainThreshold {
			clauses = append(clauses, ec.clause(answer))
		}
	}
	return clauses
}

func (e *Engine) profileClauses(champ catalog.Champion, answers questionnaire.AnswerSet) []string {
	prefs := e.questions.Preferences(answers)

	var clauses []string
	if prefs.Role != "" && prefs.Role == champ.Role {
		clauses = append(clauses, fmt.Sprintf("Perfect role match, you wanted %s and %s is exactly that.", prefs.Role, champ.Name))
	}
	if abs(prefs.Difficulty-champ.Difficulty) <= 2 {
		clauses = append(clauses, fmt.Sprintf("%s fits your preferred difficulty level.", champ.Name))
	}
	if abs(prefs.Damage-champ.Attributes.Damage) <= 2 {
		clauses = append(clauses, fmt.Sprintf("%s delivers the damage output you're looking for.", champ.Name))
	}
	if abs(prefs.Toughness-champ.Attributes.Toughness) <= 2 {
		clauses = append(clauses, "Strong survivability match for your playstyle.")
	}
	return clauses
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
