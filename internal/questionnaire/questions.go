package questionnaire

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed data/questions.json
var questionsJSON []byte

const (
	// CategoryRole is the category whose answer names a champion role.
	CategoryRole = "rolePreference"
	// CategoryDifficulty is the category feeding the difficulty preference.
	CategoryDifficulty = "difficulty"

	defaultPreferenceLevel = 5
)

// Questionnaire is the immutable, ordered set of questions presented to the
// user. Loaded once at process start.
type Questionnaire struct {
	ordered []Question
	byID    map[int]Question
}

type questionFile struct {
	Questions []Question `json:"questions"`
}

// Load parses the embedded question data.
func Load() (*Questionnaire, error) {
	var file questionFile
	if err := json.Unmarshal(questionsJSON, &file); err != nil {
		return nil, fmt.Errorf("parse embedded question data: %w", err)
	}
	return New(file.Questions)
}

// New builds a questionnaire from questions in presentation order.
func New(questions []Question) (*Questionnaire, error) {
	q := &Questionnaire{
		ordered: make([]Question, 0, len(questions)),
		byID:    make(map[int]Question, len(questions)),
	}
	for _, question := range questions {
		if question.Weight <= 0 {
			return nil, fmt.Errorf("question %d: weight must be positive, got %v", question.ID, question.Weight)
		}
		if question.Category == "" {
			return nil, fmt.Errorf("question %d: category is required", question.ID)
		}
		if len(question.Options) == 0 {
			return nil, fmt.Errorf("question %d: at least one option is required", question.ID)
		}
		if _, ok := q.byID[question.ID]; ok {
			return nil, fmt.Errorf("question %d: duplicate id", question.ID)
		}
		q.byID[question.ID] = question
		q.ordered = append(q.ordered, question)
	}
	return q, nil
}

// All returns questions in presentation order. Callers must not modify the
// returned slice.
func (q *Questionnaire) All() []Question {
	return q.ordered
}

// ByID returns the question with the given ID.
func (q *Questionnaire) ByID(id int) (Question, bool) {
	question, ok := q.byID[id]
	return question, ok
}

// ByCategory returns the first question tagged with the given category.
func (q *Questionnaire) ByCategory(category string) (Question, bool) {
	for _, question := range q.ordered {
		if question.Category == category {
			return question, true
		}
	}
	return Question{}, false
}

// Len returns the number of questions.
func (q *Questionnaire) Len() int {
	return len(q.ordered)
}

// ValidAnswer reports whether value is a declared option of the question.
// Unknown questions and undeclared values are simply invalid, never an error:
// answers may arrive from loosely validated input and the engine fails closed.
func (q *Questionnaire) ValidAnswer(questionID int, value string) bool {
	question, ok := q.byID[questionID]
	if !ok {
		return false
	}
	_, ok = question.Option(value)
	return ok
}

// Answer resolves an answer set entry to its declared option.
func (q *Questionnaire) Answer(answers AnswerSet, questionID int) (Option, bool) {
	value, ok := answers[questionID]
	if !ok {
		return Option{}, false
	}
	question, ok := q.byID[questionID]
	if !ok {
		return Option{}, false
	}
	return question.Option(value)
}

// Preferences derives the numeric preference profile for the fallback scoring
// path. All dimensions and the difficulty start at the neutral default and
// are overridden by the Dim/Level metadata of valid chosen options; the role
// comes from the rolePreference answer. Invalid answer values are skipped.
func (q *Questionnaire) Preferences(answers AnswerSet) Preference {
	pref := Preference{
		Difficulty: defaultPreferenceLevel,
		Damage:     defaultPreferenceLevel,
		Toughness:  defaultPreferenceLevel,
		Control:    defaultPreferenceLevel,
		Mobility:   defaultPreferenceLevel,
		Utility:    defaultPreferenceLevel,
	}
	for _, question := range q.ordered {
		value, ok := answers[question.ID]
		if !ok {
			continue
		}
		opt, ok := question.Option(value)
		if !ok {
			continue
		}
		if question.Category == CategoryRole {
			pref.Role = opt.Value
			continue
		}
		if opt.Level == 0 {
			continue
		}
		if question.Category == CategoryDifficulty && opt.Dim == "" {
			pref.Difficulty = opt.Level
			continue
		}
		if opt.Dim != "" {
			pref.setDim(opt.Dim, opt.Level)
		}
	}
	return pref
}
