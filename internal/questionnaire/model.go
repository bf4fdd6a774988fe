package questionnaire

// AnswerSet maps question ID to the chosen option value. It is built
// incrementally by callers and treated as read-only by the engine.
type AnswerSet map[int]string

// Option is one permitted answer for a question. Dim and Level feed the
// numeric preference profile used by champions without matching factors:
// Level overrides the named dimension (or the difficulty preference when Dim
// is empty on a difficulty question).
type Option struct {
	Value       string `json:"value"`
	Text        string `json:"text"`
	Description string `json:"description,omitempty"`
	Dim         string `json:"dim,omitempty"`
	Level       int    `json:"level,omitempty"`
}

// Question is one questionnaire item. Category addresses the champions'
// matching-factor tables; Weight is an arbitrary positive multiplier.
type Question struct {
	ID       int      `json:"id"`
	Text     string   `json:"text"`
	Category string   `json:"category"`
	Weight   float64  `json:"weight"`
	Options  []Option `json:"options"`
}

// Option returns the option with the given value, if declared.
func (q Question) Option(value string) (Option, bool) {
	for _, opt := range q.Options {
		if opt.Value == value {
			return opt, true
		}
	}
	return Option{}, false
}

// Preference is the numeric profile derived from an answer set, consumed by
// the fallback scoring path. Dimensions default to 5 when no answered
// question addresses them, matching the original engine's defaults.
type Preference struct {
	Role       string
	Difficulty int
	Damage     int
	Toughness  int
	Control    int
	Mobility   int
	Utility    int
}

// Dim returns the preference value for a named dimension, 0 for unknown names.
func (p Preference) Dim(name string) int {
	switch name {
	case "damage":
		return p.Damage
	case "toughness":
		return p.Toughness
	case "control":
		return p.Control
	case "mobility":
		return p.Mobility
	case "utility":
		return p.Utility
	default:
		return 0
	}
}

func (p *Preference) setDim(name string, value int) {
	switch name {
	case "damage":
		p.Damage = value
	case "toughness":
		p.Toughness = value
	case "control":
		p.Control = value
	case "mobility":
		p.Mobility = value
	case "utility":
		p.Utility = value
	}
}
