package catalog

// Roles recognized by the catalog. Every champion resolves to exactly one.
const (
	RoleTank     = "Tank"
	RoleFighter  = "Fighter"
	RoleAssassin = "Assassin"
	RoleMage     = "Mage"
	RoleMarksman = "Marksman"
	RoleSupport  = "Support"
)

// Ability describes one champion ability. Display-only, never scored.
type Ability struct {
	Key         string `json:"key"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Attributes is the five-dimensional numeric profile of a champion.
// A zero value for a dimension means zero contribution, never an error.
type Attributes struct {
	Damage    int `json:"damage"`
	Toughness int `json:"toughness"`
	Control   int `json:"control"`
	Mobility  int `json:"mobility"`
	Utility   int `json:"utility"`
}

// Dim returns the value for a named dimension, 0 for unknown names.
func (a Attributes) Dim(name string) int {
	switch name {
	case "damage":
		return a.Damage
	case "toughness":
		return a.Toughness
	case "control":
		return a.Control
	case "mobility":
		return a.Mobility
	case "utility":
		return a.Utility
	default:
		return 0
	}
}

// Champion is one recommendable entry in the catalog. Name doubles as the
// lookup key. MatchingFactors maps question category -> answer value -> weight
// and is only present for champions with curated match data.
type Champion struct {
	Name            string                    `json:"name"`
	Title           string                    `json:"title,omitempty"`
	Role            string                    `json:"role"`
	Difficulty      int                       `json:"difficulty"`
	Tags            []string                  `json:"tags,omitempty"`
	Attributes      Attributes                `json:"attributes"`
	Description     string                    `json:"description,omitempty"`
	Abilities       []Ability                 `json:"abilities,omitempty"`
	MatchingFactors map[string]map[string]int `json:"matchingFactors,omitempty"`
}

// HasMatchingFactors reports whether the champion carries curated match data.
func (c Champion) HasMatchingFactors() bool {
	return len(c.MatchingFactors) > 0
}

// FactorFor looks up the matching weight for a (category, answer) pair.
// The second return is false when either level of the table is missing.
func (c Champion) FactorFor(category, answer string) (int, bool) {
	byAnswer, ok := c.MatchingFactors[category]
	if !ok {
		return 0, false
	}
	w, ok := byAnswer[answer]
	return w, ok
}

func validRole(role string) bool {
	switch role {
	case RoleTank, RoleFighter, RoleAssassin, RoleMage, RoleMarksman, RoleSupport:
		return true
	default:
		return false
	}
}
