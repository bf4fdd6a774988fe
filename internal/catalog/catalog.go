package catalog

import (
	"fmt"

	"recommender-backend/internal/shared/telemetry"
)

// Catalog is an immutable, ordered collection of champions. Insertion order is
// preserved and serves as the deterministic tiebreak for ranking.
type Catalog struct {
	ordered []Champion
	index   map[string]int
}

// New builds a catalog from champions in load order. Duplicate names follow a
// last-write-wins policy: the later definition replaces the earlier one while
// keeping its original position. Each collision is logged, since duplicates
// are a data-quality defect in the source rather than a feature.
func New(champions []Champion) (*Catalog, error) {
	c := &Catalog{
		ordered: make([]Champion, 0, len(champions)),
		index:   make(map[string]int, len(champions)),
	}
	for _, champ := range champions {
		if champ.Name == "" {
			return nil, fmt.Errorf("champion with empty name")
		}
		if !validRole(champ.Role) {
			return nil, fmt.Errorf("champion %q: unknown role %q", champ.Name, champ.Role)
		}
		if champ.Difficulty < 1 || champ.Difficulty > 10 {
			return nil, fmt.Errorf("champion %q: difficulty %d out of range 1-10", champ.Name, champ.Difficulty)
		}
		if at, ok := c.index[champ.Name]; ok {
			telemetry.Warn("catalog.duplicate", map[string]any{
				"champion": champ.Name,
				"policy":   "last_wins",
			})
			c.ordered[at] = champ
			continue
		}
		c.index[champ.Name] = len(c.ordered)
		c.ordered = append(c.ordered, champ)
	}
	return c, nil
}

// Get returns the champion with the given name.
func (c *Catalog) Get(name string) (Champion, bool) {
	at, ok := c.index[name]
	if !ok {
		return Champion{}, false
	}
	return c.ordered[at], true
}

// All returns champions in insertion order. Callers must not modify the
// returned slice.
func (c *Catalog) All() []Champion {
	return c.ordered
}

// Len returns the number of distinct champions.
func (c *Catalog) Len() int {
	return len(c.ordered)
}
