package recommend

import "math"

// ConfidenceModel converts a raw score into a display confidence percentage.
// The shipped constants reproduce the three historical call paths exactly;
// they are configuration, not behavior, and can be retuned independently.
type ConfidenceModel struct {
	Multiplier float64
	Min        int
	Max        int
}

// Apply scales and clamps a raw score.
func (m ConfidenceModel) Apply(score float64) int {
	v := int(math.Round(score * m.Multiplier))
	if v < m.Min {
		return m.Min
	}
	if v > m.Max {
		return m.Max
	}
	return v
}

// Config carries the tunable constants of the engine. The factor and profile
// paths produce scores on different scales (roughly 0-1 vs 0-100), which is
// why each path has its own confidence model; the asymmetry is inherited,
// documented behavior.
type Config struct {
	// FactorConfidence applies to best-pick champions with matching factors.
	FactorConfidence ConfidenceModel
	// ProfileConfidence applies to best-pick champions scored from their
	// numeric profile.
	ProfileConfidence ConfidenceModel
	// AlternativeConfidence applies to every candidate on the alternatives
	// path, regardless of scorer.
	AlternativeConfidence ConfidenceModel

	// FactorNorm divides the weighted factor average into the 0-10ish range.
	FactorNorm float64
	// RoleBonus is added by the profile path on an exact role match.
	RoleBonus float64
	// DifficultyScale multiplies the profile path's difficulty closeness.
	DifficultyScale float64
}

// DefaultConfig returns the constants of the original engine.
func DefaultConfig() Config {
	return Config{
		FactorConfidence:      ConfidenceModel{Multiplier: 100, Min: 0, Max: 95},
		ProfileConfidence:     ConfidenceModel{Multiplier: 2, Min: 60, Max: 95},
		AlternativeConfidence: ConfidenceModel{Multiplier: 1.8, Min: 55, Max: 90},
		FactorNorm:            10,
		RoleBonus:             25,
		DifficultyScale:       2,
	}
}
