package analytics

import "time"

// Summary is the aggregate view over all stored recommendation results.
type Summary struct {
	TotalResults   int       `json:"totalResults"`
	UniqueSessions int       `json:"uniqueSessions"`
	AvgConfidence  float64   `json:"avgConfidence"`
	AvgScore       float64   `json:"avgScore"`
	FirstResultAt  time.Time `json:"firstResultAt,omitempty"`
	LastResultAt   time.Time `json:"lastResultAt,omitempty"`
}

// ChampionCount is one row of the most-recommended-champions report.
type ChampionCount struct {
	Name          string  `json:"name"`
	Role          string  `json:"role"`
	Count         int     `json:"count"`
	AvgConfidence float64 `json:"avgConfidence"`
}

// RoleCount is one row of the role-distribution report.
type RoleCount struct {
	Role  string `json:"role"`
	Count int    `json:"count"`
}
