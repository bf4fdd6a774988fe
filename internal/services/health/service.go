package health

import "database/sql"

// Service encapsulates health-related checks.
type Service struct {
	db *sql.DB
}

// NewService constructs a new health service. db may be nil when the process
// runs on in-memory repositories.
func NewService(db *sql.DB) *Service {
	return &Service{db: db}
}

// Status returns a simple health payload.
func (s *Service) Status() map[string]any {
	storage := "memory"
	if s != nil && s.db != nil {
		storage = "postgres"
		if err := s.db.Ping(); err != nil {
			storage = "degraded"
		}
	}
	return map[string]any{"ok": true, "storage": storage}
}
