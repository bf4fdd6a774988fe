package analytics

import (
	"context"

	"recommender-backend/internal/results"
)

type store interface {
	Summary(ctx context.Context) (Summary, error)
	TopChampions(ctx context.Context, limit int) ([]ChampionCount, error)
	RoleDistribution(ctx context.Context) ([]RoleCount, error)
}

// Service reports aggregates over persisted recommendation results.
type Service struct {
	store store
}

// NewService constructs a Service over the in-memory results repo.
func NewService(repo *results.MemoryRepo) *Service {
	return &Service{store: &memoryStore{repo: repo}}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

func (s *Service) Summary(ctx context.Context) (Summary, error) {
	return s.store.Summary(ctx)
}

func (s *Service) TopChampions(ctx context.Context, limit int) ([]ChampionCount, error) {
	if limit <= 0 || limit > 50 {
		limit = 10
	}
	return s.store.TopChampions(ctx, limit)
}

func (s *Service) RoleDistribution(ctx context.Context) ([]RoleCount, error) {
	return s.store.RoleDistribution(ctx)
}
