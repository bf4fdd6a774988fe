package analytics

import (
	"context"
	"sort"

	"recommender-backend/internal/results"
)

// memoryStore derives aggregates by scanning the in-memory results repo.
// Fine for the dev setup it serves; the Postgres store aggregates in SQL.
type memoryStore struct {
	repo *results.MemoryRepo
}

func (s *memoryStore) Summary(ctx context.Context) (Summary, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return Summary{}, err
	}
	if len(all) == 0 {
		return Summary{}, nil
	}

	sessions := make(map[string]struct{})
	var summary Summary
	var confidenceSum, scoreSum float64
	for _, r := range all {
		sessions[r.SessionID] = struct{}{}
		confidenceSum += float64(r.Confidence)
		scoreSum += r.Score
		if summary.FirstResultAt.IsZero() || r.CreatedAt.Before(summary.FirstResultAt) {
			summary.FirstResultAt = r.CreatedAt
		}
		if r.CreatedAt.After(summary.LastResultAt) {
			summary.LastResultAt = r.CreatedAt
		}
	}
	summary.TotalResults = len(all)
	summary.UniqueSessions = len(sessions)
	summary.AvgConfidence = confidenceSum / float64(len(all))
	summary.AvgScore = scoreSum / float64(len(all))
	return summary, nil
}

func (s *memoryStore) TopChampions(ctx context.Context, limit int) ([]ChampionCount, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	byName := make(map[string]*ChampionCount)
	confidence := make(map[string]float64)
	for _, r := range all {
		row, ok := byName[r.ChampionName]
		if !ok {
			row = &ChampionCount{Name: r.ChampionName, Role: r.ChampionRole}
			byName[r.ChampionName] = row
		}
		row.Count++
		confidence[r.ChampionName] += float64(r.Confidence)
	}

	out := make([]ChampionCount, 0, len(byName))
	for name, row := range byName {
		row.AvgConfidence = confidence[name] / float64(row.Count)
		out = append(out, *row)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Name < out[j].Name
		}
		return out[i].Count > out[j].Count
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *memoryStore) RoleDistribution(ctx context.Context) ([]RoleCount, error) {
	all, err := s.repo.All(ctx)
	if err != nil {
		return nil, err
	}

	byRole := make(map[string]int)
	for _, r := range all {
		byRole[r.ChampionRole]++
	}
	out := make([]RoleCount, 0, len(byRole))
	for role, count := range byRole {
		out = append(out, RoleCount{Role: role, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count == out[j].Count {
			return out[i].Role < out[j].Role
		}
		return out[i].Count > out[j].Count
	})
	return out, nil
}
