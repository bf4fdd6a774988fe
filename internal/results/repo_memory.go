package results

import (
	"context"
	"sort"
	"sync"
)

type MemoryRepo struct {
	mu      sync.RWMutex
	results map[string]Result
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{results: make(map[string]Result)}
}

func (r *MemoryRepo) Create(ctx context.Context, result Result) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.results[result.ID] = result
	return nil
}

func (r *MemoryRepo) GetByID(ctx context.Context, resultID string) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	result, ok := r.results[resultID]
	if !ok {
		return Result{}, ErrNotFound
	}
	return result, nil
}

func (r *MemoryRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]Result, 0)
	for _, result := range r.results {
		if result.SessionID == sessionID {
			matched = append(matched, result)
		}
	}
	sortNewestFirst(matched)

	if offset >= len(matched) {
		return []Result{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

// All returns every stored result, newest first. Used by the in-memory
// analytics store; the Repo interface deliberately does not expose it.
func (r *MemoryRepo) All(ctx context.Context) ([]Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]Result, 0, len(r.results))
	for _, result := range r.results {
		all = append(all, result)
	}
	sortNewestFirst(all)
	return all, nil
}

func sortNewestFirst(results []Result) {
	sort.Slice(results, func(i, j int) bool {
		if results[i].CreatedAt.Equal(results[j].CreatedAt) {
			return results[i].ID < results[j].ID
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})
}
