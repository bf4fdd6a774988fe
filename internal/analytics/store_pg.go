package analytics

import (
	"context"
	"database/sql"
)

type pgStore struct {
	DB *sql.DB
}

// NewPGStore constructs a Postgres-backed analytics store.
func NewPGStore(db *sql.DB) *pgStore {
	return &pgStore{DB: db}
}

func (s *pgStore) Summary(ctx context.Context) (Summary, error) {
	const query = `
SELECT count(*),
       count(DISTINCT session_id),
       coalesce(avg(confidence), 0),
       coalesce(avg(score), 0),
       min(created_at),
       max(created_at)
FROM results`
	var summary Summary
	var first, last sql.NullTime
	err := s.DB.QueryRowContext(ctx, query).Scan(
		&summary.TotalResults,
		&summary.UniqueSessions,
		&summary.AvgConfidence,
		&summary.AvgScore,
		&first,
		&last,
	)
	if err != nil {
		return Summary{}, err
	}
	if first.Valid {
		summary.FirstResultAt = first.Time
	}
	if last.Valid {
		summary.LastResultAt = last.Time
	}
	return summary, nil
}

func (s *pgStore) TopChampions(ctx context.Context, limit int) ([]ChampionCount, error) {
	const query = `
SELECT champion_name, champion_role, count(*), avg(confidence)
FROM results
GROUP BY champion_name, champion_role
ORDER BY count(*) DESC, champion_name
LIMIT $1`
	rows, err := s.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]ChampionCount, 0)
	for rows.Next() {
		var row ChampionCount
		if err := rows.Scan(&row.Name, &row.Role, &row.Count, &row.AvgConfidence); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}

func (s *pgStore) RoleDistribution(ctx context.Context) ([]RoleCount, error) {
	const query = `
SELECT champion_role, count(*)
FROM results
GROUP BY champion_role
ORDER BY count(*) DESC, champion_role`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]RoleCount, 0)
	for rows.Next() {
		var row RoleCount
		if err := rows.Scan(&row.Role, &row.Count); err != nil {
			return nil, err
		}
		out = append(out, row)
	}
	return out, rows.Err()
}
