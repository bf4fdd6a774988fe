package results

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
)

type PGRepo struct {
	DB *sql.DB
}

func (r *PGRepo) Create(ctx context.Context, result Result) error {
	const query = `
INSERT INTO results (id, session_id, champion_name, champion_role, score, confidence, explanation, answers_hash, answers, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	answers, err := json.Marshal(result.Answers)
	if err != nil {
		return fmt.Errorf("marshal answers: %w", err)
	}
	_, err = r.DB.ExecContext(ctx, query,
		result.ID,
		result.SessionID,
		result.ChampionName,
		result.ChampionRole,
		result.Score,
		result.Confidence,
		result.Explanation,
		result.AnswersHash,
		answers,
		result.CreatedAt,
	)
	return err
}

func (r *PGRepo) GetByID(ctx context.Context, resultID string) (Result, error) {
	const query = `
SELECT id, session_id, champion_name, champion_role, score, confidence, explanation, answers_hash, answers, created_at
FROM results
WHERE id = $1
LIMIT 1`
	result, err := scanResult(r.DB.QueryRowContext(ctx, query, resultID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Result{}, ErrNotFound
		}
		return Result{}, err
	}
	return result, nil
}

func (r *PGRepo) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Result, error) {
	const query = `
SELECT id, session_id, champion_name, champion_role, score, confidence, explanation, answers_hash, answers, created_at
FROM results
WHERE session_id = $1
ORDER BY created_at DESC, id
LIMIT $2 OFFSET $3`
	rows, err := r.DB.QueryContext(ctx, query, sessionID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]Result, 0)
	for rows.Next() {
		result, err := scanResult(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, result)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanResult(row rowScanner) (Result, error) {
	var result Result
	var answers sql.NullString
	err := row.Scan(
		&result.ID,
		&result.SessionID,
		&result.ChampionName,
		&result.ChampionRole,
		&result.Score,
		&result.Confidence,
		&result.Explanation,
		&result.AnswersHash,
		&answers,
		&result.CreatedAt,
	)
	if err != nil {
		return Result{}, err
	}
	if answers.Valid && answers.String != "" {
		if err := json.Unmarshal([]byte(answers.String), &result.Answers); err != nil {
			return Result{}, fmt.Errorf("unmarshal answers: %w", err)
		}
	}
	return result, nil
}
