package results

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"recommender-backend/internal/shared/util"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Save persists one recommendation outcome for a session. The result is
// assigned its ID, answers hash, and timestamp here so callers only supply
// what the engine produced.
func (s *Service) Save(ctx context.Context, result Result) (Result, error) {
	if s == nil || s.Repo == nil {
		return Result{}, errors.New("results service not configured")
	}
	if strings.TrimSpace(result.SessionID) == "" {
		return Result{}, errors.New("session id is required")
	}
	if strings.TrimSpace(result.ChampionName) == "" {
		return Result{}, errors.New("champion name is required")
	}
	result.ID = uuid.NewString()
	result.AnswersHash = util.HashAnswers(result.Answers)
	result.CreatedAt = time.Now().UTC()
	if err := s.Repo.Create(ctx, result); err != nil {
		return Result{}, err
	}
	return result, nil
}

func (s *Service) GetByID(ctx context.Context, resultID string) (Result, error) {
	if s == nil || s.Repo == nil {
		return Result{}, errors.New("results service not configured")
	}
	if strings.TrimSpace(resultID) == "" {
		return Result{}, errors.New("result id is required")
	}
	return s.Repo.GetByID(ctx, resultID)
}

func (s *Service) ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Result, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("results service not configured")
	}
	if strings.TrimSpace(sessionID) == "" {
		return nil, errors.New("session id is required")
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return s.Repo.ListBySession(ctx, sessionID, limit, offset)
}
