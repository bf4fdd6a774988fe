package results

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "result not found" }

type Repo interface {
	Create(ctx context.Context, result Result) error
	GetByID(ctx context.Context, resultID string) (Result, error)
	ListBySession(ctx context.Context, sessionID string, limit, offset int) ([]Result, error)
}
