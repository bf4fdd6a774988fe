package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

type Repo interface {
	Create(ctx context.Context, user User) error
	GetByID(ctx context.Context, userID string) (User, error)
	Update(ctx context.Context, user User) error
	Delete(ctx context.Context, userID string) error
	List(ctx context.Context, limit, offset int) ([]User, error)
}
