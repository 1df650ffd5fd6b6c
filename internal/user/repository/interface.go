package repository

import (
	"context"
	"errors"

	"ledgerly-api/internal/model"
)

// ErrNotFound is returned when no user matches the query.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.User, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.User, error)
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.User, error)
	UpdateRefreshToken(ctx context.Context, sc model.Scope, userID string, refreshToken *string) error
	Delete(ctx context.Context, sc model.Scope, id string) error
}
