package repository

import (
	"context"
	"errors"

	"ledgerly-api/internal/model"
)

// ErrNotFound is returned when no category matches the query.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Category, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.Category, error)
	List(ctx context.Context, sc model.Scope) ([]model.Category, error)
	Count(ctx context.Context, sc model.Scope) (int64, error)
	Update(ctx context.Context, sc model.Scope, oldType string, opts UpdateOptions) error
	Delete(ctx context.Context, sc model.Scope, categoryType string) error

	// GetOldest returns the oldest category whose type is not in excluding.
	// An empty excluding list considers every category.
	GetOldest(ctx context.Context, sc model.Scope, excluding []string) (model.Category, error)
}
