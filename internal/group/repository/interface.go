package repository

import (
	"context"
	"errors"

	"ledgerly-api/internal/model"
)

// ErrNotFound is returned when no group matches the query.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Group, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.Group, error)
	List(ctx context.Context, sc model.Scope) ([]model.Group, error)
	AddMembers(ctx context.Context, sc model.Scope, groupID string, members []model.Member) error
	RemoveMembers(ctx context.Context, sc model.Scope, groupID string, emails []string) error
	Delete(ctx context.Context, sc model.Scope, id string) error

	// PruneMember removes the email from whatever group it belongs to and
	// deletes the group if it is left without members. It reports whether a
	// membership row was actually removed.
	PruneMember(ctx context.Context, sc model.Scope, email string) (bool, error)
}
