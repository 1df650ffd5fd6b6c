package repository

import (
	"context"
	"errors"

	"ledgerly-api/internal/model"
)

// ErrNotFound is returned when no transaction matches the query.
var ErrNotFound = errors.New("not found")

//go:generate mockery --name Repository
type Repository interface {
	Create(ctx context.Context, sc model.Scope, opts CreateOptions) (model.Transaction, error)
	GetOne(ctx context.Context, sc model.Scope, opts GetOneOptions) (model.Transaction, error)

	// List joins each transaction with its category color. The zero filter
	// returns everything.
	List(ctx context.Context, sc model.Scope, opts ListOptions) ([]model.Transaction, error)
	CountByIDs(ctx context.Context, sc model.Scope, ids []string) (int64, error)

	Delete(ctx context.Context, sc model.Scope, id string) error
	DeleteMany(ctx context.Context, sc model.Scope, ids []string) error
	DeleteByUsername(ctx context.Context, sc model.Scope, username string) (int64, error)

	// Retype moves every transaction of oldType to newType and returns the
	// number of rows changed.
	Retype(ctx context.Context, sc model.Scope, oldType, newType string) (int64, error)

	UpdateReceiptKey(ctx context.Context, sc model.Scope, id string, key *string) error
}
