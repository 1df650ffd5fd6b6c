package user

import (
	"context"

	"ledgerly-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	List(ctx context.Context, sc model.Scope) ([]model.User, error)
	GetOne(ctx context.Context, sc model.Scope, username string) (model.User, error)
	Delete(ctx context.Context, sc model.Scope, ip DeleteInput) (DeleteOutput, error)
}
