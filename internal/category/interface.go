package category

import (
	"context"

	"ledgerly-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Category, error)
	List(ctx context.Context, sc model.Scope) ([]model.Category, error)
	Update(ctx context.Context, sc model.Scope, ip UpdateInput) (UpdateOutput, error)
	Delete(ctx context.Context, sc model.Scope, types []string) (DeleteOutput, error)
}
