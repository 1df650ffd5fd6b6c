package group

import (
	"context"

	"ledgerly-api/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (GroupOutput, error)
	List(ctx context.Context, sc model.Scope) ([]model.Group, error)
	GetOne(ctx context.Context, sc model.Scope, name string) (model.Group, error)
	AddMembers(ctx context.Context, sc model.Scope, ip MembersInput) (GroupOutput, error)
	RemoveMembers(ctx context.Context, sc model.Scope, ip MembersInput) (GroupOutput, error)
	Delete(ctx context.Context, sc model.Scope, name string) error
}
