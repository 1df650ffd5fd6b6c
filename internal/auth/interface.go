package auth

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, ip RegisterInput) error
	RegisterAdmin(ctx context.Context, ip RegisterInput) error
	Login(ctx context.Context, ip LoginInput) (LoginOutput, error)
	Logout(ctx context.Context, refreshToken string) error
}
