package usecase

import (
	"context"

	"ledgerly-api/internal/auth"
	"ledgerly-api/internal/model"
	"ledgerly-api/internal/user/repository"
	"ledgerly-api/pkg/encrypter"
	"ledgerly-api/pkg/token"
)

func (uc *usecase) Register(ctx context.Context, ip auth.RegisterInput) error {
	return uc.register(ctx, ip, model.RoleRegular)
}

func (uc *usecase) RegisterAdmin(ctx context.Context, ip auth.RegisterInput) error {
	return uc.register(ctx, ip, model.RoleAdmin)
}

func (uc *usecase) register(ctx context.Context, ip auth.RegisterInput, role string) error {
	sc := model.Scope{}

	if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email}); err == nil {
		return auth.ErrAlreadyRegistered
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.auth.usecase.register.GetOneByEmail: %v", err)
		return err
	}

	if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Username: ip.Username}); err == nil {
		return auth.ErrAlreadyRegistered
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.auth.usecase.register.GetOneByUsername: %v", err)
		return err
	}

	hash, err := encrypter.HashPassword(ip.Password)
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.register.HashPassword: %v", err)
		return err
	}

	if _, err := uc.repo.Create(ctx, sc, repository.CreateOptions{User: model.User{
		Username: ip.Username,
		Email:    ip.Email,
		Password: hash,
		Role:     role,
	}}); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.register.Create: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) Login(ctx context.Context, ip auth.LoginInput) (auth.LoginOutput, error) {
	sc := model.Scope{}

	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email})
	if err != nil {
		if err == repository.ErrNotFound {
			return auth.LoginOutput{}, auth.ErrNotRegistered
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.GetOne: %v", err)
		return auth.LoginOutput{}, err
	}

	if !encrypter.CheckPasswordHash(ip.Password, usr.Password) {
		return auth.LoginOutput{}, auth.ErrWrongCredentials
	}

	access, refresh, err := uc.gate.IssueTokens(token.Claims{
		Username: usr.Username,
		Email:    usr.Email,
		ID:       usr.ID,
		Role:     usr.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.IssueTokens: %v", err)
		return auth.LoginOutput{}, err
	}

	// Last writer wins: logging in from a second device replaces the
	// stored refresh token and orphans the previous session's.
	if err := uc.repo.UpdateRefreshToken(ctx, sc, usr.ID, &refresh); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Login.UpdateRefreshToken: %v", err)
		return auth.LoginOutput{}, err
	}

	return auth.LoginOutput{
		AccessToken:  access,
		RefreshToken: refresh,
	}, nil
}

func (uc *usecase) Logout(ctx context.Context, refreshToken string) error {
	sc := model.Scope{}

	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{RefreshToken: refreshToken})
	if err != nil {
		if err == repository.ErrNotFound {
			return auth.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout.GetOne: %v", err)
		return err
	}

	if err := uc.repo.UpdateRefreshToken(ctx, sc, usr.ID, nil); err != nil {
		uc.l.Errorf(ctx, "internal.auth.usecase.Logout.UpdateRefreshToken: %v", err)
		return err
	}

	return nil
}
