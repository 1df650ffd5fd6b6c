package usecase

import (
	"context"

	"ledgerly-api/internal/model"
	"ledgerly-api/internal/user"
	"ledgerly-api/internal/user/repository"
)

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.User, error) {
	usrs, err := uc.repo.List(ctx, sc, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.List: %v", err)
		return nil, err
	}

	return usrs, nil
}

func (uc *usecase) GetOne(ctx context.Context, sc model.Scope, username string) (model.User, error) {
	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Username: username})
	if err != nil {
		if err == repository.ErrNotFound {
			return model.User{}, user.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.GetOne: %v", err)
		return model.User{}, err
	}

	return usr, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, ip user.DeleteInput) (user.DeleteOutput, error) {
	usr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Email: ip.Email})
	if err != nil {
		if err == repository.ErrNotFound {
			return user.DeleteOutput{}, user.ErrEmailNotFound
		}
		uc.l.Errorf(ctx, "internal.user.usecase.Delete.GetOne: %v", err)
		return user.DeleteOutput{}, err
	}

	if usr.Role == model.RoleAdmin {
		return user.DeleteOutput{}, user.ErrCannotDeleteAdmin
	}

	removedFromGroup, err := uc.grRepo.PruneMember(ctx, sc, usr.Email)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Delete.PruneMember: %v", err)
		return user.DeleteOutput{}, err
	}

	deletedTransactions, err := uc.trRepo.DeleteByUsername(ctx, sc, usr.Username)
	if err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Delete.DeleteByUsername: %v", err)
		return user.DeleteOutput{}, err
	}

	if err := uc.repo.Delete(ctx, sc, usr.ID); err != nil {
		uc.l.Errorf(ctx, "internal.user.usecase.Delete: %v", err)
		return user.DeleteOutput{}, err
	}

	return user.DeleteOutput{
		DeletedTransactions: deletedTransactions,
		DeletedFromGroup:    removedFromGroup,
	}, nil
}
