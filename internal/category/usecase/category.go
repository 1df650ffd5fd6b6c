package usecase

import (
	"context"

	"ledgerly-api/internal/category"
	"ledgerly-api/internal/category/repository"
	"ledgerly-api/internal/model"
)

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip category.CreateInput) (model.Category, error) {
	if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Type: ip.Type}); err == nil {
		return model.Category{}, category.ErrTypeExists
	} else if err != repository.ErrNotFound {
		uc.l.Errorf(ctx, "internal.category.usecase.Create.GetOne: %v", err)
		return model.Category{}, err
	}

	cat, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Type:  ip.Type,
		Color: ip.Color,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.category.usecase.Create: %v", err)
		return model.Category{}, err
	}

	return cat, nil
}

func (uc *usecase) List(ctx context.Context, sc model.Scope) ([]model.Category, error) {
	cats, err := uc.repo.List(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.category.usecase.List: %v", err)
		return nil, err
	}

	return cats, nil
}

func (uc *usecase) Update(ctx context.Context, sc model.Scope, ip category.UpdateInput) (category.UpdateOutput, error) {
	cat, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Type: ip.OldType})
	if err != nil {
		if err == repository.ErrNotFound {
			return category.UpdateOutput{}, category.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "internal.category.usecase.Update.GetOne: %v", err)
		return category.UpdateOutput{}, err
	}

	if cat.Type != ip.Type {
		if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Type: ip.Type}); err == nil {
			return category.UpdateOutput{}, category.ErrNewTypeTaken
		} else if err != repository.ErrNotFound {
			uc.l.Errorf(ctx, "internal.category.usecase.Update.GetOneNew: %v", err)
			return category.UpdateOutput{}, err
		}
	}

	var retyped int64
	if cat.Type != ip.Type {
		retyped, err = uc.trRepo.Retype(ctx, sc, cat.Type, ip.Type)
		if err != nil {
			uc.l.Errorf(ctx, "internal.category.usecase.Update.Retype: %v", err)
			return category.UpdateOutput{}, err
		}
	}

	if err := uc.repo.Update(ctx, sc, ip.OldType, repository.UpdateOptions{
		Type:  ip.Type,
		Color: ip.Color,
	}); err != nil {
		uc.l.Errorf(ctx, "internal.category.usecase.Update: %v", err)
		return category.UpdateOutput{}, err
	}

	return category.UpdateOutput{RetypedTransactions: retyped}, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, types []string) (category.DeleteOutput, error) {
	count, err := uc.repo.Count(ctx, sc)
	if err != nil {
		uc.l.Errorf(ctx, "internal.category.usecase.Delete.Count: %v", err)
		return category.DeleteOutput{}, err
	}
	if count == 1 {
		return category.DeleteOutput{}, category.ErrLastCategory
	}

	for _, t := range types {
		if t == "" {
			return category.DeleteOutput{}, category.ErrEmptyTypeInList
		}
	}

	for _, t := range types {
		if _, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{Type: t}); err != nil {
			if err == repository.ErrNotFound {
				return category.DeleteOutput{}, &category.TypeNotFoundError{Type: t}
			}
			uc.l.Errorf(ctx, "internal.category.usecase.Delete.GetOne: %v", err)
			return category.DeleteOutput{}, err
		}
	}

	// Deleting every category keeps the oldest one alive. Otherwise the
	// oldest survivor absorbs the deleted types' transactions.
	var excluding []string
	if count != int64(len(types)) {
		excluding = types
	}

	oldest, err := uc.repo.GetOldest(ctx, sc, excluding)
	if err != nil {
		uc.l.Errorf(ctx, "internal.category.usecase.Delete.GetOldest: %v", err)
		return category.DeleteOutput{}, err
	}

	var affected int64
	for _, t := range types {
		if t == oldest.Type {
			continue
		}

		if err := uc.repo.Delete(ctx, sc, t); err != nil {
			uc.l.Errorf(ctx, "internal.category.usecase.Delete: %v", err)
			return category.DeleteOutput{}, err
		}

		moved, err := uc.trRepo.Retype(ctx, sc, t, oldest.Type)
		if err != nil {
			uc.l.Errorf(ctx, "internal.category.usecase.Delete.Retype: %v", err)
			return category.DeleteOutput{}, err
		}
		affected += moved
	}

	return category.DeleteOutput{AffectedTransactions: affected}, nil
}
