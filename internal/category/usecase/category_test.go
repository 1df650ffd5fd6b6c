package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"ledgerly-api/internal/category"
	"ledgerly-api/internal/category/repository"
	"ledgerly-api/internal/model"
	transactionRepo "ledgerly-api/internal/transaction/repository"
	pkgLog "ledgerly-api/pkg/log"
)

type fakeCategoryRepo struct {
	cats []model.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Category, error) {
	cat := model.Category{
		ID:        fmt.Sprintf("00000000-0000-0000-0000-%012d", len(f.cats)+1),
		Type:      opts.Type,
		Color:     opts.Color,
		CreatedAt: time.Now(),
	}
	f.cats = append(f.cats, cat)
	return cat, nil
}

func (f *fakeCategoryRepo) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.Category, error) {
	for _, c := range f.cats {
		if c.Type == opts.Type {
			return c, nil
		}
	}
	return model.Category{}, repository.ErrNotFound
}

func (f *fakeCategoryRepo) List(ctx context.Context, sc model.Scope) ([]model.Category, error) {
	return f.cats, nil
}

func (f *fakeCategoryRepo) Count(ctx context.Context, sc model.Scope) (int64, error) {
	return int64(len(f.cats)), nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, sc model.Scope, oldType string, opts repository.UpdateOptions) error {
	for i, c := range f.cats {
		if c.Type == oldType {
			f.cats[i].Type = opts.Type
			f.cats[i].Color = opts.Color
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, sc model.Scope, categoryType string) error {
	for i, c := range f.cats {
		if c.Type == categoryType {
			f.cats = append(f.cats[:i], f.cats[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeCategoryRepo) GetOldest(ctx context.Context, sc model.Scope, excluding []string) (model.Category, error) {
	skip := map[string]bool{}
	for _, t := range excluding {
		skip[t] = true
	}
	var oldest *model.Category
	for i := range f.cats {
		if skip[f.cats[i].Type] {
			continue
		}
		if oldest == nil || f.cats[i].CreatedAt.Before(oldest.CreatedAt) {
			oldest = &f.cats[i]
		}
	}
	if oldest == nil {
		return model.Category{}, repository.ErrNotFound
	}
	return *oldest, nil
}

// fakeTransactionRepo tracks transaction types only, which is all the
// category flows touch.
type fakeTransactionRepo struct {
	types []string
}

func (f *fakeTransactionRepo) Create(ctx context.Context, sc model.Scope, opts transactionRepo.CreateOptions) (model.Transaction, error) {
	return model.Transaction{}, errors.New("not implemented")
}

func (f *fakeTransactionRepo) GetOne(ctx context.Context, sc model.Scope, opts transactionRepo.GetOneOptions) (model.Transaction, error) {
	return model.Transaction{}, transactionRepo.ErrNotFound
}

func (f *fakeTransactionRepo) List(ctx context.Context, sc model.Scope, opts transactionRepo.ListOptions) ([]model.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) CountByIDs(ctx context.Context, sc model.Scope, ids []string) (int64, error) {
	return 0, nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (f *fakeTransactionRepo) DeleteMany(ctx context.Context, sc model.Scope, ids []string) error {
	return nil
}

func (f *fakeTransactionRepo) DeleteByUsername(ctx context.Context, sc model.Scope, username string) (int64, error) {
	return 0, nil
}

func (f *fakeTransactionRepo) Retype(ctx context.Context, sc model.Scope, oldType, newType string) (int64, error) {
	var n int64
	for i, t := range f.types {
		if t == oldType {
			f.types[i] = newType
			n++
		}
	}
	return n, nil
}

func (f *fakeTransactionRepo) UpdateReceiptKey(ctx context.Context, sc model.Scope, id string, key *string) error {
	return nil
}

func newTestUsecase() (category.UseCase, *fakeCategoryRepo, *fakeTransactionRepo) {
	catRepo := &fakeCategoryRepo{}
	trRepo := &fakeTransactionRepo{}
	return New(pkgLog.NewNopLogger(), catRepo, trRepo), catRepo, trRepo
}

func seedCategories(repo *fakeCategoryRepo, types ...string) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, t := range types {
		repo.cats = append(repo.cats, model.Category{
			ID:        fmt.Sprintf("00000000-0000-0000-0000-%012d", i+1),
			Type:      t,
			Color:     "#000000",
			CreatedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
}

func TestUsecase_Create(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Role: model.RoleAdmin}

	uc, _, _ := newTestUsecase()

	cat, err := uc.Create(ctx, sc, category.CreateInput{Type: "food", Color: "#ff0000"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if cat.Type != "food" || cat.Color != "#ff0000" {
		t.Fatalf("unexpected category: %+v", cat)
	}

	if _, err := uc.Create(ctx, sc, category.CreateInput{Type: "food", Color: "#00ff00"}); err != category.ErrTypeExists {
		t.Fatalf("expected ErrTypeExists, got %v", err)
	}
}

func TestUsecase_Update(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Role: model.RoleAdmin}

	t.Run("unknown category", func(t *testing.T) {
		uc, _, _ := newTestUsecase()
		if _, err := uc.Update(ctx, sc, category.UpdateInput{OldType: "ghost", Type: "x", Color: "#fff"}); err != category.ErrCategoryNotFound {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("new type taken", func(t *testing.T) {
		uc, catRepo, _ := newTestUsecase()
		seedCategories(catRepo, "food", "rent")
		if _, err := uc.Update(ctx, sc, category.UpdateInput{OldType: "food", Type: "rent", Color: "#fff"}); err != category.ErrNewTypeTaken {
			t.Fatalf("expected ErrNewTypeTaken, got %v", err)
		}
	})

	t.Run("retypes transactions on rename", func(t *testing.T) {
		uc, catRepo, trRepo := newTestUsecase()
		seedCategories(catRepo, "food", "rent")
		trRepo.types = []string{"food", "food", "rent"}

		out, err := uc.Update(ctx, sc, category.UpdateInput{OldType: "food", Type: "groceries", Color: "#fff"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if out.RetypedTransactions != 2 {
			t.Fatalf("expected 2 retyped transactions, got %d", out.RetypedTransactions)
		}
		if catRepo.cats[0].Type != "groceries" || catRepo.cats[0].Color != "#fff" {
			t.Fatalf("category not updated: %+v", catRepo.cats[0])
		}
	})

	t.Run("color-only change touches no transactions", func(t *testing.T) {
		uc, catRepo, trRepo := newTestUsecase()
		seedCategories(catRepo, "food")
		trRepo.types = []string{"food"}

		out, err := uc.Update(ctx, sc, category.UpdateInput{OldType: "food", Type: "food", Color: "#123456"})
		if err != nil {
			t.Fatalf("Update: %v", err)
		}
		if out.RetypedTransactions != 0 {
			t.Fatalf("expected no retyped transactions, got %d", out.RetypedTransactions)
		}
		if trRepo.types[0] != "food" {
			t.Fatalf("transaction type changed unexpectedly")
		}
	})
}

func TestUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Role: model.RoleAdmin}

	t.Run("refuses on the last category", func(t *testing.T) {
		uc, catRepo, _ := newTestUsecase()
		seedCategories(catRepo, "food")
		if _, err := uc.Delete(ctx, sc, []string{"food"}); err != category.ErrLastCategory {
			t.Fatalf("expected ErrLastCategory, got %v", err)
		}
	})

	t.Run("rejects empty types", func(t *testing.T) {
		uc, catRepo, _ := newTestUsecase()
		seedCategories(catRepo, "food", "rent")
		if _, err := uc.Delete(ctx, sc, []string{"food", ""}); err != category.ErrEmptyTypeInList {
			t.Fatalf("expected ErrEmptyTypeInList, got %v", err)
		}
	})

	t.Run("rejects unknown types", func(t *testing.T) {
		uc, catRepo, _ := newTestUsecase()
		seedCategories(catRepo, "food", "rent")
		_, err := uc.Delete(ctx, sc, []string{"food", "ghost"})
		var notFound *category.TypeNotFoundError
		if !errors.As(err, &notFound) || notFound.Type != "ghost" {
			t.Fatalf("expected TypeNotFoundError for ghost, got %v", err)
		}
	})

	t.Run("oldest survivor absorbs a subset", func(t *testing.T) {
		uc, catRepo, trRepo := newTestUsecase()
		seedCategories(catRepo, "food", "rent", "fun")
		trRepo.types = []string{"rent", "fun", "fun"}

		out, err := uc.Delete(ctx, sc, []string{"rent", "fun"})
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if out.AffectedTransactions != 3 {
			t.Fatalf("expected 3 affected transactions, got %d", out.AffectedTransactions)
		}
		if len(catRepo.cats) != 1 || catRepo.cats[0].Type != "food" {
			t.Fatalf("unexpected surviving categories: %+v", catRepo.cats)
		}
		for _, typ := range trRepo.types {
			if typ != "food" {
				t.Fatalf("transaction not moved to food: %v", trRepo.types)
			}
		}
	})

	t.Run("deleting everything keeps the oldest", func(t *testing.T) {
		uc, catRepo, trRepo := newTestUsecase()
		seedCategories(catRepo, "food", "rent", "fun")
		trRepo.types = []string{"rent", "fun"}

		out, err := uc.Delete(ctx, sc, []string{"food", "rent", "fun"})
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if out.AffectedTransactions != 2 {
			t.Fatalf("expected 2 affected transactions, got %d", out.AffectedTransactions)
		}
		if len(catRepo.cats) != 1 || catRepo.cats[0].Type != "food" {
			t.Fatalf("unexpected surviving categories: %+v", catRepo.cats)
		}
	})
}
