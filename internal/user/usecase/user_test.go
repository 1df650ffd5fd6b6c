package usecase

import (
	"context"
	"fmt"
	"testing"

	groupRepo "ledgerly-api/internal/group/repository"
	"ledgerly-api/internal/model"
	transactionRepo "ledgerly-api/internal/transaction/repository"
	"ledgerly-api/internal/user"
	"ledgerly-api/internal/user/repository"
	pkgLog "ledgerly-api/pkg/log"
)

type fakeUserRepo struct {
	users map[string]model.User // keyed by email
}

func (f *fakeUserRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.User, error) {
	f.users[opts.User.Email] = opts.User
	return opts.User, nil
}

func (f *fakeUserRepo) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.User, error) {
	for _, u := range f.users {
		switch {
		case opts.ID != "" && u.ID == opts.ID:
			return u, nil
		case opts.Username != "" && u.Username == opts.Username:
			return u, nil
		case opts.Email != "" && u.Email == opts.Email:
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.User, error) {
	var res []model.User
	for _, u := range f.users {
		res = append(res, u)
	}
	return res, nil
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, sc model.Scope, userID string, refreshToken *string) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	for email, u := range f.users {
		if u.ID == id {
			delete(f.users, email)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeGroupRepo struct {
	pruned  []string
	members map[string]bool // emails with a membership row
}

func (f *fakeGroupRepo) Create(ctx context.Context, sc model.Scope, opts groupRepo.CreateOptions) (model.Group, error) {
	return model.Group{}, nil
}

func (f *fakeGroupRepo) GetOne(ctx context.Context, sc model.Scope, opts groupRepo.GetOneOptions) (model.Group, error) {
	return model.Group{}, groupRepo.ErrNotFound
}

func (f *fakeGroupRepo) List(ctx context.Context, sc model.Scope) ([]model.Group, error) {
	return nil, nil
}

func (f *fakeGroupRepo) AddMembers(ctx context.Context, sc model.Scope, groupID string, members []model.Member) error {
	return nil
}

func (f *fakeGroupRepo) RemoveMembers(ctx context.Context, sc model.Scope, groupID string, emails []string) error {
	return nil
}

func (f *fakeGroupRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

func (f *fakeGroupRepo) PruneMember(ctx context.Context, sc model.Scope, email string) (bool, error) {
	f.pruned = append(f.pruned, email)
	return f.members[email], nil
}

type fakeTransactionRepo struct {
	byUsername map[string]int64
}

func (f *fakeTransactionRepo) Create(ctx context.Context, sc model.Scope, opts transactionRepo.CreateOptions) (model.Transaction, error) {
	return opts.Transaction, nil
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
	n := f.byUsername[username]
	delete(f.byUsername, username)
	return n, nil
}

func (f *fakeTransactionRepo) Retype(ctx context.Context, sc model.Scope, oldType, newType string) (int64, error) {
	return 0, nil
}

func (f *fakeTransactionRepo) UpdateReceiptKey(ctx context.Context, sc model.Scope, id string, key *string) error {
	return nil
}

func newTestUsecase() (user.UseCase, *fakeUserRepo, *fakeGroupRepo, *fakeTransactionRepo) {
	usRepo := &fakeUserRepo{users: map[string]model.User{}}
	grRepo := &fakeGroupRepo{members: map[string]bool{}}
	trRepo := &fakeTransactionRepo{byUsername: map[string]int64{}}
	return New(pkgLog.NewNopLogger(), usRepo, grRepo, trRepo), usRepo, grRepo, trRepo
}

func seedUser(f *fakeUserRepo, username, email, role string) model.User {
	u := model.User{
		ID:       fmt.Sprintf("20000000-0000-0000-0000-%012d", len(f.users)+1),
		Username: username,
		Email:    email,
		Role:     role,
	}
	f.users[email] = u
	return u
}

func adminScope() model.Scope {
	return model.Scope{UserID: "admin-id", Username: "root", Email: "root@example.com", Role: model.RoleAdmin}
}

func TestUsecase_GetOne(t *testing.T) {
	ctx := context.Background()

	uc, usRepo, _, _ := newTestUsecase()
	seedUser(usRepo, "alice", "alice@example.com", model.RoleRegular)

	usr, err := uc.GetOne(ctx, adminScope(), "alice")
	if err != nil {
		t.Fatalf("GetOne: %v", err)
	}
	if usr.Email != "alice@example.com" {
		t.Errorf("email = %q, want alice@example.com", usr.Email)
	}

	if _, err := uc.GetOne(ctx, adminScope(), "ghost"); err != user.ErrUserNotFound {
		t.Errorf("GetOne unknown: err = %v, want ErrUserNotFound", err)
	}
}

func TestUsecase_List(t *testing.T) {
	ctx := context.Background()

	uc, usRepo, _, _ := newTestUsecase()
	seedUser(usRepo, "alice", "alice@example.com", model.RoleRegular)
	seedUser(usRepo, "bob", "bob@example.com", model.RoleRegular)

	usrs, err := uc.List(ctx, adminScope())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(usrs) != 2 {
		t.Errorf("len = %d, want 2", len(usrs))
	}
}

func TestUsecase_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes user with transactions and group membership", func(t *testing.T) {
		uc, usRepo, grRepo, trRepo := newTestUsecase()
		seedUser(usRepo, "alice", "alice@example.com", model.RoleRegular)
		grRepo.members["alice@example.com"] = true
		trRepo.byUsername["alice"] = 3

		out, err := uc.Delete(ctx, adminScope(), user.DeleteInput{Email: "alice@example.com"})
		if err != nil {
			t.Fatalf("Delete: %v", err)
		}
		if out.DeletedTransactions != 3 {
			t.Errorf("DeletedTransactions = %d, want 3", out.DeletedTransactions)
		}
		if !out.DeletedFromGroup {
			t.Errorf("DeletedFromGroup = false, want true")
		}
		if len(grRepo.pruned) != 1 || grRepo.pruned[0] != "alice@example.com" {
			t.Errorf("pruned = %v, want [alice@example.com]", grRepo.pruned)
		}
		if _, ok := usRepo.users["alice@example.com"]; ok {
			t.Errorf("user row still present after delete")
		}
	})

	t.Run("unknown email", func(t *testing.T) {
		uc, _, _, _ := newTestUsecase()

		if _, err := uc.Delete(ctx, adminScope(), user.DeleteInput{Email: "ghost@example.com"}); err != user.ErrEmailNotFound {
			t.Errorf("err = %v, want ErrEmailNotFound", err)
		}
	})

	t.Run("refuses admin accounts", func(t *testing.T) {
		uc, usRepo, _, _ := newTestUsecase()
		seedUser(usRepo, "boss", "boss@example.com", model.RoleAdmin)

		if _, err := uc.Delete(ctx, adminScope(), user.DeleteInput{Email: "boss@example.com"}); err != user.ErrCannotDeleteAdmin {
			t.Errorf("err = %v, want ErrCannotDeleteAdmin", err)
		}
	})
}
