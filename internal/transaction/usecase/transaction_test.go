package usecase

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	categoryRepo "ledgerly-api/internal/category/repository"
	groupRepo "ledgerly-api/internal/group/repository"
	"ledgerly-api/internal/model"
	"ledgerly-api/internal/transaction"
	"ledgerly-api/internal/transaction/repository"
	userRepo "ledgerly-api/internal/user/repository"
	pkgLog "ledgerly-api/pkg/log"
	pkgMinio "ledgerly-api/pkg/minio"
)

type fakeTransactionRepo struct {
	trs    []model.Transaction
	nextID int
}

func (f *fakeTransactionRepo) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Transaction, error) {
	tr := opts.Transaction
	f.nextID++
	tr.ID = fmt.Sprintf("00000000-0000-0000-0000-%012d", f.nextID)
	tr.Date = time.Now()
	f.trs = append(f.trs, tr)
	return tr, nil
}

func (f *fakeTransactionRepo) GetOne(ctx context.Context, sc model.Scope, opts repository.GetOneOptions) (model.Transaction, error) {
	for _, tr := range f.trs {
		if tr.ID == opts.ID && (opts.Username == "" || tr.Username == opts.Username) {
			return tr, nil
		}
	}
	return model.Transaction{}, repository.ErrNotFound
}

func (f *fakeTransactionRepo) List(ctx context.Context, sc model.Scope, opts repository.ListOptions) ([]model.Transaction, error) {
	match := func(tr model.Transaction) bool {
		fl := opts.Filter
		if fl.Username != "" && tr.Username != fl.Username {
			return false
		}
		if len(fl.Usernames) > 0 {
			found := false
			for _, u := range fl.Usernames {
				if tr.Username == u {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		if fl.Type != "" && tr.Type != fl.Type {
			return false
		}
		if fl.MinAmount != nil && tr.Amount < *fl.MinAmount {
			return false
		}
		if fl.MaxAmount != nil && tr.Amount > *fl.MaxAmount {
			return false
		}
		return true
	}

	var res []model.Transaction
	for _, tr := range f.trs {
		if match(tr) {
			res = append(res, tr)
		}
	}
	return res, nil
}

func (f *fakeTransactionRepo) CountByIDs(ctx context.Context, sc model.Scope, ids []string) (int64, error) {
	var count int64
	for _, id := range ids {
		for _, tr := range f.trs {
			if tr.ID == id {
				count++
				break
			}
		}
	}
	return count, nil
}

func (f *fakeTransactionRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	for i, tr := range f.trs {
		if tr.ID == id {
			f.trs = append(f.trs[:i], f.trs[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeTransactionRepo) DeleteMany(ctx context.Context, sc model.Scope, ids []string) error {
	for _, id := range ids {
		_ = f.Delete(ctx, sc, id)
	}
	return nil
}

func (f *fakeTransactionRepo) DeleteByUsername(ctx context.Context, sc model.Scope, username string) (int64, error) {
	var n int64
	var kept []model.Transaction
	for _, tr := range f.trs {
		if tr.Username == username {
			n++
			continue
		}
		kept = append(kept, tr)
	}
	f.trs = kept
	return n, nil
}

func (f *fakeTransactionRepo) Retype(ctx context.Context, sc model.Scope, oldType, newType string) (int64, error) {
	var n int64
	for i, tr := range f.trs {
		if tr.Type == oldType {
			f.trs[i].Type = newType
			n++
		}
	}
	return n, nil
}

func (f *fakeTransactionRepo) UpdateReceiptKey(ctx context.Context, sc model.Scope, id string, key *string) error {
	for i, tr := range f.trs {
		if tr.ID == id {
			f.trs[i].ReceiptKey = key
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUserRepo struct {
	users []model.User
}

func (f *fakeUserRepo) Create(ctx context.Context, sc model.Scope, opts userRepo.CreateOptions) (model.User, error) {
	f.users = append(f.users, opts.User)
	return opts.User, nil
}

func (f *fakeUserRepo) GetOne(ctx context.Context, sc model.Scope, opts userRepo.GetOneOptions) (model.User, error) {
	for _, u := range f.users {
		if (opts.Username != "" && u.Username == opts.Username) ||
			(opts.Email != "" && u.Email == opts.Email) {
			return u, nil
		}
	}
	return model.User{}, userRepo.ErrNotFound
}

func (f *fakeUserRepo) List(ctx context.Context, sc model.Scope, opts userRepo.ListOptions) ([]model.User, error) {
	if len(opts.Filter.Emails) == 0 {
		return f.users, nil
	}
	var res []model.User
	for _, u := range f.users {
		for _, e := range opts.Filter.Emails {
			if u.Email == e {
				res = append(res, u)
				break
			}
		}
	}
	return res, nil
}

func (f *fakeUserRepo) UpdateRefreshToken(ctx context.Context, sc model.Scope, userID string, refreshToken *string) error {
	return nil
}

func (f *fakeUserRepo) Delete(ctx context.Context, sc model.Scope, id string) error {
	return nil
}

type fakeCategoryRepo struct {
	types []string
}

func (f *fakeCategoryRepo) Create(ctx context.Context, sc model.Scope, opts categoryRepo.CreateOptions) (model.Category, error) {
	f.types = append(f.types, opts.Type)
	return model.Category{Type: opts.Type, Color: opts.Color}, nil
}

func (f *fakeCategoryRepo) GetOne(ctx context.Context, sc model.Scope, opts categoryRepo.GetOneOptions) (model.Category, error) {
	for _, t := range f.types {
		if t == opts.Type {
			return model.Category{Type: t}, nil
		}
	}
	return model.Category{}, categoryRepo.ErrNotFound
}

func (f *fakeCategoryRepo) List(ctx context.Context, sc model.Scope) ([]model.Category, error) {
	return nil, nil
}

func (f *fakeCategoryRepo) Count(ctx context.Context, sc model.Scope) (int64, error) {
	return int64(len(f.types)), nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, sc model.Scope, oldType string, opts categoryRepo.UpdateOptions) error {
	return nil
}

func (f *fakeCategoryRepo) Delete(ctx context.Context, sc model.Scope, categoryType string) error {
	return nil
}

func (f *fakeCategoryRepo) GetOldest(ctx context.Context, sc model.Scope, excluding []string) (model.Category, error) {
	return model.Category{}, categoryRepo.ErrNotFound
}

type fakeGroupRepo struct {
	groups []model.Group
}

func (f *fakeGroupRepo) Create(ctx context.Context, sc model.Scope, opts groupRepo.CreateOptions) (model.Group, error) {
	return model.Group{}, nil
}

func (f *fakeGroupRepo) GetOne(ctx context.Context, sc model.Scope, opts groupRepo.GetOneOptions) (model.Group, error) {
	for _, g := range f.groups {
		if g.Name == opts.Name {
			return g, nil
		}
	}
	return model.Group{}, groupRepo.ErrNotFound
}

func (f *fakeGroupRepo) List(ctx context.Context, sc model.Scope) ([]model.Group, error) {
	return f.groups, nil
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
	return false, nil
}

type fakeObject struct {
	data        []byte
	contentType string
}

type fakeMinIO struct {
	objects map[string]fakeObject
}

func newFakeMinIO() *fakeMinIO {
	return &fakeMinIO{objects: map[string]fakeObject{}}
}

func (f *fakeMinIO) Connect(ctx context.Context) error     { return nil }
func (f *fakeMinIO) HealthCheck(ctx context.Context) error { return nil }
func (f *fakeMinIO) Close() error                          { return nil }

func (f *fakeMinIO) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return err
	}
	f.objects[key] = fakeObject{data: data, contentType: contentType}
	return nil
}

func (f *fakeMinIO) Download(ctx context.Context, key string) (*pkgMinio.Object, error) {
	obj, ok := f.objects[key]
	if !ok {
		return nil, pkgMinio.ErrObjectNotFound
	}
	return &pkgMinio.Object{
		Reader:      io.NopCloser(bytes.NewReader(obj.data)),
		Size:        int64(len(obj.data)),
		ContentType: obj.contentType,
	}, nil
}

func (f *fakeMinIO) Remove(ctx context.Context, key string) error {
	delete(f.objects, key)
	return nil
}

type testDeps struct {
	uc      transaction.UseCase
	trRepo  *fakeTransactionRepo
	usRepo  *fakeUserRepo
	catRepo *fakeCategoryRepo
	grRepo  *fakeGroupRepo
	minio   *fakeMinIO
}

func newTestDeps() testDeps {
	d := testDeps{
		trRepo:  &fakeTransactionRepo{},
		usRepo:  &fakeUserRepo{},
		catRepo: &fakeCategoryRepo{},
		grRepo:  &fakeGroupRepo{},
		minio:   newFakeMinIO(),
	}
	d.uc = New(pkgLog.NewNopLogger(), d.trRepo, d.usRepo, d.catRepo, d.grRepo, d.minio)
	return d
}

func (d testDeps) seedUser(username, email string) {
	d.usRepo.users = append(d.usRepo.users, model.User{
		Username: username,
		Email:    email,
		Role:     model.RoleRegular,
	})
}

func TestUsecase_Create(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Username: "alice"}

	d := newTestDeps()
	d.seedUser("alice", "alice@example.com")
	d.catRepo.types = []string{"food"}

	t.Run("unknown user", func(t *testing.T) {
		_, err := d.uc.Create(ctx, sc, transaction.CreateInput{Username: "ghost", Type: "food", Amount: 10})
		if err != transaction.ErrUserNotFound {
			t.Fatalf("expected ErrUserNotFound, got %v", err)
		}
	})

	t.Run("unknown category", func(t *testing.T) {
		_, err := d.uc.Create(ctx, sc, transaction.CreateInput{Username: "alice", Type: "ghost", Amount: 10})
		if err != transaction.ErrCategoryNotFound {
			t.Fatalf("expected ErrCategoryNotFound, got %v", err)
		}
	})

	t.Run("creates and stamps", func(t *testing.T) {
		tr, err := d.uc.Create(ctx, sc, transaction.CreateInput{Username: "alice", Type: "food", Amount: 12.5})
		if err != nil {
			t.Fatalf("Create: %v", err)
		}
		if tr.ID == "" || tr.Date.IsZero() {
			t.Fatalf("transaction not stamped: %+v", tr)
		}
		if tr.Amount != 12.5 {
			t.Fatalf("unexpected amount: %v", tr.Amount)
		}
	})
}

func TestUsecase_ListByUser(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Username: "alice"}

	d := newTestDeps()
	d.seedUser("alice", "alice@example.com")
	d.catRepo.types = []string{"food"}

	for _, amount := range []float64{5, 25, 50} {
		if _, err := d.uc.Create(ctx, sc, transaction.CreateInput{Username: "alice", Type: "food", Amount: amount}); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}

	if _, err := d.uc.ListByUser(ctx, sc, transaction.ListByUserInput{Username: "ghost"}); err != transaction.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	if _, err := d.uc.ListByUser(ctx, sc, transaction.ListByUserInput{
		Username: "alice",
		Filter:   transaction.FilterParams{Min: "cheap"},
	}); err != transaction.ErrAmountNotNumber {
		t.Fatalf("expected ErrAmountNotNumber, got %v", err)
	}

	trs, err := d.uc.ListByUser(ctx, sc, transaction.ListByUserInput{
		Username: "alice",
		Filter:   transaction.FilterParams{Min: "10", Max: "40"},
	})
	if err != nil {
		t.Fatalf("ListByUser: %v", err)
	}
	if len(trs) != 1 || trs[0].Amount != 25 {
		t.Fatalf("unexpected result: %+v", trs)
	}
}

func TestUsecase_ListByGroup(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Username: "alice"}

	d := newTestDeps()
	d.seedUser("alice", "alice@example.com")
	d.seedUser("bob", "bob@example.com")
	d.seedUser("carol", "carol@example.com")
	d.catRepo.types = []string{"food", "rent"}
	d.grRepo.groups = []model.Group{{
		Name: "Family",
		Members: []model.Member{
			{Email: "alice@example.com"},
			{Email: "bob@example.com"},
		},
	}}

	seed := func(username, typ string) {
		t.Helper()
		if _, err := d.uc.Create(ctx, sc, transaction.CreateInput{Username: username, Type: typ, Amount: 1}); err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
	}
	seed("alice", "food")
	seed("bob", "rent")
	seed("carol", "food")

	if _, err := d.uc.ListByGroup(ctx, sc, "Nowhere"); err != transaction.ErrGroupNotFound {
		t.Fatalf("expected ErrGroupNotFound, got %v", err)
	}

	trs, err := d.uc.ListByGroup(ctx, sc, "Family")
	if err != nil {
		t.Fatalf("ListByGroup: %v", err)
	}
	if len(trs) != 2 {
		t.Fatalf("expected 2 transactions, got %+v", trs)
	}

	if _, err := d.uc.ListByGroupByCategory(ctx, sc, "Family", "ghost"); err != transaction.ErrCategoryNotFound {
		t.Fatalf("expected ErrCategoryNotFound, got %v", err)
	}

	trs, err = d.uc.ListByGroupByCategory(ctx, sc, "Family", "rent")
	if err != nil {
		t.Fatalf("ListByGroupByCategory: %v", err)
	}
	if len(trs) != 1 || trs[0].Username != "bob" {
		t.Fatalf("unexpected result: %+v", trs)
	}
}

func TestUsecase_Delete(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Username: "alice"}

	d := newTestDeps()
	d.seedUser("alice", "alice@example.com")
	d.seedUser("bob", "bob@example.com")
	d.catRepo.types = []string{"food"}

	tr, err := d.uc.Create(ctx, sc, transaction.CreateInput{Username: "alice", Type: "food", Amount: 10})
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}

	if err := d.uc.Delete(ctx, sc, "ghost", tr.ID); err != transaction.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}

	// Another user's transaction is invisible to the owner check.
	if err := d.uc.Delete(ctx, sc, "bob", tr.ID); err != transaction.ErrTransactionNotFound {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}

	if err := d.uc.UploadReceipt(ctx, sc, transaction.UploadReceiptInput{
		Username:    "alice",
		ID:          tr.ID,
		Reader:      bytes.NewReader([]byte("receipt")),
		Size:        7,
		ContentType: "text/plain",
	}); err != nil {
		t.Fatalf("UploadReceipt: %v", err)
	}

	if err := d.uc.Delete(ctx, sc, "alice", tr.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if len(d.trRepo.trs) != 0 {
		t.Fatalf("transaction not deleted")
	}
	if len(d.minio.objects) != 0 {
		t.Fatalf("receipt object not removed")
	}
}

func TestUsecase_DeleteMany(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Role: model.RoleAdmin}

	d := newTestDeps()
	d.seedUser("alice", "alice@example.com")
	d.catRepo.types = []string{"food"}

	var ids []string
	for i := 0; i < 3; i++ {
		tr, err := d.uc.Create(ctx, sc, transaction.CreateInput{Username: "alice", Type: "food", Amount: 1})
		if err != nil {
			t.Fatalf("seed transaction: %v", err)
		}
		ids = append(ids, tr.ID)
	}

	if err := d.uc.DeleteMany(ctx, sc, append(ids[:2:2], "00000000-0000-0000-0000-999999999999")); err != transaction.ErrIDsMismatch {
		t.Fatalf("expected ErrIDsMismatch, got %v", err)
	}
	if len(d.trRepo.trs) != 3 {
		t.Fatalf("transactions deleted despite mismatch")
	}

	if err := d.uc.DeleteMany(ctx, sc, ids); err != nil {
		t.Fatalf("DeleteMany: %v", err)
	}
	if len(d.trRepo.trs) != 0 {
		t.Fatalf("transactions not deleted")
	}
}

func TestUsecase_Receipts(t *testing.T) {
	ctx := context.Background()
	sc := model.Scope{Username: "alice"}

	d := newTestDeps()
	d.seedUser("alice", "alice@example.com")
	d.catRepo.types = []string{"food"}

	tr, err := d.uc.Create(ctx, sc, transaction.CreateInput{Username: "alice", Type: "food", Amount: 10})
	if err != nil {
		t.Fatalf("seed transaction: %v", err)
	}

	if _, err := d.uc.DownloadReceipt(ctx, sc, "alice", tr.ID); err != transaction.ErrReceiptNotFound {
		t.Fatalf("expected ErrReceiptNotFound, got %v", err)
	}

	payload := []byte("receipt bytes")
	if err := d.uc.UploadReceipt(ctx, sc, transaction.UploadReceiptInput{
		Username:    "alice",
		ID:          tr.ID,
		Reader:      bytes.NewReader(payload),
		Size:        int64(len(payload)),
		ContentType: "image/png",
	}); err != nil {
		t.Fatalf("UploadReceipt: %v", err)
	}

	obj, err := d.uc.DownloadReceipt(ctx, sc, "alice", tr.ID)
	if err != nil {
		t.Fatalf("DownloadReceipt: %v", err)
	}
	data, err := io.ReadAll(obj.Reader)
	if err != nil {
		t.Fatalf("read object: %v", err)
	}
	if !bytes.Equal(data, payload) || obj.ContentType != "image/png" {
		t.Fatalf("unexpected object: %q %s", data, obj.ContentType)
	}

	if err := d.uc.UploadReceipt(ctx, sc, transaction.UploadReceiptInput{
		Username: "alice",
		ID:       "00000000-0000-0000-0000-999999999999",
		Reader:   bytes.NewReader(payload),
	}); err != transaction.ErrTransactionNotFound {
		t.Fatalf("expected ErrTransactionNotFound, got %v", err)
	}
}
