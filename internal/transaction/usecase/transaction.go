package usecase

import (
	"context"
	"fmt"

	categoryRepo "ledgerly-api/internal/category/repository"
	groupRepo "ledgerly-api/internal/group/repository"
	"ledgerly-api/internal/model"
	"ledgerly-api/internal/transaction"
	"ledgerly-api/internal/transaction/repository"
	userRepo "ledgerly-api/internal/user/repository"
	pkgMinio "ledgerly-api/pkg/minio"
)

func (uc *usecase) checkUser(ctx context.Context, sc model.Scope, username string) error {
	if _, err := uc.userRepo.GetOne(ctx, sc, userRepo.GetOneOptions{Username: username}); err != nil {
		if err == userRepo.ErrNotFound {
			return transaction.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.checkUser: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) checkCategory(ctx context.Context, sc model.Scope, categoryType string) error {
	if _, err := uc.catRepo.GetOne(ctx, sc, categoryRepo.GetOneOptions{Type: categoryType}); err != nil {
		if err == categoryRepo.ErrNotFound {
			return transaction.ErrCategoryNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.checkCategory: %v", err)
		return err
	}
	return nil
}

func (uc *usecase) Create(ctx context.Context, sc model.Scope, ip transaction.CreateInput) (model.Transaction, error) {
	if err := uc.checkUser(ctx, sc, ip.Username); err != nil {
		return model.Transaction{}, err
	}
	if err := uc.checkCategory(ctx, sc, ip.Type); err != nil {
		return model.Transaction{}, err
	}

	tr, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		Transaction: model.Transaction{
			Username: ip.Username,
			Type:     ip.Type,
			Amount:   ip.Amount,
		},
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.Create: %v", err)
		return model.Transaction{}, err
	}

	return tr, nil
}

func (uc *usecase) ListAll(ctx context.Context, sc model.Scope) ([]model.Transaction, error) {
	trs, err := uc.repo.List(ctx, sc, repository.ListOptions{})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.ListAll: %v", err)
		return nil, err
	}

	return trs, nil
}

func (uc *usecase) ListByUser(ctx context.Context, sc model.Scope, ip transaction.ListByUserInput) ([]model.Transaction, error) {
	if err := uc.checkUser(ctx, sc, ip.Username); err != nil {
		return nil, err
	}

	filter, err := transaction.ParseFilter(ip.Filter)
	if err != nil {
		return nil, err
	}
	filter.Username = ip.Username

	trs, err := uc.repo.List(ctx, sc, repository.ListOptions{Filter: filter})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.ListByUser: %v", err)
		return nil, err
	}

	return trs, nil
}

func (uc *usecase) ListByUserByCategory(ctx context.Context, sc model.Scope, username, categoryType string) ([]model.Transaction, error) {
	if err := uc.checkUser(ctx, sc, username); err != nil {
		return nil, err
	}
	if err := uc.checkCategory(ctx, sc, categoryType); err != nil {
		return nil, err
	}

	trs, err := uc.repo.List(ctx, sc, repository.ListOptions{Filter: repository.Filter{
		Username: username,
		Type:     categoryType,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.ListByUserByCategory: %v", err)
		return nil, err
	}

	return trs, nil
}

// memberUsernames resolves a group's member emails to their usernames.
func (uc *usecase) memberUsernames(ctx context.Context, sc model.Scope, name string) ([]string, error) {
	grp, err := uc.grRepo.GetOne(ctx, sc, groupRepo.GetOneOptions{Name: name})
	if err != nil {
		if err == groupRepo.ErrNotFound {
			return nil, transaction.ErrGroupNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.memberUsernames.GetOne: %v", err)
		return nil, err
	}

	usrs, err := uc.userRepo.List(ctx, sc, userRepo.ListOptions{Filter: userRepo.Filter{
		Emails: grp.MemberEmails(),
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.memberUsernames.List: %v", err)
		return nil, err
	}

	usernames := make([]string, 0, len(usrs))
	for _, u := range usrs {
		usernames = append(usernames, u.Username)
	}

	return usernames, nil
}

func (uc *usecase) ListByGroup(ctx context.Context, sc model.Scope, name string) ([]model.Transaction, error) {
	usernames, err := uc.memberUsernames(ctx, sc, name)
	if err != nil {
		return nil, err
	}

	trs, err := uc.repo.List(ctx, sc, repository.ListOptions{Filter: repository.Filter{
		Usernames: usernames,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.ListByGroup: %v", err)
		return nil, err
	}

	return trs, nil
}

func (uc *usecase) ListByGroupByCategory(ctx context.Context, sc model.Scope, name, categoryType string) ([]model.Transaction, error) {
	usernames, err := uc.memberUsernames(ctx, sc, name)
	if err != nil {
		return nil, err
	}
	if err := uc.checkCategory(ctx, sc, categoryType); err != nil {
		return nil, err
	}

	trs, err := uc.repo.List(ctx, sc, repository.ListOptions{Filter: repository.Filter{
		Usernames: usernames,
		Type:      categoryType,
	}})
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.ListByGroupByCategory: %v", err)
		return nil, err
	}

	return trs, nil
}

func (uc *usecase) Delete(ctx context.Context, sc model.Scope, username, id string) error {
	if err := uc.checkUser(ctx, sc, username); err != nil {
		return err
	}

	tr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{ID: id, Username: username})
	if err != nil {
		if err == repository.ErrNotFound {
			return transaction.ErrTransactionNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.Delete.GetOne: %v", err)
		return err
	}

	if tr.ReceiptKey != nil {
		// A dangling receipt object is not worth failing the delete for.
		if err := uc.minio.Remove(ctx, *tr.ReceiptKey); err != nil {
			uc.l.Warnf(ctx, "internal.transaction.usecase.Delete.Remove: %v", err)
		}
	}

	if err := uc.repo.Delete(ctx, sc, tr.ID); err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.Delete: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) DeleteMany(ctx context.Context, sc model.Scope, ids []string) error {
	count, err := uc.repo.CountByIDs(ctx, sc, ids)
	if err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.DeleteMany.CountByIDs: %v", err)
		return err
	}
	if count != int64(len(ids)) {
		return transaction.ErrIDsMismatch
	}

	if err := uc.repo.DeleteMany(ctx, sc, ids); err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.DeleteMany: %v", err)
		return err
	}

	return nil
}

func receiptKey(username, id string) string {
	return fmt.Sprintf("receipts/%s/%s", username, id)
}

func (uc *usecase) UploadReceipt(ctx context.Context, sc model.Scope, ip transaction.UploadReceiptInput) error {
	tr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{ID: ip.ID, Username: ip.Username})
	if err != nil {
		if err == repository.ErrNotFound {
			return transaction.ErrTransactionNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.UploadReceipt.GetOne: %v", err)
		return err
	}

	key := receiptKey(ip.Username, tr.ID)
	if err := uc.minio.Upload(ctx, key, ip.Reader, ip.Size, ip.ContentType); err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.UploadReceipt.Upload: %v", err)
		return err
	}

	if err := uc.repo.UpdateReceiptKey(ctx, sc, tr.ID, &key); err != nil {
		uc.l.Errorf(ctx, "internal.transaction.usecase.UploadReceipt: %v", err)
		return err
	}

	return nil
}

func (uc *usecase) DownloadReceipt(ctx context.Context, sc model.Scope, username, id string) (*pkgMinio.Object, error) {
	tr, err := uc.repo.GetOne(ctx, sc, repository.GetOneOptions{ID: id, Username: username})
	if err != nil {
		if err == repository.ErrNotFound {
			return nil, transaction.ErrTransactionNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.DownloadReceipt.GetOne: %v", err)
		return nil, err
	}

	if tr.ReceiptKey == nil {
		return nil, transaction.ErrReceiptNotFound
	}

	obj, err := uc.minio.Download(ctx, *tr.ReceiptKey)
	if err != nil {
		if err == pkgMinio.ErrObjectNotFound {
			return nil, transaction.ErrReceiptNotFound
		}
		uc.l.Errorf(ctx, "internal.transaction.usecase.DownloadReceipt: %v", err)
		return nil, err
	}

	return obj, nil
}
