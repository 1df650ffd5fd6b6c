package transaction

import (
	"context"

	"ledgerly-api/internal/model"
	pkgMinio "ledgerly-api/pkg/minio"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Create(ctx context.Context, sc model.Scope, ip CreateInput) (model.Transaction, error)

	ListAll(ctx context.Context, sc model.Scope) ([]model.Transaction, error)
	ListByUser(ctx context.Context, sc model.Scope, ip ListByUserInput) ([]model.Transaction, error)
	ListByUserByCategory(ctx context.Context, sc model.Scope, username, categoryType string) ([]model.Transaction, error)
	ListByGroup(ctx context.Context, sc model.Scope, name string) ([]model.Transaction, error)
	ListByGroupByCategory(ctx context.Context, sc model.Scope, name, categoryType string) ([]model.Transaction, error)

	Delete(ctx context.Context, sc model.Scope, username, id string) error
	DeleteMany(ctx context.Context, sc model.Scope, ids []string) error

	UploadReceipt(ctx context.Context, sc model.Scope, ip UploadReceiptInput) error
	DownloadReceipt(ctx context.Context, sc model.Scope, username, id string) (*pkgMinio.Object, error)
}
