package usecase

import (
	categoryRepo "ledgerly-api/internal/category/repository"
	groupRepo "ledgerly-api/internal/group/repository"
	"ledgerly-api/internal/transaction"
	"ledgerly-api/internal/transaction/repository"
	userRepo "ledgerly-api/internal/user/repository"
	pkgLog "ledgerly-api/pkg/log"
	pkgMinio "ledgerly-api/pkg/minio"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	userRepo userRepo.Repository
	catRepo  categoryRepo.Repository
	grRepo   groupRepo.Repository
	minio    pkgMinio.MinIO
}

func New(
	l pkgLog.Logger,
	repo repository.Repository,
	usRepo userRepo.Repository,
	catRepo categoryRepo.Repository,
	grRepo groupRepo.Repository,
	minio pkgMinio.MinIO,
) transaction.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		userRepo: usRepo,
		catRepo:  catRepo,
		grRepo:   grRepo,
		minio:    minio,
	}
}
