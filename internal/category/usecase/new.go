package usecase

import (
	"ledgerly-api/internal/category"
	"ledgerly-api/internal/category/repository"
	transactionRepo "ledgerly-api/internal/transaction/repository"
	pkgLog "ledgerly-api/pkg/log"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	trRepo transactionRepo.Repository
}

func New(l pkgLog.Logger, repo repository.Repository, trRepo transactionRepo.Repository) category.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		trRepo: trRepo,
	}
}
