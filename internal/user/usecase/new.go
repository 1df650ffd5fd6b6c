package usecase

import (
	groupRepo "ledgerly-api/internal/group/repository"
	transactionRepo "ledgerly-api/internal/transaction/repository"
	"ledgerly-api/internal/user"
	"ledgerly-api/internal/user/repository"
	pkgLog "ledgerly-api/pkg/log"
)

type usecase struct {
	l      pkgLog.Logger
	repo   repository.Repository
	grRepo groupRepo.Repository
	trRepo transactionRepo.Repository
}

func New(l pkgLog.Logger, repo repository.Repository, grRepo groupRepo.Repository, trRepo transactionRepo.Repository) user.UseCase {
	return &usecase{
		l:      l,
		repo:   repo,
		grRepo: grRepo,
		trRepo: trRepo,
	}
}
