package usecase

import (
	"ledgerly-api/internal/group"
	"ledgerly-api/internal/group/repository"
	userRepo "ledgerly-api/internal/user/repository"
	pkgLog "ledgerly-api/pkg/log"
)

type usecase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	userRepo userRepo.Repository
}

func New(l pkgLog.Logger, repo repository.Repository, userRepo userRepo.Repository) group.UseCase {
	return &usecase{
		l:        l,
		repo:     repo,
		userRepo: userRepo,
	}
}
