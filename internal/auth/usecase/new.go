package usecase

import (
	"ledgerly-api/internal/auth"
	userRepo "ledgerly-api/internal/user/repository"
	"ledgerly-api/pkg/authgate"
	pkgLog "ledgerly-api/pkg/log"
)

type usecase struct {
	l    pkgLog.Logger
	repo userRepo.Repository
	gate *authgate.Gate
}

func New(l pkgLog.Logger, repo userRepo.Repository, gate *authgate.Gate) auth.UseCase {
	return &usecase{
		l:    l,
		repo: repo,
		gate: gate,
	}
}
