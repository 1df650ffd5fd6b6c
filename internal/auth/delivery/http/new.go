package http

import (
	"ledgerly-api/internal/auth"
	"ledgerly-api/pkg/authgate"
	pkgLog "ledgerly-api/pkg/log"
)

type Handler struct {
	l    pkgLog.Logger
	uc   auth.UseCase
	gate *authgate.Gate
}

func New(l pkgLog.Logger, uc auth.UseCase, gate *authgate.Gate) *Handler {
	return &Handler{
		l:    l,
		uc:   uc,
		gate: gate,
	}
}
