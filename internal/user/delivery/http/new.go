package http

import (
	"ledgerly-api/internal/user"
	"ledgerly-api/pkg/authgate"
	pkgLog "ledgerly-api/pkg/log"
)

type Handler struct {
	l    pkgLog.Logger
	uc   user.UseCase
	gate *authgate.Gate
}

func New(l pkgLog.Logger, uc user.UseCase, gate *authgate.Gate) *Handler {
	return &Handler{
		l:    l,
		uc:   uc,
		gate: gate,
	}
}
