package http

import (
	"ledgerly-api/internal/group"
	"ledgerly-api/internal/transaction"
	"ledgerly-api/pkg/authgate"
	pkgLog "ledgerly-api/pkg/log"
)

// Handler depends on the group use case as well: the group-scoped routes
// need the member list before the authorization check can run.
type Handler struct {
	l       pkgLog.Logger
	uc      transaction.UseCase
	groupUC group.UseCase
	gate    *authgate.Gate
}

func New(l pkgLog.Logger, uc transaction.UseCase, groupUC group.UseCase, gate *authgate.Gate) *Handler {
	return &Handler{
		l:       l,
		uc:      uc,
		groupUC: groupUC,
		gate:    gate,
	}
}
