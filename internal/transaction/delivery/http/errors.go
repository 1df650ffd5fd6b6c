package http

import (
	"ledgerly-api/internal/transaction"
	pkgErrors "ledgerly-api/pkg/errors"
)

func (h *Handler) errorMapping() map[error]*pkgErrors.HTTPError {
	return map[error]*pkgErrors.HTTPError{
		transaction.ErrMissingParams:       pkgErrors.NewBadRequestHTTPError("One or more parameters are missing or empty"),
		transaction.ErrNotParseableAmount:  pkgErrors.NewBadRequestHTTPError("Not parseable amount"),
		transaction.ErrUsernameMismatch:    pkgErrors.NewBadRequestHTTPError("User param and body mismatch"),
		transaction.ErrUserNotFound:        pkgErrors.NewBadRequestHTTPError("No such User"),
		transaction.ErrCategoryNotFound:    pkgErrors.NewBadRequestHTTPError("No such Category"),
		transaction.ErrGroupNotFound:       pkgErrors.NewBadRequestHTTPError("No such Group"),
		transaction.ErrTransactionNotFound: pkgErrors.NewBadRequestHTTPError("No such transaction for this user"),
		transaction.ErrMissingID:           pkgErrors.NewBadRequestHTTPError("Missing or empty id in request body"),
		transaction.ErrMissingIDs:          pkgErrors.NewBadRequestHTTPError("Missing ids in request body"),
		transaction.ErrEmptyIDs:            pkgErrors.NewBadRequestHTTPError("Ids array cannot be empty"),
		transaction.ErrEmptyID:             pkgErrors.NewBadRequestHTTPError("Ids cannot be empty"),
		transaction.ErrIDsMismatch:         pkgErrors.NewBadRequestHTTPError("One or more ids don't have a corresponding transaction"),
		transaction.ErrDateAndInterval:     pkgErrors.NewBadRequestHTTPError("Single date and interval selected"),
		transaction.ErrInvalidDateFormat:   pkgErrors.NewBadRequestHTTPError("Invalid date format, please use 'YYYY-MM-DD'"),
		transaction.ErrAmountNotNumber:     pkgErrors.NewBadRequestHTTPError("min, max or both are not a  number"),
		transaction.ErrReceiptNotFound:     pkgErrors.NewBadRequestHTTPError("No receipt for this transaction"),
		transaction.ErrMissingReceiptFile:  pkgErrors.NewBadRequestHTTPError("Missing receipt file"),
	}
}
