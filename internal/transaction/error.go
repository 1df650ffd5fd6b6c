package transaction

import "errors"

var (
	ErrMissingParams       = errors.New("one or more parameters are missing or empty")
	ErrNotParseableAmount  = errors.New("amount is not parseable")
	ErrUsernameMismatch    = errors.New("route and body username mismatch")
	ErrUserNotFound        = errors.New("user not found")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrGroupNotFound       = errors.New("group not found")
	ErrTransactionNotFound = errors.New("transaction not found for this user")
	ErrMissingID           = errors.New("missing or empty id in request body")
	ErrMissingIDs          = errors.New("missing ids in request body")
	ErrEmptyIDs            = errors.New("ids array cannot be empty")
	ErrEmptyID             = errors.New("ids cannot be empty")
	ErrIDsMismatch         = errors.New("one or more ids have no corresponding transaction")

	ErrDateAndInterval   = errors.New("single date and interval selected")
	ErrInvalidDateFormat = errors.New("invalid date format")
	ErrAmountNotNumber   = errors.New("min or max is not a number")

	ErrReceiptNotFound    = errors.New("no receipt for this transaction")
	ErrMissingReceiptFile = errors.New("missing receipt file")
)
