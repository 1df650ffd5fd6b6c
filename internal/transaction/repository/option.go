package repository

import (
	"time"

	"ledgerly-api/internal/model"
)

// CreateOptions contains options for creating a transaction.
type CreateOptions struct {
	Transaction model.Transaction
}

// GetOneOptions contains options for getting a single transaction.
// Username, when set, restricts the lookup to that user's transactions.
type GetOneOptions struct {
	ID       string
	Username string
}

// Filter narrows a transaction listing. Zero-valued fields are ignored.
type Filter struct {
	Username  string
	Usernames []string
	Type      string
	DateFrom  *time.Time
	DateTo    *time.Time
	MinAmount *float64
	MaxAmount *float64
}

// ListOptions contains options for listing transactions.
type ListOptions struct {
	Filter Filter
}
