package repository

import "ledgerly-api/internal/model"

// CreateOptions contains options for creating a user.
type CreateOptions struct {
	User model.User
}

// GetOneOptions contains options for getting a single user.
// Exactly one selector should be set; they are checked in field order.
type GetOneOptions struct {
	ID           string
	Username     string
	Email        string
	RefreshToken string
}

// ListOptions contains options for listing users.
type ListOptions struct {
	Filter Filter
}

// Filter contains filtering options for user queries.
type Filter struct {
	Emails []string
}
