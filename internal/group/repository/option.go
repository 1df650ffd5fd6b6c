package repository

import "ledgerly-api/internal/model"

// CreateOptions contains options for creating a group with its initial members.
type CreateOptions struct {
	Name    string
	Members []model.Member
}

// GetOneOptions contains options for getting a single group.
// Exactly one selector should be set; they are checked in field order.
type GetOneOptions struct {
	ID          string
	Name        string
	MemberEmail string
}
