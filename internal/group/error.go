package group

import "errors"

var (
	ErrGroupNotFound      = errors.New("group not found")
	ErrMissingParameters  = errors.New("missing or empty parameters")
	ErrNameUsed           = errors.New("group name already used")
	ErrAlreadyInGroup     = errors.New("caller already in a group")
	ErrEmptyEmail         = errors.New("emails cannot be empty")
	ErrInvalidEmailFormat = errors.New("invalid email format inserted")
	ErrNotEnoughMembers   = errors.New("insert valid emails")
	ErrMissingBodyAttrs   = errors.New("missing or empty body attributes")
	ErrLastMember         = errors.New("cannot remove members from a group with only one user")
	ErrNoneInGroup        = errors.New("none of the emails are in this group")
	ErrMissingName        = errors.New("group name not inserted")
	ErrEmptyName          = errors.New("group name is an empty string")
)
