package user

import "errors"

var (
	ErrUserNotFound      = errors.New("username not in database")
	ErrEmailNotFound     = errors.New("email not in database")
	ErrCannotDeleteAdmin = errors.New("cannot delete an admin this way")
	ErrMissingAttributes = errors.New("all attributes are required")
	ErrEmptyAttributes   = errors.New("parameters cannot be empty")
	ErrInvalidEmail      = errors.New("invalid email format")
)
