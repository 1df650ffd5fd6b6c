package auth

import "errors"

var (
	ErrMissingAttributes    = errors.New("all attributes are required")
	ErrEmptyAttributes      = errors.New("parameters cannot be empty")
	ErrInvalidEmail         = errors.New("invalid email format")
	ErrAlreadyRegistered    = errors.New("email or username already registered")
	ErrNotRegistered        = errors.New("not registered")
	ErrWrongCredentials     = errors.New("wrong credentials")
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	ErrUserNotFound         = errors.New("user not found")
)
