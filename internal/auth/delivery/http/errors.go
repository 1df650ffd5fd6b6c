package http

import (
	"ledgerly-api/internal/auth"
	pkgErrors "ledgerly-api/pkg/errors"
)

func (h *Handler) errorMapping() map[error]*pkgErrors.HTTPError {
	return map[error]*pkgErrors.HTTPError{
		auth.ErrMissingAttributes:    pkgErrors.NewBadRequestHTTPError("All attributes are required"),
		auth.ErrEmptyAttributes:      pkgErrors.NewBadRequestHTTPError("Parameters cannot be empty"),
		auth.ErrInvalidEmail:         pkgErrors.NewBadRequestHTTPError("Invalid email format"),
		auth.ErrAlreadyRegistered:    pkgErrors.NewBadRequestHTTPError("Email/Username already registered"),
		auth.ErrNotRegistered:        pkgErrors.NewBadRequestHTTPError("please you need to register"),
		auth.ErrWrongCredentials:     pkgErrors.NewBadRequestHTTPError("wrong credentials"),
		auth.ErrRefreshTokenNotFound: pkgErrors.NewBadRequestHTTPError("Refresh token not found"),
		auth.ErrUserNotFound:         pkgErrors.NewBadRequestHTTPError("User not found"),
	}
}
