package http

import (
	"errors"

	"ledgerly-api/internal/user"
	pkgErrors "ledgerly-api/pkg/errors"
)

var errBadRequest = errors.New("bad request")

func (h *Handler) errorMapping() map[error]*pkgErrors.HTTPError {
	return map[error]*pkgErrors.HTTPError{
		errBadRequest:             pkgErrors.NewBadRequestHTTPError("All attributes are required"),
		user.ErrMissingAttributes: pkgErrors.NewBadRequestHTTPError("All attributes are required"),
		user.ErrEmptyAttributes:   pkgErrors.NewBadRequestHTTPError("Parameters cannot be empty"),
		user.ErrInvalidEmail:      pkgErrors.NewBadRequestHTTPError("Invalid email format"),
		user.ErrUserNotFound:      pkgErrors.NewBadRequestHTTPError("Username not in database!"),
		user.ErrEmailNotFound:     pkgErrors.NewBadRequestHTTPError("Email not in database"),
		user.ErrCannotDeleteAdmin: pkgErrors.NewBadRequestHTTPError("Cannot delete an admin this way"),
	}
}
