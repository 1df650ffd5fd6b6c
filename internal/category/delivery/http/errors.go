package http

import (
	"ledgerly-api/internal/category"
	pkgErrors "ledgerly-api/pkg/errors"
)

func (h *Handler) errorMapping() map[error]*pkgErrors.HTTPError {
	return map[error]*pkgErrors.HTTPError{
		category.ErrMissingValues:    pkgErrors.NewBadRequestHTTPError("Missing values in the parameters or body"),
		category.ErrIncompleteBody:   pkgErrors.NewBadRequestHTTPError("Request's body is incomplete; it should contain non-empty type and color"),
		category.ErrTypeExists:       pkgErrors.NewBadRequestHTTPError("A category of this type is already present"),
		category.ErrCategoryNotFound: pkgErrors.NewBadRequestHTTPError("The requested category doesn't exists"),
		category.ErrNewTypeTaken:     pkgErrors.NewBadRequestHTTPError("The new category type is already present and belongs to another category"),
		category.ErrEmptyTypes:       pkgErrors.NewBadRequestHTTPError("Request's body is incomplete. It should contain a non-empty array of types"),
		category.ErrLastCategory:     pkgErrors.NewBadRequestHTTPError("There is only one category in the database and it cannot be deleted"),
		category.ErrEmptyTypeInList:  pkgErrors.NewBadRequestHTTPError("Types in the array should not be empty"),
	}
}
