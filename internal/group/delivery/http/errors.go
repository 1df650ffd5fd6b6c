package http

import (
	"ledgerly-api/internal/group"
	pkgErrors "ledgerly-api/pkg/errors"
)

func (h *Handler) errorMapping() map[error]*pkgErrors.HTTPError {
	return map[error]*pkgErrors.HTTPError{
		group.ErrGroupNotFound:      pkgErrors.NewBadRequestHTTPError("Group not existing"),
		group.ErrMissingParameters:  pkgErrors.NewBadRequestHTTPError("Missing or empty parameters"),
		group.ErrNameUsed:           pkgErrors.NewBadRequestHTTPError("Group name already used"),
		group.ErrAlreadyInGroup:     pkgErrors.NewBadRequestHTTPError("You are already in a group"),
		group.ErrEmptyEmail:         pkgErrors.NewBadRequestHTTPError("Emails cannot be empty"),
		group.ErrInvalidEmailFormat: pkgErrors.NewBadRequestHTTPError("Invalid email format inserted"),
		group.ErrNotEnoughMembers:   pkgErrors.NewBadRequestHTTPError("Insert valid emails"),
		group.ErrMissingBodyAttrs:   pkgErrors.NewBadRequestHTTPError("Missing and/or empty body attributes"),
		group.ErrLastMember:         pkgErrors.NewBadRequestHTTPError("Cannot remove members from a group with only one user"),
		group.ErrNoneInGroup:        pkgErrors.NewBadRequestHTTPError("None of the emails are in this group"),
		group.ErrMissingName:        pkgErrors.NewBadRequestHTTPError("Not all the necessary data was inserted"),
		group.ErrEmptyName:          pkgErrors.NewBadRequestHTTPError("The group name is an empty string"),
	}
}
