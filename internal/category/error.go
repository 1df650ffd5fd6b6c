package category

import (
	"errors"
	"fmt"
)

var (
	ErrMissingValues    = errors.New("missing values in the parameters or body")
	ErrIncompleteBody   = errors.New("type and color must be non-empty")
	ErrTypeExists       = errors.New("a category of this type already exists")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNewTypeTaken     = errors.New("the new type already belongs to another category")
	ErrEmptyTypes       = errors.New("types array is missing or empty")
	ErrEmptyTypeInList  = errors.New("types in the array cannot be empty")
	ErrLastCategory     = errors.New("the last category cannot be deleted")
)

// TypeNotFoundError reports a delete request naming a type that does not
// exist. It carries the type so the transport layer can echo it back.
type TypeNotFoundError struct {
	Type string
}

func (e *TypeNotFoundError) Error() string {
	return fmt.Sprintf("category of type %q not found", e.Type)
}
