package repository

// CreateOptions contains options for creating a category.
type CreateOptions struct {
	Type  string
	Color string
}

// GetOneOptions contains options for getting a single category.
type GetOneOptions struct {
	Type string
}

// UpdateOptions contains the new values for a category.
type UpdateOptions struct {
	Type  string
	Color string
}
