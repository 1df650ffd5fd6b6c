package category

type CreateInput struct {
	Type  string
	Color string
}

type UpdateInput struct {
	OldType string
	Type    string
	Color   string
}

// UpdateOutput reports how many transactions were moved to the new type.
type UpdateOutput struct {
	RetypedTransactions int64
}

// DeleteOutput reports how many transactions were reassigned to the
// surviving category.
type DeleteOutput struct {
	AffectedTransactions int64
}
