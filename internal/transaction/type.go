package transaction

import "io"

type CreateInput struct {
	Username string
	Type     string
	Amount   float64
}

// ListByUserInput carries the target username and the raw query filter.
// The filter is honored for regular users only; the admin variant passes
// it empty. The user lookup runs before the filter is validated.
type ListByUserInput struct {
	Username string
	Filter   FilterParams
}

type UploadReceiptInput struct {
	Username    string
	ID          string
	Reader      io.Reader
	Size        int64
	ContentType string
}
