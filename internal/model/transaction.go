package model

import "time"

// Transaction is a single expense recorded by a user. Type references a
// category by its type label; Color is filled in when the transaction is
// read joined with its category.
type Transaction struct {
	ID         string    `json:"id"`
	Username   string    `json:"username"`
	Type       string    `json:"type"`
	Amount     float64   `json:"amount"`
	Date       time.Time `json:"date"`
	Color      string    `json:"color,omitempty"`
	ReceiptKey *string   `json:"-"`
}
