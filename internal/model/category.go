package model

import "time"

// Category labels transactions with a type and a display color.
// Type is unique across categories.
type Category struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}
