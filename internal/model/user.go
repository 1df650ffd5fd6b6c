package model

import "time"

// User represents a registered account in the domain layer.
// Password holds the bcrypt hash and is never serialized.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	Password     string    `json:"-"`
	Role         string    `json:"role"`
	RefreshToken *string   `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}
