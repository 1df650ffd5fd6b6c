package token

import "github.com/golang-jwt/jwt"

// Role values carried in the role claim.
const (
	RoleRegular = "Regular"
	RoleAdmin   = "Admin"
)

// Claims is the identity payload embedded in both the access and the refresh
// token. Username, Email and Role are required for a token to be considered
// well formed by the authorization layer; ID is informational only.
type Claims struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	ID       string `json:"id,omitempty"`
	Role     string `json:"role"`
	jwt.StandardClaims
}

// Codec signs and verifies claim sets with a single shared HMAC secret.
// It holds no mutable state and is safe for concurrent use.
type Codec struct {
	secret []byte
}
