package model

const (
	RoleRegular = "Regular"
	RoleAdmin   = "Admin"
)

// Scope is the identity of the authenticated caller, extracted from the
// session tokens.
type Scope struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"` // Regular or Admin
}

// IsAdmin checks if the scope has admin role
func (s Scope) IsAdmin() bool {
	return s.Role == RoleAdmin
}
