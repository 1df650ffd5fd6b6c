package authgate

// Mode selects the policy applied after both session tokens verify.
// The set of modes is closed; each endpoint picks exactly one.
type Mode interface {
	isMode()
}

// Simple requires nothing beyond a valid session.
type Simple struct{}

// User requires the session to belong to the named account.
type User struct {
	Username string
}

// Admin requires the session role to be Admin.
type Admin struct{}

// Group requires the session email to appear among the member emails.
type Group struct {
	Members []string
}

func (Simple) isMode() {}
func (User) isMode()   {}
func (Admin) isMode()  {}
func (Group) isMode()  {}
