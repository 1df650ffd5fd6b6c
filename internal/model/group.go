package model

import "time"

// Group is a named set of users pooling their expenses.
type Group struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Members   []Member  `json:"members"`
	CreatedAt time.Time `json:"created_at"`
}

// Member is a user's membership entry inside a group.
type Member struct {
	Email  string `json:"email"`
	UserID string `json:"user_id"`
}

// MemberEmails returns the emails of all members in order.
func (g Group) MemberEmails() []string {
	emails := make([]string, 0, len(g.Members))
	for _, m := range g.Members {
		emails = append(emails, m.Email)
	}
	return emails
}
