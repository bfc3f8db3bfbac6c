package domain

import "time"

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Account is the session's read-only copy of a user record. The auth
// service owns it; the storefront only caches it for the session lifetime.
type Account struct {
	ID       int       `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	JoinDate time.Time `json:"join_date"`
	Role     Role      `json:"role"`
}

func (a *Account) IsAdmin() bool {
	return a != nil && a.Role == RoleAdmin
}
