package models

import "time"

// Roles assignable to a user record.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User is the persisted credential record. PasswordHash never crosses the
// service boundary; handlers only ever see PublicUser.
type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
}

// PublicUser is the client-facing view of a user.
type PublicUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Public returns the user view that is safe to serialize to clients.
func (u *User) Public() *PublicUser {
	return &PublicUser{
		ID:       u.ID,
		Email:    u.Email,
		Username: u.Username,
		Role:     u.Role,
	}
}
