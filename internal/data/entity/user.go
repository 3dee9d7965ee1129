package entity

import "strings"

type UserRole string

const (
	RoleTrainer UserRole = "trainer"
	RoleClient  UserRole = "client"
)

type User struct {
	Base
	Username     string   `db:"username"`
	Email        string   `db:"email"`
	PasswordHash string   `db:"password"`
	FirstName    string   `db:"first_name"`
	LastName     string   `db:"last_name"`
	Phone        *string  `db:"phone"`
	Role         UserRole `db:"role"`
	IsActive     bool     `db:"is_active"`
}

// DisplayName is the full name, or the username when no name was given.
func (u *User) DisplayName() string {
	full := strings.TrimSpace(strings.TrimSpace(u.FirstName) + " " + strings.TrimSpace(u.LastName))
	if full == "" {
		return u.Username
	}
	return full
}

// Contact prefers the phone number over the email address.
func (u *User) Contact() string {
	if u.Phone != nil && strings.TrimSpace(*u.Phone) != "" {
		return strings.TrimSpace(*u.Phone)
	}
	return u.Email
}
