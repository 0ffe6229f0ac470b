package entity

import (
	"time"

	"github.com/google/uuid"
)

// Role is an authorization role carried in the access token.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

// User is a storefront account. Authentication state (password hash) lives
// alongside the identity because the platform supports a single credential
// provider; roles drive the admin route guard.
type User struct {
	ID           uuid.UUID // The unique identifier of the user.
	Email        string    // Login identifier, unique.
	Name         string    // Display name.
	PasswordHash string    // bcrypt hash, never serialized outward.
	Roles        []Role    // Authorization roles. Every account has at least RoleCustomer.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// HasRole reports whether the user carries the given role.
func (u *User) HasRole(role Role) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}

	return false
}

// RoleStrings returns the roles as plain strings for token claims.
func (u *User) RoleStrings() []string {
	out := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		out = append(out, string(r))
	}

	return out
}
