package domain

import (
	"time"
)

// Role represents user role. The system assigns exactly one role per identity.
type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// User represents a user entity
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Never serialize password
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal is the request-scoped identity established after token
// validation. It is populated by the authentication middleware, passed
// explicitly into service calls and discarded when the request completes.
type Principal struct {
	Email string
	Role  Role
}

// IsAdmin reports whether the principal carries the ADMIN role
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// TokenPair represents access and refresh tokens
type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}
