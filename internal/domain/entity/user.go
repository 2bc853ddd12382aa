// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the core identity record of the system.
// The very first account ever created is promoted to RoleAdmin at
// registration time; every later account starts as RoleUser.
type User struct {
	ID           uuid.UUID // The unique identifier for the user.
	Email        string    // The user's login identifier. Unique, compared exactly as stored.
	PasswordHash string    // The bcrypt hash of the user's password. Never exposed outside persistence.
	DisplayName  string    // The user's display name.
	Role         Role      // The user's role, either RoleAdmin or RoleUser.
	CreatedAt    time.Time // Timestamp of when this account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this account.
}

// Identity is the request-scoped, verified identity of a caller, derived
// from a validated access token. It is the "actor" of every RBAC check.
type Identity struct {
	ID    uuid.UUID
	Email string
	Role  Role
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
