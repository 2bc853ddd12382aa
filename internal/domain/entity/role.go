// Package entity contains the core business objects of the project.
package entity

import "strings"

// Role represents the access level a user has in the system.
type Role string

const (
	// RoleAdmin grants access to every user's resources plus the admin-only operations.
	RoleAdmin Role = "ADMIN"
	// RoleUser grants access to the user's own resources only.
	RoleUser Role = "USER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is one of the two known values.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleUser:
		return true
	default:
		return false
	}
}

// ParseRole normalizes a role string (case-insensitive) into a Role.
// The second return value reports whether the input named a known role.
func ParseRole(s string) (Role, bool) {
	role := Role(strings.ToUpper(strings.TrimSpace(s)))

	return role, role.IsValid()
}
