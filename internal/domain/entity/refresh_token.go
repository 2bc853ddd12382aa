// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken represents a long-lived, single-use session credential.
// Only the SHA-256 hash of the raw token value is ever persisted; the raw
// value is handed to the client exactly once, at issuance.
type RefreshToken struct {
	ID        uuid.UUID  // The unique ID for this specific refresh token record.
	UserID    uuid.UUID  // Links this session to the User it belongs to.
	TokenHash string     // SHA-256 hash of the raw refresh token for secure comparison.
	ExpiresAt time.Time  // The exact time when this refresh token becomes invalid.
	RevokedAt *time.Time // Set when the token is revoked; nil while the token is live.
	CreatedAt time.Time  // Timestamp of when this session was created.
}

// Revoked reports whether the token has been explicitly revoked.
func (t *RefreshToken) Revoked() bool {
	return t.RevokedAt != nil
}

// ExpiredAt reports whether the token is past its expiry at the given instant.
func (t *RefreshToken) ExpiredAt(now time.Time) bool {
	return !t.ExpiresAt.After(now)
}
