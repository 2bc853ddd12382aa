// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no refresh token matches a lookup.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the operations for refresh token persistence.
// Tokens are looked up by the SHA-256 hash of their raw value; the raw value
// never reaches this layer.
type RefreshTokenRepository interface {
	// Create persists a new refresh token, representing a user session.
	Create(ctx context.Context, token *entity.RefreshToken) error

	// FindByHash retrieves a refresh token record by its stored hash,
	// regardless of its revocation or expiry state.
	FindByHash(ctx context.Context, tokenHash string) (*entity.RefreshToken, error)

	// RevokeByHash marks the token with the given hash as revoked at the
	// given instant. Revoking an already revoked token is a no-op.
	RevokeByHash(ctx context.Context, tokenHash string, revokedAt time.Time) error

	// RevokeByID marks the token with the given ID as revoked at the given instant.
	RevokeByID(ctx context.Context, id uuid.UUID, revokedAt time.Time) error

	// DeleteExpired removes tokens whose expiry lies before the cutoff.
	// Called periodically for cleanup; revocation state is not consulted.
	DeleteExpired(ctx context.Context, cutoff time.Time) error
}
