// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGameConfigNotFound is returned when no settings document exists for a
// (user, game) pair.
var ErrGameConfigNotFound = errors.New("game config not found")

// GameConfigRepository defines the operations for the per-user per-game
// settings documents. Backed by the document store, not the relational one.
type GameConfigRepository interface {
	// Upsert creates or replaces the settings document keyed by
	// (UserID, GameID) and returns the stored record.
	Upsert(ctx context.Context, config *entity.GameConfig) (*entity.GameConfig, error)

	// Find retrieves the settings document for a (user, game) pair.
	Find(ctx context.Context, userID, gameID uuid.UUID) (*entity.GameConfig, error)

	// ListByUser retrieves all of a user's settings documents, most
	// recently updated first.
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entity.GameConfig, error)

	// Delete removes the settings document for a (user, game) pair.
	// Deleting a missing document is not an error.
	Delete(ctx context.Context, userID, gameID uuid.UUID) error
}
