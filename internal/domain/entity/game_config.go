// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// GameConfig holds a user's personal settings for a single game, stored as
// a free-form document keyed by (UserID, GameID).
type GameConfig struct {
	UserID    uuid.UUID      // The owning user.
	GameID    uuid.UUID      // The game the settings apply to.
	Settings  map[string]any // Arbitrary per-game settings. Never nil; empty map when unset.
	UpdatedAt time.Time      // Timestamp of the last write.
}
