// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Game is a catalog entry. The catalog is global and shared by all users.
type Game struct {
	ID        uuid.UUID // The unique identifier for the game.
	Title     string    // The game's title.
	Platform  string    // The platform the game runs on, e.g. "PC", "PS5".
	Price     float64   // The catalog price of the game.
	Publisher string    // The publisher's name.
	CreatedAt time.Time // Timestamp of when the game was added to the catalog.
}

// LibraryEntry records that a user owns a game.
type LibraryEntry struct {
	UserID     uuid.UUID // The owning user.
	GameID     uuid.UUID // The owned game.
	AcquiredAt time.Time // When the game entered the user's library.
	Game       *Game     // The catalog record, populated on reads.
}
