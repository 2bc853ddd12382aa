// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrLibraryEntryNotFound is returned when a user does not own the given game.
var ErrLibraryEntryNotFound = errors.New("library entry not found")

// LibraryRepository defines the operations for per-user game ownership.
type LibraryRepository interface {
	// FindByUser retrieves a user's library entries, newest acquisition
	// first, with the catalog record populated on each entry.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.LibraryEntry, error)

	// FindByUserAndGame retrieves a single entry by its composite key.
	FindByUserAndGame(ctx context.Context, userID, gameID uuid.UUID) (*entity.LibraryEntry, error)

	// Create persists a new ownership record.
	Create(ctx context.Context, entry *entity.LibraryEntry) error

	// Delete removes an ownership record by its composite key.
	Delete(ctx context.Context, userID, gameID uuid.UUID) error
}
