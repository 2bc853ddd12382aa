// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrGameNotFound is returned when a catalog game is not found.
var ErrGameNotFound = errors.New("game not found")

// GameRepository defines the read operations for the game catalog.
type GameRepository interface {
	// FindByID retrieves a single catalog game by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Game, error)

	// FindAll retrieves the full catalog ordered by title ascending.
	FindAll(ctx context.Context) ([]*entity.Game, error)
}
