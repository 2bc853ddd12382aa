package usecase

import (
	"context"

	"gamevault/internal/domain/entity"
)

// ListGamesOutput returns the full catalog.
type ListGamesOutput struct {
	Games []*entity.Game
}

// GameUsecase defines the read operations on the shared game catalog.
type GameUsecase interface {
	// ListGames returns every catalog game ordered by title.
	ListGames(ctx context.Context) (*ListGamesOutput, error)
}
