package impl

import (
	"context"
	"log/slog"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/domain/repository"
	"gamevault/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gameService implements the GameUsecase interface.
type gameService struct {
	gameRepo repository.GameRepository
	logger   *slog.Logger
}

// GameServiceParams holds dependencies for gameService, injected by Fx.
type GameServiceParams struct {
	fx.In

	GameRepo repository.GameRepository
	Logger   *slog.Logger
}

// NewGameService is the constructor for gameService.
func NewGameService(params GameServiceParams) usecase.GameUsecase {
	return &gameService{
		gameRepo: params.GameRepo,
		logger:   params.Logger,
	}
}

func (srv *gameService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListGames returns the full catalog ordered by title.
func (srv *gameService) ListGames(ctx context.Context) (*usecase.ListGamesOutput, error) {
	games, err := srv.gameRepo.FindAll(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list catalog", slog.Any("error", err))

		return nil, errors.Wrap(err, "list games")
	}

	return &usecase.ListGamesOutput{Games: games}, nil
}
