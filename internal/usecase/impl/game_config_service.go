package impl

import (
	"context"
	"log/slog"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/policy"
	"gamevault/internal/domain/repository"
	"gamevault/internal/domain/service"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// gameConfigService implements the GameConfigUsecase interface.
// Settings documents live in the document store; only the catalog existence
// check touches the relational side.
type gameConfigService struct {
	gameConfigRepo repository.GameConfigRepository
	gameRepo       repository.GameRepository
	clock          service.Clock
	logger         *slog.Logger
}

// GameConfigServiceParams holds dependencies for gameConfigService, injected by Fx.
type GameConfigServiceParams struct {
	fx.In

	GameConfigRepo repository.GameConfigRepository
	GameRepo       repository.GameRepository
	Clock          service.Clock
	Logger         *slog.Logger
}

// NewGameConfigService is the constructor for gameConfigService.
func NewGameConfigService(params GameConfigServiceParams) usecase.GameConfigUsecase {
	return &gameConfigService{
		gameConfigRepo: params.GameConfigRepo,
		gameRepo:       params.GameRepo,
		clock:          params.Clock,
		logger:         params.Logger,
	}
}

func (srv *gameConfigService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveGameConfig creates or replaces the settings document for a game the
// catalog knows. Owner-only: admins cannot write another user's settings.
func (srv *gameConfigService) SaveGameConfig(ctx context.Context, input usecase.SaveGameConfigInput) (*usecase.SaveGameConfigOutput, error) {
	targetUserID, err := srv.resolveTarget(input.Actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	if err := policy.EnsureCanWriteConfig(input.Actor, targetUserID); err != nil {
		return nil, err
	}
	if input.GameID == uuid.Nil {
		return nil, domainerrors.ErrMissingGame.WrapMessage("config save without game id")
	}

	if _, err := srv.gameRepo.FindByID(ctx, input.GameID); err != nil {
		if errors.Is(err, repository.ErrGameNotFound) {
			return nil, domainerrors.ErrGameNotFound.WrapMessage("config for unknown game")
		}

		return nil, errors.Wrap(err, "find catalog game")
	}

	settings := input.Settings
	if settings == nil {
		settings = map[string]any{}
	}

	stored, err := srv.gameConfigRepo.Upsert(ctx, &entity.GameConfig{
		UserID:    targetUserID,
		GameID:    input.GameID,
		Settings:  settings,
		UpdatedAt: srv.clock.Now(),
	})
	if err != nil {
		return nil, errors.Wrap(err, "upsert game config")
	}

	srv.log(ctx).Info("Game config saved",
		slog.Any("userID", targetUserID), slog.Any("gameID", input.GameID))

	return &usecase.SaveGameConfigOutput{Config: stored}, nil
}

// GetGameConfig reads one settings document.
func (srv *gameConfigService) GetGameConfig(ctx context.Context, input usecase.GetGameConfigInput) (*usecase.GetGameConfigOutput, error) {
	targetUserID, err := srv.resolveTarget(input.Actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	if err := policy.EnsureCanRead(input.Actor, targetUserID); err != nil {
		return nil, err
	}
	if input.GameID == uuid.Nil {
		return nil, domainerrors.ErrMissingGame.WrapMessage("config read without game id")
	}

	config, err := srv.gameConfigRepo.Find(ctx, targetUserID, input.GameID)
	if errors.Is(err, repository.ErrGameConfigNotFound) {
		return nil, domainerrors.ErrConfigNotFound.WrapMessage("no settings stored for this game")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find game config")
	}

	return &usecase.GetGameConfigOutput{Config: config}, nil
}

// ListGameConfigs reads all of the target user's settings documents.
func (srv *gameConfigService) ListGameConfigs(ctx context.Context, input usecase.ListGameConfigsInput) (*usecase.ListGameConfigsOutput, error) {
	targetUserID, err := srv.resolveTarget(input.Actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	if err := policy.EnsureCanRead(input.Actor, targetUserID); err != nil {
		return nil, err
	}

	configs, err := srv.gameConfigRepo.ListByUser(ctx, targetUserID)
	if err != nil {
		return nil, errors.Wrap(err, "list game configs")
	}

	return &usecase.ListGameConfigsOutput{Configs: configs}, nil
}

// RemoveGameConfig deletes one settings document. Owner-only, like saves.
// Removing a document that was never stored succeeds.
func (srv *gameConfigService) RemoveGameConfig(ctx context.Context, input usecase.RemoveGameConfigInput) (*usecase.RemoveGameConfigOutput, error) {
	targetUserID, err := srv.resolveTarget(input.Actor, input.TargetUserID)
	if err != nil {
		return nil, err
	}
	if err := policy.EnsureCanWriteConfig(input.Actor, targetUserID); err != nil {
		return nil, err
	}
	if input.GameID == uuid.Nil {
		return nil, domainerrors.ErrMissingGame.WrapMessage("config remove without game id")
	}

	if err := srv.gameConfigRepo.Delete(ctx, targetUserID, input.GameID); err != nil {
		return nil, errors.Wrap(err, "delete game config")
	}

	srv.log(ctx).Info("Game config removed",
		slog.Any("userID", targetUserID), slog.Any("gameID", input.GameID))

	return &usecase.RemoveGameConfigOutput{UserID: targetUserID, GameID: input.GameID}, nil
}

func (srv *gameConfigService) resolveTarget(actor entity.Identity, requested uuid.UUID) (uuid.UUID, error) {
	targetUserID := policy.ResolveTargetUserID(actor, requested)
	if targetUserID == uuid.Nil {
		return uuid.Nil, domainerrors.ErrMissingTargetUser.WrapMessage("admin request without target user")
	}

	return targetUserID, nil
}
