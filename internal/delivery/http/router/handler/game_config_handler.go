package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gamevault/internal/delivery/http/response"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameConfigHandler holds dependencies for the per-game settings handlers.
type GameConfigHandler struct {
	uc     usecase.GameConfigUsecase
	logger *slog.Logger
}

// NewGameConfigHandler is the constructor for GameConfigHandler, injected by Fx.
func NewGameConfigHandler(uc usecase.GameConfigUsecase, logger *slog.Logger) *GameConfigHandler {
	return &GameConfigHandler{
		uc:     uc,
		logger: logger,
	}
}

type saveGameConfigRequest struct {
	Settings map[string]any `json:"settings"`
}

type gameConfigView struct {
	UserID    string         `json:"userId"`
	GameID    string         `json:"gameId"`
	Settings  map[string]any `json:"settings"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

func toGameConfigView(config *entity.GameConfig) gameConfigView {
	return gameConfigView{
		UserID:    config.UserID.String(),
		GameID:    config.GameID.String(),
		Settings:  config.Settings,
		UpdatedAt: config.UpdatedAt,
	}
}

// Save handles the settings create-or-replace request.
func (h *GameConfigHandler) Save(c echo.Context) error {
	identity, targetUserID, err := targetFromPath(c)
	if err != nil {
		return err
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid game id")
	}

	var req saveGameConfigRequest
	if err := c.Bind(&req); err != nil {
		// A non-object settings payload fails the bind into the map.
		return response.BindingError(c,
			domainerrors.ErrInvalidSettings.ErrorCode(),
			domainerrors.ErrInvalidSettings.Message())
	}

	output, err := h.uc.SaveGameConfig(c.Request().Context(), usecase.SaveGameConfigInput{
		Actor:        identity,
		TargetUserID: targetUserID,
		GameID:       gameID,
		Settings:     req.Settings,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameConfigView(output.Config), "Settings saved")
}

// Get handles the single settings document read request.
func (h *GameConfigHandler) Get(c echo.Context) error {
	identity, targetUserID, err := targetFromPath(c)
	if err != nil {
		return err
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid game id")
	}

	output, err := h.uc.GetGameConfig(c.Request().Context(), usecase.GetGameConfigInput{
		Actor:        identity,
		TargetUserID: targetUserID,
		GameID:       gameID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toGameConfigView(output.Config), "")
}

// List handles the settings listing request for the target user.
func (h *GameConfigHandler) List(c echo.Context) error {
	identity, targetUserID, err := targetFromPath(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListGameConfigs(c.Request().Context(), usecase.ListGameConfigsInput{
		Actor:        identity,
		TargetUserID: targetUserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	configs := make([]gameConfigView, 0, len(output.Configs))
	for _, config := range output.Configs {
		configs = append(configs, toGameConfigView(config))
	}

	return response.Success(c, http.StatusOK, configs, "")
}

// Remove handles the settings deletion request.
func (h *GameConfigHandler) Remove(c echo.Context) error {
	identity, targetUserID, err := targetFromPath(c)
	if err != nil {
		return err
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid game id")
	}

	out, err := h.uc.RemoveGameConfig(c.Request().Context(), usecase.RemoveGameConfigInput{
		Actor:        identity,
		TargetUserID: targetUserID,
		GameID:       gameID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"userId":  out.UserID.String(),
		"gameId":  out.GameID.String(),
		"deleted": true,
	}, "Settings removed")
}
