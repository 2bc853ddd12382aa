package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gamevault/internal/delivery/http/middleware"
	"gamevault/internal/delivery/http/response"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// LibraryHandler holds dependencies for the per-user library handlers.
type LibraryHandler struct {
	uc     usecase.LibraryUsecase
	logger *slog.Logger
}

// NewLibraryHandler is the constructor for LibraryHandler, injected by Fx.
func NewLibraryHandler(uc usecase.LibraryUsecase, logger *slog.Logger) *LibraryHandler {
	return &LibraryHandler{
		uc:     uc,
		logger: logger,
	}
}

type addToLibraryRequest struct {
	GameID string `json:"gameId" validate:"required,uuid"`
}

// libraryEntryView flattens the catalog record into the ownership row, so
// clients get one object per owned game.
type libraryEntryView struct {
	ID         string    `json:"id"` // The game's catalog id.
	Title      string    `json:"title"`
	Platform   string    `json:"platform"`
	Price      float64   `json:"price"`
	Publisher  string    `json:"publisher"`
	AcquiredAt time.Time `json:"acquiredAt"`
}

func toLibraryEntryView(entry *entity.LibraryEntry) libraryEntryView {
	view := libraryEntryView{
		ID:         entry.GameID.String(),
		AcquiredAt: entry.AcquiredAt,
	}
	if entry.Game != nil {
		view.Title = entry.Game.Title
		view.Platform = entry.Game.Platform
		view.Price = entry.Game.Price
		view.Publisher = entry.Game.Publisher
	}

	return view
}

// List handles the library listing request for the target user.
func (h *LibraryHandler) List(c echo.Context) error {
	identity, targetUserID, err := targetFromPath(c)
	if err != nil {
		return err
	}

	output, err := h.uc.ListLibrary(c.Request().Context(), usecase.ListLibraryInput{
		Actor:        identity,
		TargetUserID: targetUserID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	entries := make([]libraryEntryView, 0, len(output.Entries))
	for _, entry := range output.Entries {
		entries = append(entries, toLibraryEntryView(entry))
	}

	return response.Success(c, http.StatusOK, entries, "")
}

// Add handles the ownership creation request.
func (h *LibraryHandler) Add(c echo.Context) error {
	identity, targetUserID, err := targetFromPath(c)
	if err != nil {
		return err
	}

	var req addToLibraryRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid library input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid library input")
	}

	gameID, err := uuid.Parse(req.GameID)
	if err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid game id")
	}

	output, err := h.uc.AddToLibrary(c.Request().Context(), usecase.AddToLibraryInput{
		Actor:        identity,
		TargetUserID: targetUserID,
		GameID:       gameID,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toLibraryEntryView(output.Entry), "Game added to library")
}

// Remove handles the ownership removal request.
func (h *LibraryHandler) Remove(c echo.Context) error {
	identity, targetUserID, err := targetFromPath(c)
	if err != nil {
		return err
	}

	gameID, err := uuid.Parse(c.Param("gameId"))
	if err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid game id")
	}

	if err := h.uc.RemoveFromLibrary(c.Request().Context(), usecase.RemoveFromLibraryInput{
		Actor:        identity,
		TargetUserID: targetUserID,
		GameID:       gameID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"id":      gameID.String(),
		"deleted": true,
	}, "Game removed from library")
}

// targetFromPath extracts the verified identity and the :id path target.
// Failures are returned as domain errors for the central error handler.
func targetFromPath(c echo.Context) (entity.Identity, uuid.UUID, error) {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return entity.Identity{}, uuid.Nil, domainerrors.ErrUnauthenticated
	}

	targetUserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return entity.Identity{}, uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid user id in path")
	}

	return identity, targetUserID, nil
}
