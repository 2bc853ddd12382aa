package handler

import (
	"log/slog"
	"net/http"
	"time"

	"gamevault/internal/delivery/http/response"
	"gamevault/internal/domain/entity"
	"gamevault/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// GameHandler holds dependencies for the catalog handlers.
type GameHandler struct {
	uc     usecase.GameUsecase
	logger *slog.Logger
}

// NewGameHandler is the constructor for GameHandler, injected by Fx.
func NewGameHandler(uc usecase.GameUsecase, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		uc:     uc,
		logger: logger,
	}
}

type gameView struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Platform  string    `json:"platform"`
	Price     float64   `json:"price"`
	Publisher string    `json:"publisher"`
	CreatedAt time.Time `json:"createdAt"`
}

func toGameView(game *entity.Game) gameView {
	return gameView{
		ID:        game.ID.String(),
		Title:     game.Title,
		Platform:  game.Platform,
		Price:     game.Price,
		Publisher: game.Publisher,
		CreatedAt: game.CreatedAt,
	}
}

// List handles the catalog listing request.
func (h *GameHandler) List(c echo.Context) error {
	output, err := h.uc.ListGames(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	games := make([]gameView, 0, len(output.Games))
	for _, game := range output.Games {
		games = append(games, toGameView(game))
	}

	return response.Success(c, http.StatusOK, games, "")
}
