package handler

import (
	"log/slog"
	"net/http"

	"gamevault/internal/delivery/http/middleware"
	"gamevault/internal/delivery/http/response"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// UserHandler holds dependencies for the admin user-management handlers.
type UserHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.AuthUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

type changeRoleRequest struct {
	Role string `json:"role" validate:"required"`
}

// ChangeRole handles the role change request for a target user.
func (h *UserHandler) ChangeRole(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c,
			domainerrors.ErrUnauthenticated.ErrorCode(),
			domainerrors.ErrUnauthenticated.Message())
	}

	targetUserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid user id")
	}

	var req changeRoleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid role input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid role input")
	}

	output, err := h.uc.ChangeRole(c.Request().Context(), usecase.ChangeRoleInput{
		Actor:        identity,
		TargetUserID: targetUserID,
		Role:         req.Role,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{
		"id":   output.User.ID.String(),
		"role": output.User.Role.String(),
	}, "Role updated")
}

// Delete handles the account deletion request.
func (h *UserHandler) Delete(c echo.Context) error {
	identity, ok := middleware.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c,
			domainerrors.ErrUnauthenticated.ErrorCode(),
			domainerrors.ErrUnauthenticated.Message())
	}

	targetUserID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BindingError(c, "VALIDATION_FAILED", "Invalid user id")
	}

	if err := h.uc.DeleteUser(c.Request().Context(), usecase.DeleteUserInput{
		Actor:        identity,
		TargetUserID: targetUserID,
	}); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
