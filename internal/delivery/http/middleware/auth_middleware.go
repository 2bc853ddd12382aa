package middleware

import (
	"log/slog"
	"strings"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/delivery/http/response"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const identityContextKey = "identity"

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, logger *slog.Logger) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, logger: logger}
}

// Authenticate validates the bearer access token and stores the verified
// identity in both the echo context and the request context. Missing and
// malformed headers are logged apart but answered identically.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthenticated.ErrorCode(),
				domainerrors.ErrUnauthenticated.Message())
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			m.logger.Debug("Authorization header without bearer scheme")

			return response.Unauthorized(c,
				domainerrors.ErrUnauthenticated.ErrorCode(),
				domainerrors.ErrUnauthenticated.Message())
		}

		identity, err := m.tokenSvc.VerifyAccessToken(tokenString)
		if err != nil {
			// The verification failure reason stays in the log; the
			// response never distinguishes expired from forged.
			m.logger.Debug("Access token rejected", slog.Any("error", err))

			return response.Unauthorized(c,
				domainerrors.ErrInvalidToken.ErrorCode(),
				"Access token is invalid or expired.")
		}

		c.Set(identityContextKey, identity)

		ctx := deliverycontext.WithIdentity(c.Request().Context(), identity)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// RequireAdmin rejects non-admin callers. It must be used AFTER Authenticate.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := GetIdentity(c)
		if !ok {
			return response.Unauthorized(c,
				domainerrors.ErrUnauthenticated.ErrorCode(),
				domainerrors.ErrUnauthenticated.Message())
		}

		if !identity.IsAdmin() {
			return response.Forbidden(c,
				domainerrors.ErrForbidden.ErrorCode(),
				domainerrors.ErrForbidden.Message())
		}

		return next(c)
	}
}

// GetIdentity extracts the verified identity stored by Authenticate.
func GetIdentity(c echo.Context) (entity.Identity, bool) {
	identity, ok := c.Get(identityContextKey).(entity.Identity)

	return identity, ok
}
