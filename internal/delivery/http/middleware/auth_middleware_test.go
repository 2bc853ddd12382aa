package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubTokenService accepts exactly one token string.
type stubTokenService struct {
	validToken string
	identity   entity.Identity
}

func (s *stubTokenService) SignAccessToken(_ *entity.User) (string, error) {
	return s.validToken, nil
}

func (s *stubTokenService) VerifyAccessToken(token string) (entity.Identity, error) {
	if token == s.validToken {
		return s.identity, nil
	}

	return entity.Identity{}, errors.New("token rejected")
}

func (s *stubTokenService) AccessTokenTTL() time.Duration {
	return 15 * time.Minute
}

func (s *stubTokenService) RefreshTokenTTL() time.Duration {
	return 7 * 24 * time.Hour
}

func newTestMiddleware(identity entity.Identity) *AuthMiddleware {
	tokenSvc := &stubTokenService{validToken: "good-token", identity: identity}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewAuthMiddleware(tokenSvc, logger)
}

func runRequest(t *testing.T, m *AuthMiddleware, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := m.Authenticate(next)(c)
	require.NoError(t, err)

	return rec
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	identity := entity.Identity{ID: uuid.New(), Email: "alice@example.com", Role: entity.RoleUser}
	m := newTestMiddleware(identity)

	var seen entity.Identity
	rec := runRequest(t, m, "Bearer good-token", func(c echo.Context) error {
		got, ok := GetIdentity(c)
		require.True(t, ok)
		seen = got

		return c.NoContent(http.StatusOK)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, identity, seen)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	m := newTestMiddleware(entity.Identity{})

	rec := runRequest(t, m, "", func(c echo.Context) error {
		t.Fatal("handler must not run without credentials")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	m := newTestMiddleware(entity.Identity{})

	rec := runRequest(t, m, "Basic abc123", func(c echo.Context) error {
		t.Fatal("handler must not run without credentials")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "UNAUTHENTICATED")
}

func TestAuthMiddleware_RejectedToken(t *testing.T) {
	m := newTestMiddleware(entity.Identity{})

	rec := runRequest(t, m, "Bearer forged-token", func(c echo.Context) error {
		t.Fatal("handler must not run with a rejected token")

		return nil
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "INVALID_TOKEN")
}

func TestAuthMiddleware_RequireAdmin(t *testing.T) {
	adminIdentity := entity.Identity{ID: uuid.New(), Role: entity.RoleAdmin}
	userIdentity := entity.Identity{ID: uuid.New(), Role: entity.RoleUser}

	handlerCalled := false
	next := func(c echo.Context) error {
		handlerCalled = true

		return c.NoContent(http.StatusOK)
	}

	t.Run("admin passes", func(t *testing.T) {
		m := newTestMiddleware(adminIdentity)
		handlerCalled = false

		rec := runRequest(t, m, "Bearer good-token", m.RequireAdmin(next))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, handlerCalled)
	})

	t.Run("regular user rejected", func(t *testing.T) {
		m := newTestMiddleware(userIdentity)
		handlerCalled = false

		rec := runRequest(t, m, "Bearer good-token", m.RequireAdmin(next))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Contains(t, rec.Body.String(), "FORBIDDEN")
		assert.False(t, handlerCalled)
	})
}
