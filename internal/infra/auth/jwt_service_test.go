package auth

import (
	"testing"
	"time"

	"gamevault/config"
	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time {
	return c.now
}

func testConfig() *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	return cfg
}

func TestJWTService_SignAndVerify(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	svc, err := NewJWTService(testConfig(), clock)
	require.NoError(t, err)

	user := &entity.User{
		ID:    uuid.New(),
		Email: "alice@example.com",
		Role:  entity.RoleAdmin,
	}

	token, err := svc.SignAccessToken(user)
	require.NoError(t, err)
	assert.NotEmpty(t, token)

	identity, err := svc.VerifyAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, identity.ID)
	assert.Equal(t, user.Email, identity.Email)
	assert.Equal(t, entity.RoleAdmin, identity.Role)
	assert.True(t, identity.IsAdmin())
}

func TestJWTService_ExpiredToken(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	svc, err := NewJWTService(testConfig(), clock)
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Email: "bob@example.com", Role: entity.RoleUser}
	token, err := svc.SignAccessToken(user)
	require.NoError(t, err)

	// Advance past the access TTL so validation sees an expired token.
	clock.now = clock.now.Add(16 * time.Minute)

	_, err = svc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestJWTService_InvalidToken(t *testing.T) {
	svc, err := NewJWTService(testConfig(), &fixedClock{now: time.Now()})
	require.NoError(t, err)

	_, err = svc.VerifyAccessToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
}

func TestJWTService_WrongSecret(t *testing.T) {
	clock := &fixedClock{now: time.Now()}
	svc, err := NewJWTService(testConfig(), clock)
	require.NoError(t, err)

	otherCfg := testConfig()
	otherCfg.SecretKey.Access = "a_completely_different_secret_key_value"
	otherSvc, err := NewJWTService(otherCfg, clock)
	require.NoError(t, err)

	user := &entity.User{ID: uuid.New(), Email: "carol@example.com", Role: entity.RoleUser}
	token, err := svc.SignAccessToken(user)
	require.NoError(t, err)

	_, err = otherSvc.VerifyAccessToken(token)
	assert.Error(t, err)
}

func TestNewJWTService_RequiresSecret(t *testing.T) {
	cfg := testConfig()
	cfg.SecretKey.Access = ""

	_, err := NewJWTService(cfg, &fixedClock{now: time.Now()})
	assert.Error(t, err)
}
