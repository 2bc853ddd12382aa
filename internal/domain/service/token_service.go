package service

import (
	"time"

	"gamevault/internal/domain/entity"
)

// TokenService defines the interface for signing and verifying access
// tokens. Access tokens are stateless; refresh tokens are persisted records
// and never pass through this service.
type TokenService interface {
	// SignAccessToken creates a signed access token embedding the user's
	// id, email and role, expiring after the configured TTL.
	SignAccessToken(user *entity.User) (string, error)

	// VerifyAccessToken checks a token's signature and expiry and returns
	// the identity it embeds.
	VerifyAccessToken(token string) (entity.Identity, error)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
