// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"gamevault/config"
	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	clock      service.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clock service.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:     cfg.SecretKey.Access,
		accessTTL:  cfg.Auth.AccessTokenTTL,
		refreshTTL: cfg.Auth.RefreshTokenTTL,
		clock:      clock,
	}, nil
}

// SignAccessToken creates a signed HS256 token carrying the user's id, email and role.
func (s *jwtService) SignAccessToken(user *entity.User) (string, error) {
	now := s.clock.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role.String(),
		"iat":   now.Unix(),
		"exp":   now.Add(s.accessTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.secret))
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// VerifyAccessToken checks the signature and expiry of a token and extracts
// the identity it embeds.
func (s *jwtService) VerifyAccessToken(tokenString string) (entity.Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(s.secret), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(s.clock.Now))
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "parse access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return entity.Identity{}, errors.New("invalid token claims")
	}

	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return entity.Identity{}, errors.Wrap(err, "parse subject claim")
	}

	email, _ := claims["email"].(string)
	roleStr, _ := claims["role"].(string)
	role, valid := entity.ParseRole(roleStr)
	if !valid {
		return entity.Identity{}, errors.Errorf("unknown role claim: %s", roleStr)
	}

	return entity.Identity{
		ID:    userID,
		Email: email,
		Role:  role,
	}, nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}
