// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email       string
	Password    string
	DisplayName string
}

// LoginInput defines the data required to authenticate.
type LoginInput struct {
	Email    string
	Password string
}

// LogoutInput carries the raw refresh token whose session should end.
type LogoutInput struct {
	RefreshToken string
}

// RefreshInput carries the raw refresh token to rotate.
type RefreshInput struct {
	RefreshToken string
}

// ChangeRoleInput defines a role change requested by an authenticated actor.
type ChangeRoleInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
	Role         string
}

// DeleteUserInput defines an account deletion requested by an admin.
type DeleteUserInput struct {
	Actor        entity.Identity
	TargetUserID uuid.UUID
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	User *entity.User
}

// LoginOutput returns the issued credentials after a successful login.
type LoginOutput struct {
	AccessToken           string
	AccessTokenExpiresIn  time.Duration
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
	User                  *entity.User
}

// LogoutOutput reports whether this call actually revoked a live session.
type LogoutOutput struct {
	Revoked bool
}

// RefreshOutput returns the rotated credentials.
type RefreshOutput struct {
	AccessToken           string
	AccessTokenExpiresIn  time.Duration
	RefreshToken          string
	RefreshTokenExpiresAt time.Time
}

// ChangeRoleOutput returns the user after the role change.
type ChangeRoleOutput struct {
	User *entity.User
}

// AuthUsecase defines the account and session operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// Register creates an account. The first account ever created becomes
	// an admin; all later accounts start as regular users.
	Register(ctx context.Context, input RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues an access token plus a fresh
	// refresh token. Unknown email and wrong password are indistinguishable
	// to the caller.
	Login(ctx context.Context, input LoginInput) (*LoginOutput, error)

	// Logout revokes the session behind a refresh token. Idempotent: an
	// unknown or already revoked token succeeds with Revoked=false.
	Logout(ctx context.Context, input LogoutInput) (*LogoutOutput, error)

	// Refresh rotates a live refresh token: the presented token is revoked
	// and a new pair is issued. A revoked, unknown or expired token fails.
	Refresh(ctx context.Context, input RefreshInput) (*RefreshOutput, error)

	// ChangeRole updates a user's role. Admin only; admins may demote
	// themselves but never another admin.
	ChangeRole(ctx context.Context, input ChangeRoleInput) (*ChangeRoleOutput, error)

	// DeleteUser removes an account. Admin only.
	DeleteUser(ctx context.Context, input DeleteUserInput) error
}
