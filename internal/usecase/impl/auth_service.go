// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "gamevault/internal/delivery/context"
	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/domain/repository"
	"gamevault/internal/domain/service"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	tokenGenerator   service.RefreshTokenGenerator
	clock            service.Clock
	logger           *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	TokenGenerator   service.RefreshTokenGenerator
	Clock            service.Clock
	Logger           *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:        params.TxManager,
		userRepo:         params.UserRepo,
		refreshTokenRepo: params.RefreshTokenRepo,
		hasher:           params.Hasher,
		tokenService:     params.TokenService,
		tokenGenerator:   params.TokenGenerator,
		clock:            params.Clock,
		logger:           params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a new account. The duplicate check, the bootstrap-admin
// count and the insert share one transaction. Under read-committed isolation
// two concurrent first registrations can still both read a zero count and
// both become admin; that bootstrap race is accepted. The unique email
// constraint settles exact-duplicate races.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrap(err, "hash password")
	}

	var registeredUser *entity.User
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		_, err := userRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			return domainerrors.ErrEmailExists.WrapMessage("email already registered")
		}
		if !errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(err, "find user by email")
		}

		total, err := userRepo.Count(ctx)
		if err != nil {
			return errors.Wrap(err, "count users")
		}

		role := entity.RoleUser
		if total == 0 {
			role = entity.RoleAdmin
		}

		now := srv.clock.Now()
		user := &entity.User{
			ID:           uuid.New(),
			Email:        input.Email,
			PasswordHash: hashedPassword,
			DisplayName:  input.DisplayName,
			Role:         role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := userRepo.Create(ctx, user); err != nil {
			return errors.Wrap(err, "create user")
		}

		registeredUser = user

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed",
		slog.Any("userID", registeredUser.ID), slog.String("role", registeredUser.Role.String()))

	return &usecase.RegisterOutput{User: registeredUser}, nil
}

// Login verifies credentials and opens a new session. Unknown email and
// wrong password both surface ErrInvalidCredentials so the response never
// reveals whether an address is registered.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		srv.log(ctx).Info("Login attempt for unknown email")

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by email")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login attempt with wrong password", slog.Any("userID", user.ID))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	accessToken, err := srv.tokenService.SignAccessToken(user)
	if err != nil {
		return nil, errors.Wrap(err, "sign access token")
	}

	rawRefreshToken, record, err := srv.issueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Login succeeded", slog.Any("userID", user.ID))

	return &usecase.LoginOutput{
		AccessToken:           accessToken,
		AccessTokenExpiresIn:  srv.tokenService.AccessTokenTTL(),
		RefreshToken:          rawRefreshToken,
		RefreshTokenExpiresAt: record.ExpiresAt,
		User:                  user,
	}, nil
}

// Logout revokes the session behind a refresh token. The operation is
// idempotent: revoking an unknown or already dead session is reported as
// Revoked=false, never as an error.
func (srv *authService) Logout(ctx context.Context, input usecase.LogoutInput) (*usecase.LogoutOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerrors.ErrMissingToken.WrapMessage("logout without refresh token")
	}

	tokenHash := srv.tokenGenerator.Hash(input.RefreshToken)
	record, err := srv.refreshTokenRepo.FindByHash(ctx, tokenHash)
	if errors.Is(err, repository.ErrRefreshTokenNotFound) {
		return &usecase.LogoutOutput{Revoked: false}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "find refresh token")
	}

	if record.Revoked() {
		return &usecase.LogoutOutput{Revoked: false}, nil
	}

	if err := srv.refreshTokenRepo.RevokeByHash(ctx, tokenHash, srv.clock.Now()); err != nil {
		return nil, errors.Wrap(err, "revoke refresh token")
	}

	srv.log(ctx).Info("Session revoked", slog.Any("userID", record.UserID))

	return &usecase.LogoutOutput{Revoked: true}, nil
}

// Refresh rotates a refresh token. The presented token is burned in the
// same transaction that records its replacement, so each raw value can be
// redeemed at most once.
func (srv *authService) Refresh(ctx context.Context, input usecase.RefreshInput) (*usecase.RefreshOutput, error) {
	if input.RefreshToken == "" {
		return nil, domainerrors.ErrMissingToken.WrapMessage("refresh without refresh token")
	}

	tokenHash := srv.tokenGenerator.Hash(input.RefreshToken)

	var output *usecase.RefreshOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		tokenRepo := repoFactory.RefreshTokenRepo()
		userRepo := repoFactory.UserRepo()

		record, err := tokenRepo.FindByHash(ctx, tokenHash)
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return domainerrors.ErrInvalidToken.WrapMessage("unknown refresh token")
		}
		if err != nil {
			return errors.Wrap(err, "find refresh token")
		}

		if record.Revoked() {
			return domainerrors.ErrInvalidToken.WrapMessage("refresh token already revoked")
		}

		now := srv.clock.Now()
		if record.ExpiredAt(now) {
			if err := tokenRepo.RevokeByID(ctx, record.ID, now); err != nil {
				return errors.Wrap(err, "revoke expired refresh token")
			}

			return domainerrors.ErrTokenExpired.WrapMessage("refresh token past expiry")
		}

		user, err := userRepo.FindByID(ctx, record.UserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			// The owning account is gone; burn the orphaned session.
			if err := tokenRepo.RevokeByID(ctx, record.ID, now); err != nil {
				return errors.Wrap(err, "revoke orphaned refresh token")
			}

			return domainerrors.ErrInvalidToken.WrapMessage("refresh token owner no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "find refresh token owner")
		}

		if err := tokenRepo.RevokeByID(ctx, record.ID, now); err != nil {
			return errors.Wrap(err, "revoke rotated refresh token")
		}

		rawRefreshToken, err := srv.tokenGenerator.Generate()
		if err != nil {
			return errors.Wrap(err, "generate refresh token")
		}

		newRecord := &entity.RefreshToken{
			ID:        uuid.New(),
			UserID:    user.ID,
			TokenHash: srv.tokenGenerator.Hash(rawRefreshToken),
			ExpiresAt: now.Add(srv.tokenService.RefreshTokenTTL()),
			CreatedAt: now,
		}
		if err := tokenRepo.Create(ctx, newRecord); err != nil {
			return errors.Wrap(err, "create rotated refresh token")
		}

		accessToken, err := srv.tokenService.SignAccessToken(user)
		if err != nil {
			return errors.Wrap(err, "sign access token")
		}

		output = &usecase.RefreshOutput{
			AccessToken:           accessToken,
			AccessTokenExpiresIn:  srv.tokenService.AccessTokenTTL(),
			RefreshToken:          rawRefreshToken,
			RefreshTokenExpiresAt: newRecord.ExpiresAt,
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Info("Refresh token rotation rejected", slog.Any("error", err))

		return nil, err
	}

	return output, nil
}

// ChangeRole updates a user's role. Only admins may call it, and the admin
// role is read from the store, not the token, so a demoted or deleted admin
// loses the ability immediately. An admin may set USER only on themselves;
// promoting a regular user is unrestricted, and assigning the role a user
// already holds is a no-op.
func (srv *authService) ChangeRole(ctx context.Context, input usecase.ChangeRoleInput) (*usecase.ChangeRoleOutput, error) {
	newRole, valid := entity.ParseRole(input.Role)
	if !valid {
		return nil, domainerrors.ErrInvalidRole.WrapMessage("unknown role value")
	}

	if input.TargetUserID == uuid.Nil {
		return nil, domainerrors.ErrMissingTargetUser.WrapMessage("role change without target user")
	}

	var updatedUser *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		actor, err := userRepo.FindByID(ctx, input.Actor.ID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrForbidden.WrapMessage("role change actor no longer exists")
		}
		if err != nil {
			return errors.Wrap(err, "find role change actor")
		}
		if actor.Role != entity.RoleAdmin {
			return domainerrors.ErrForbidden.WrapMessage("role changes require admin")
		}

		target, err := userRepo.FindByID(ctx, input.TargetUserID)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("role change target does not exist")
		}
		if err != nil {
			return errors.Wrap(err, "find role change target")
		}

		// Demotion is self-only, whatever the target's current role.
		if newRole == entity.RoleUser && target.ID != actor.ID {
			return domainerrors.ErrInvalidTarget.WrapMessage("admins may only demote themselves")
		}

		if target.Role == newRole {
			updatedUser = target

			return nil
		}

		if err := userRepo.UpdateRole(ctx, target.ID, newRole); err != nil {
			return errors.Wrap(err, "update user role")
		}

		target.Role = newRole
		target.UpdatedAt = srv.clock.Now()
		updatedUser = target

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Role change applied",
		slog.Any("actorID", input.Actor.ID),
		slog.Any("targetID", updatedUser.ID),
		slog.String("role", updatedUser.Role.String()))

	return &usecase.ChangeRoleOutput{User: updatedUser}, nil
}

// DeleteUser removes an account. Admin only; like ChangeRole, the actor's
// role comes from the store rather than the token.
func (srv *authService) DeleteUser(ctx context.Context, input usecase.DeleteUserInput) error {
	actor, err := srv.userRepo.FindByID(ctx, input.Actor.ID)
	if errors.Is(err, repository.ErrUserNotFound) {
		return domainerrors.ErrForbidden.WrapMessage("deletion actor no longer exists")
	}
	if err != nil {
		return errors.Wrap(err, "find deletion actor")
	}
	if actor.Role != entity.RoleAdmin {
		return domainerrors.ErrForbidden.WrapMessage("account deletion requires admin")
	}

	if input.TargetUserID == uuid.Nil {
		return domainerrors.ErrMissingTargetUser.WrapMessage("deletion without target user")
	}

	if _, err := srv.userRepo.FindByID(ctx, input.TargetUserID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrUserNotFound.WrapMessage("deletion target does not exist")
		}

		return errors.Wrap(err, "find deletion target")
	}

	if err := srv.userRepo.Delete(ctx, input.TargetUserID); err != nil {
		return errors.Wrap(err, "delete user")
	}

	srv.log(ctx).Info("Account deleted",
		slog.Any("actorID", input.Actor.ID), slog.Any("targetID", input.TargetUserID))

	return nil
}

// issueRefreshToken creates and persists a new session record, returning
// the raw token value exactly once.
func (srv *authService) issueRefreshToken(ctx context.Context, userID uuid.UUID) (string, *entity.RefreshToken, error) {
	rawRefreshToken, err := srv.tokenGenerator.Generate()
	if err != nil {
		return "", nil, errors.Wrap(err, "generate refresh token")
	}

	now := srv.clock.Now()
	record := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		TokenHash: srv.tokenGenerator.Hash(rawRefreshToken),
		ExpiresAt: now.Add(srv.tokenService.RefreshTokenTTL()),
		CreatedAt: now,
	}
	if err := srv.refreshTokenRepo.Create(ctx, record); err != nil {
		return "", nil, errors.Wrap(err, "create refresh token")
	}

	return rawRefreshToken, record, nil
}
