package impl

import (
	"context"
	"testing"
	"time"

	"gamevault/internal/domain/entity"
	domainerrors "gamevault/internal/domain/errors"
	"gamevault/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type authFixture struct {
	store  *memStore
	clock  *fakeClock
	tokens *fakeTokenService
	svc    usecase.AuthUsecase
}

func newAuthFixture() *authFixture {
	store := newMemStore()
	clock := newFakeClock()
	tokens := newFakeTokenService()

	svc := NewAuthService(AuthServiceParams{
		TxManager:        &memTxManager{store: store},
		UserRepo:         &memUserRepo{store: store},
		RefreshTokenRepo: &memRefreshTokenRepo{store: store},
		Hasher:           fakeHasher{},
		TokenService:     tokens,
		TokenGenerator:   &fakeTokenGenerator{},
		Clock:            clock,
		Logger:           newDiscardLogger(),
	})

	return &authFixture{store: store, clock: clock, tokens: tokens, svc: svc}
}

func (f *authFixture) register(t *testing.T, email string) *entity.User {
	t.Helper()

	out, err := f.svc.Register(context.Background(), usecase.RegisterInput{
		Email:       email,
		Password:    "password-for-" + email,
		DisplayName: email,
	})
	require.NoError(t, err)

	return out.User
}

func (f *authFixture) login(t *testing.T, email string) *usecase.LoginOutput {
	t.Helper()

	out, err := f.svc.Login(context.Background(), usecase.LoginInput{
		Email:    email,
		Password: "password-for-" + email,
	})
	require.NoError(t, err)

	return out
}

func TestAuthService_Register_FirstUserBecomesAdmin(t *testing.T) {
	f := newAuthFixture()

	first := f.register(t, "alice@example.com")
	second := f.register(t, "bob@example.com")
	third := f.register(t, "carol@example.com")

	assert.Equal(t, entity.RoleAdmin, first.Role)
	assert.Equal(t, entity.RoleUser, second.Role)
	assert.Equal(t, entity.RoleUser, third.Role)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice@example.com")

	_, err := f.svc.Register(context.Background(), usecase.RegisterInput{
		Email:    "alice@example.com",
		Password: "another password",
	})
	assert.ErrorIs(t, err, domainerrors.ErrEmailExists)
}

func TestAuthService_Register_PasswordIsStoredHashed(t *testing.T) {
	f := newAuthFixture()
	user := f.register(t, "alice@example.com")

	stored := f.store.users[user.ID]
	assert.NotEqual(t, "password-for-alice@example.com", stored.PasswordHash)
}

func TestAuthService_Login_Success(t *testing.T) {
	f := newAuthFixture()
	user := f.register(t, "alice@example.com")

	out := f.login(t, "alice@example.com")

	assert.NotEmpty(t, out.AccessToken)
	assert.NotEmpty(t, out.RefreshToken)
	assert.Equal(t, f.tokens.AccessTokenTTL(), out.AccessTokenExpiresIn)
	assert.Equal(t, f.clock.Now().Add(f.tokens.RefreshTokenTTL()), out.RefreshTokenExpiresAt)
	assert.Equal(t, user.ID, out.User.ID)

	// Only a hash of the refresh token is persisted.
	for _, record := range f.store.tokens {
		assert.NotEqual(t, out.RefreshToken, record.TokenHash)
		assert.Equal(t, user.ID, record.UserID)
	}
}

func TestAuthService_Login_UnknownEmailAndWrongPasswordLookAlike(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice@example.com")

	_, unknownErr := f.svc.Login(context.Background(), usecase.LoginInput{
		Email:    "nobody@example.com",
		Password: "whatever",
	})
	_, wrongErr := f.svc.Login(context.Background(), usecase.LoginInput{
		Email:    "alice@example.com",
		Password: "not the password",
	})

	require.ErrorIs(t, unknownErr, domainerrors.ErrInvalidCredentials)
	require.ErrorIs(t, wrongErr, domainerrors.ErrInvalidCredentials)

	var unknownApp, wrongApp domainerrors.AppError
	require.ErrorAs(t, unknownErr, &unknownApp)
	require.ErrorAs(t, wrongErr, &wrongApp)
	assert.Equal(t, unknownApp.ErrorCode(), wrongApp.ErrorCode())
	assert.Equal(t, unknownApp.Message(), wrongApp.Message())
}

func TestAuthService_Logout_Idempotent(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice@example.com")
	out := f.login(t, "alice@example.com")

	first, err := f.svc.Logout(context.Background(), usecase.LogoutInput{RefreshToken: out.RefreshToken})
	require.NoError(t, err)
	assert.True(t, first.Revoked)

	second, err := f.svc.Logout(context.Background(), usecase.LogoutInput{RefreshToken: out.RefreshToken})
	require.NoError(t, err)
	assert.False(t, second.Revoked)
}

func TestAuthService_Logout_UnknownTokenSucceeds(t *testing.T) {
	f := newAuthFixture()

	out, err := f.svc.Logout(context.Background(), usecase.LogoutInput{RefreshToken: "never issued"})
	require.NoError(t, err)
	assert.False(t, out.Revoked)
}

func TestAuthService_Logout_MissingToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Logout(context.Background(), usecase.LogoutInput{})
	assert.ErrorIs(t, err, domainerrors.ErrMissingToken)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice@example.com")
	login := f.login(t, "alice@example.com")

	rotated, err := f.svc.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)
	assert.NotEmpty(t, rotated.AccessToken)
	assert.NotEqual(t, login.RefreshToken, rotated.RefreshToken)

	// The presented token is burned; replaying it fails.
	_, err = f.svc.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)

	// The replacement still works.
	_, err = f.svc.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: rotated.RefreshToken})
	assert.NoError(t, err)
}

func TestAuthService_Refresh_ExpiredTokenIsBurned(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice@example.com")
	login := f.login(t, "alice@example.com")

	f.clock.Advance(f.tokens.RefreshTokenTTL() + time.Minute)

	_, err := f.svc.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrTokenExpired)

	// After expiry handling the token is revoked, so a replay reports
	// invalid rather than expired.
	_, err = f.svc.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_RevokedToken(t *testing.T) {
	f := newAuthFixture()
	f.register(t, "alice@example.com")
	login := f.login(t, "alice@example.com")

	_, err := f.svc.Logout(context.Background(), usecase.LogoutInput{RefreshToken: login.RefreshToken})
	require.NoError(t, err)

	_, err = f.svc.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_OwnerDeleted(t *testing.T) {
	f := newAuthFixture()
	admin := f.register(t, "admin@example.com")
	user := f.register(t, "bob@example.com")
	login := f.login(t, "bob@example.com")

	err := f.svc.DeleteUser(context.Background(), usecase.DeleteUserInput{
		Actor:        entity.Identity{ID: admin.ID, Role: entity.RoleAdmin},
		TargetUserID: user.ID,
	})
	require.NoError(t, err)

	_, err = f.svc.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: login.RefreshToken})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_Refresh_MissingAndUnknownToken(t *testing.T) {
	f := newAuthFixture()

	_, err := f.svc.Refresh(context.Background(), usecase.RefreshInput{})
	assert.ErrorIs(t, err, domainerrors.ErrMissingToken)

	_, err = f.svc.Refresh(context.Background(), usecase.RefreshInput{RefreshToken: "never issued"})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidToken)
}

func TestAuthService_ChangeRole_Rules(t *testing.T) {
	f := newAuthFixture()
	admin := f.register(t, "admin@example.com")
	bob := f.register(t, "bob@example.com")

	adminActor := entity.Identity{ID: admin.ID, Role: entity.RoleAdmin}
	bobActor := entity.Identity{ID: bob.ID, Role: entity.RoleUser}
	ctx := context.Background()

	t.Run("unknown role", func(t *testing.T) {
		_, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: adminActor, TargetUserID: bob.ID, Role: "SUPERUSER",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidRole)
	})

	t.Run("non-admin forbidden", func(t *testing.T) {
		_, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: bobActor, TargetUserID: bob.ID, Role: "ADMIN",
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})

	t.Run("demoting another user is rejected", func(t *testing.T) {
		// Demotion is self-only even when the target is a regular user.
		_, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: adminActor, TargetUserID: bob.ID, Role: "USER",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTarget)
	})

	t.Run("unknown target", func(t *testing.T) {
		_, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: adminActor, TargetUserID: uuid.New(), Role: "ADMIN",
		})
		assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	})

	t.Run("promotion is case-insensitive", func(t *testing.T) {
		out, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: adminActor, TargetUserID: bob.ID, Role: "admin",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, out.User.Role)
	})

	t.Run("demoting another admin is rejected", func(t *testing.T) {
		_, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: adminActor, TargetUserID: bob.ID, Role: "USER",
		})
		assert.ErrorIs(t, err, domainerrors.ErrInvalidTarget)
	})

	t.Run("no-op when role unchanged", func(t *testing.T) {
		out, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: adminActor, TargetUserID: bob.ID, Role: "ADMIN",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleAdmin, out.User.Role)
	})

	t.Run("self-demotion is allowed", func(t *testing.T) {
		out, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: adminActor, TargetUserID: admin.ID, Role: "USER",
		})
		require.NoError(t, err)
		assert.Equal(t, entity.RoleUser, out.User.Role)
		assert.Equal(t, entity.RoleUser, f.store.users[admin.ID].Role)
	})

	t.Run("stale admin token is rejected after self-demotion", func(t *testing.T) {
		// The access token still claims ADMIN, but the stored role decides.
		_, err := f.svc.ChangeRole(ctx, usecase.ChangeRoleInput{
			Actor: adminActor, TargetUserID: bob.ID, Role: "ADMIN",
		})
		assert.ErrorIs(t, err, domainerrors.ErrForbidden)
	})
}

func TestAuthService_DeleteUser(t *testing.T) {
	f := newAuthFixture()
	admin := f.register(t, "admin@example.com")
	bob := f.register(t, "bob@example.com")

	adminActor := entity.Identity{ID: admin.ID, Role: entity.RoleAdmin}
	ctx := context.Background()

	err := f.svc.DeleteUser(ctx, usecase.DeleteUserInput{
		Actor:        entity.Identity{ID: bob.ID, Role: entity.RoleUser},
		TargetUserID: admin.ID,
	})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)

	err = f.svc.DeleteUser(ctx, usecase.DeleteUserInput{Actor: adminActor, TargetUserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)

	err = f.svc.DeleteUser(ctx, usecase.DeleteUserInput{Actor: adminActor, TargetUserID: bob.ID})
	require.NoError(t, err)
	assert.NotContains(t, f.store.users, bob.ID)

	// Once the admin account itself is gone, its still-valid access token
	// no longer authorizes deletions.
	err = f.svc.DeleteUser(ctx, usecase.DeleteUserInput{Actor: adminActor, TargetUserID: admin.ID})
	require.NoError(t, err)

	err = f.svc.DeleteUser(ctx, usecase.DeleteUserInput{Actor: adminActor, TargetUserID: uuid.New()})
	assert.ErrorIs(t, err, domainerrors.ErrForbidden)
}
