package impl

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"time"

	"gamevault/internal/domain/entity"
	"gamevault/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeClock is a settable clock for deterministic expiry tests.
type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}

// fakeHasher avoids bcrypt cost in tests while keeping check semantics.
type fakeHasher struct{}

func (fakeHasher) Hash(password string) (string, error) {
	return "hashed:" + password, nil
}

func (fakeHasher) Check(password, hash string) bool {
	return hash == "hashed:"+password
}

// fakeTokenService issues recognizable access tokens without real signing.
type fakeTokenService struct {
	accessTTL  time.Duration
	refreshTTL time.Duration
}

func newFakeTokenService() *fakeTokenService {
	return &fakeTokenService{accessTTL: 15 * time.Minute, refreshTTL: 7 * 24 * time.Hour}
}

func (s *fakeTokenService) SignAccessToken(user *entity.User) (string, error) {
	return fmt.Sprintf("access:%s:%s", user.ID, user.Role), nil
}

func (s *fakeTokenService) VerifyAccessToken(token string) (entity.Identity, error) {
	return entity.Identity{}, errors.New("not implemented in fake")
}

func (s *fakeTokenService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

func (s *fakeTokenService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}

// fakeTokenGenerator yields a predictable token sequence.
type fakeTokenGenerator struct {
	sequence int
}

func (g *fakeTokenGenerator) Generate() (string, error) {
	g.sequence++

	return fmt.Sprintf("raw-token-%04d", g.sequence), nil
}

func (g *fakeTokenGenerator) Hash(raw string) string {
	return "sha256:" + raw
}

// memStore backs all in-memory repository fakes for a single test.
type memStore struct {
	users   map[uuid.UUID]*entity.User
	tokens  map[uuid.UUID]*entity.RefreshToken
	games   map[uuid.UUID]*entity.Game
	library map[string]*entity.LibraryEntry
	configs map[string]*entity.GameConfig
}

func newMemStore() *memStore {
	return &memStore{
		users:   make(map[uuid.UUID]*entity.User),
		tokens:  make(map[uuid.UUID]*entity.RefreshToken),
		games:   make(map[uuid.UUID]*entity.Game),
		library: make(map[string]*entity.LibraryEntry),
		configs: make(map[string]*entity.GameConfig),
	}
}

func pairKey(userID, gameID uuid.UUID) string {
	return userID.String() + "/" + gameID.String()
}

// --- user repository fake ---

type memUserRepo struct {
	store *memStore
}

func (r *memUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	user, ok := r.store.users[id]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	copied := *user

	return &copied, nil
}

func (r *memUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range r.store.users {
		if user.Email == email {
			copied := *user

			return &copied, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memUserRepo) Create(_ context.Context, user *entity.User) error {
	copied := *user
	r.store.users[user.ID] = &copied

	return nil
}

func (r *memUserRepo) Count(_ context.Context) (int64, error) {
	return int64(len(r.store.users)), nil
}

func (r *memUserRepo) UpdateRole(_ context.Context, id uuid.UUID, role entity.Role) error {
	user, ok := r.store.users[id]
	if !ok {
		return repository.ErrUserNotFound
	}
	user.Role = role

	return nil
}

func (r *memUserRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.store.users, id)

	return nil
}

// --- refresh token repository fake ---

type memRefreshTokenRepo struct {
	store *memStore
}

func (r *memRefreshTokenRepo) Create(_ context.Context, token *entity.RefreshToken) error {
	copied := *token
	r.store.tokens[token.ID] = &copied

	return nil
}

func (r *memRefreshTokenRepo) FindByHash(_ context.Context, tokenHash string) (*entity.RefreshToken, error) {
	for _, token := range r.store.tokens {
		if token.TokenHash == tokenHash {
			copied := *token

			return &copied, nil
		}
	}

	return nil, repository.ErrRefreshTokenNotFound
}

func (r *memRefreshTokenRepo) RevokeByHash(_ context.Context, tokenHash string, revokedAt time.Time) error {
	for _, token := range r.store.tokens {
		if token.TokenHash == tokenHash && token.RevokedAt == nil {
			at := revokedAt
			token.RevokedAt = &at
		}
	}

	return nil
}

func (r *memRefreshTokenRepo) RevokeByID(_ context.Context, id uuid.UUID, revokedAt time.Time) error {
	token, ok := r.store.tokens[id]
	if !ok {
		return repository.ErrRefreshTokenNotFound
	}
	if token.RevokedAt == nil {
		at := revokedAt
		token.RevokedAt = &at
	}

	return nil
}

func (r *memRefreshTokenRepo) DeleteExpired(_ context.Context, cutoff time.Time) error {
	for id, token := range r.store.tokens {
		if token.ExpiresAt.Before(cutoff) {
			delete(r.store.tokens, id)
		}
	}

	return nil
}

// --- game repository fake ---

type memGameRepo struct {
	store *memStore
}

func (r *memGameRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Game, error) {
	game, ok := r.store.games[id]
	if !ok {
		return nil, repository.ErrGameNotFound
	}
	copied := *game

	return &copied, nil
}

func (r *memGameRepo) FindAll(_ context.Context) ([]*entity.Game, error) {
	games := make([]*entity.Game, 0, len(r.store.games))
	for _, game := range r.store.games {
		copied := *game
		games = append(games, &copied)
	}
	sort.Slice(games, func(i, j int) bool { return games[i].Title < games[j].Title })

	return games, nil
}

// --- library repository fake ---

type memLibraryRepo struct {
	store *memStore
}

func (r *memLibraryRepo) FindByUser(_ context.Context, userID uuid.UUID) ([]*entity.LibraryEntry, error) {
	var entries []*entity.LibraryEntry
	for _, entry := range r.store.library {
		if entry.UserID != userID {
			continue
		}
		copied := *entry
		if game, ok := r.store.games[entry.GameID]; ok {
			gameCopy := *game
			copied.Game = &gameCopy
		}
		entries = append(entries, &copied)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].AcquiredAt.After(entries[j].AcquiredAt) })

	return entries, nil
}

func (r *memLibraryRepo) FindByUserAndGame(_ context.Context, userID, gameID uuid.UUID) (*entity.LibraryEntry, error) {
	entry, ok := r.store.library[pairKey(userID, gameID)]
	if !ok {
		return nil, repository.ErrLibraryEntryNotFound
	}
	copied := *entry

	return &copied, nil
}

func (r *memLibraryRepo) Create(_ context.Context, entry *entity.LibraryEntry) error {
	copied := *entry
	r.store.library[pairKey(entry.UserID, entry.GameID)] = &copied

	return nil
}

func (r *memLibraryRepo) Delete(_ context.Context, userID, gameID uuid.UUID) error {
	delete(r.store.library, pairKey(userID, gameID))

	return nil
}

// --- game config repository fake ---

type memGameConfigRepo struct {
	store *memStore
}

func (r *memGameConfigRepo) Upsert(_ context.Context, config *entity.GameConfig) (*entity.GameConfig, error) {
	copied := *config
	r.store.configs[pairKey(config.UserID, config.GameID)] = &copied
	result := copied

	return &result, nil
}

func (r *memGameConfigRepo) Find(_ context.Context, userID, gameID uuid.UUID) (*entity.GameConfig, error) {
	config, ok := r.store.configs[pairKey(userID, gameID)]
	if !ok {
		return nil, repository.ErrGameConfigNotFound
	}
	copied := *config

	return &copied, nil
}

func (r *memGameConfigRepo) ListByUser(_ context.Context, userID uuid.UUID) ([]*entity.GameConfig, error) {
	var configs []*entity.GameConfig
	for _, config := range r.store.configs {
		if config.UserID != userID {
			continue
		}
		copied := *config
		configs = append(configs, &copied)
	}
	sort.Slice(configs, func(i, j int) bool { return configs[i].UpdatedAt.After(configs[j].UpdatedAt) })

	return configs, nil
}

func (r *memGameConfigRepo) Delete(_ context.Context, userID, gameID uuid.UUID) error {
	delete(r.store.configs, pairKey(userID, gameID))

	return nil
}

// --- transaction manager fake ---

// memRepoFactory hands out fakes bound to the shared store.
type memRepoFactory struct {
	store *memStore
}

func (f *memRepoFactory) UserRepo() repository.UserRepository {
	return &memUserRepo{store: f.store}
}

func (f *memRepoFactory) RefreshTokenRepo() repository.RefreshTokenRepository {
	return &memRefreshTokenRepo{store: f.store}
}

func (f *memRepoFactory) GameRepo() repository.GameRepository {
	return &memGameRepo{store: f.store}
}

func (f *memRepoFactory) LibraryRepo() repository.LibraryRepository {
	return &memLibraryRepo{store: f.store}
}

// memTxManager executes the function against the shared store without
// rollback. Intermediate writes stay visible, matching the non-transactional
// failure paths the services rely on (e.g. burning an expired token while
// rejecting the rotation).
type memTxManager struct {
	store *memStore
}

func (m *memTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&memRepoFactory{store: m.store})
}
