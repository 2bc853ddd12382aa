package impl

import (
	"context"
	"testing"
	"time"

	"gamevault/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestTokenSweeper_SweepRemovesExpiredSessions(t *testing.T) {
	store := newMemStore()
	clock := newFakeClock()
	sweeper := &tokenSweeper{
		refreshTokenRepo: &memRefreshTokenRepo{store: store},
		clock:            clock,
		logger:           newDiscardLogger(),
	}

	expired := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "sha256:expired",
		ExpiresAt: clock.Now().Add(-time.Hour),
		CreatedAt: clock.Now().Add(-8 * 24 * time.Hour),
	}
	live := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    uuid.New(),
		TokenHash: "sha256:live",
		ExpiresAt: clock.Now().Add(time.Hour),
		CreatedAt: clock.Now(),
	}
	store.tokens[expired.ID] = expired
	store.tokens[live.ID] = live

	sweeper.sweep(context.Background())

	assert.NotContains(t, store.tokens, expired.ID)
	assert.Contains(t, store.tokens, live.ID)
}
