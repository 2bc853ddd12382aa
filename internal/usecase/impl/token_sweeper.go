package impl

import (
	"context"
	"log/slog"
	"time"

	"gamevault/internal/domain/repository"
	"gamevault/internal/domain/service"

	"go.uber.org/fx"
)

const tokenSweepInterval = time.Hour

// tokenSweeper periodically purges refresh tokens past their expiry.
// Revoked rows past expiry go too; revocation state only matters while a
// token could still be presented.
type tokenSweeper struct {
	refreshTokenRepo repository.RefreshTokenRepository
	clock            service.Clock
	logger           *slog.Logger
}

// TokenSweeperParams holds dependencies for the sweeper, injected by Fx.
type TokenSweeperParams struct {
	fx.In
	fx.Lifecycle

	RefreshTokenRepo repository.RefreshTokenRepository
	Clock            service.Clock
	Logger           *slog.Logger
}

// RegisterTokenSweeper starts the periodic expired-session purge with the
// application lifecycle.
func RegisterTokenSweeper(params TokenSweeperParams) {
	sweeper := &tokenSweeper{
		refreshTokenRepo: params.RefreshTokenRepo,
		clock:            params.Clock,
		logger:           params.Logger,
	}

	sweepCtx, cancelSweep := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go sweeper.run(sweepCtx, tokenSweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelSweep()

			return nil
		},
	})
}

func (s *tokenSweeper) run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.sweep(ctx)
		}
	}
}

func (s *tokenSweeper) sweep(ctx context.Context) {
	if err := s.refreshTokenRepo.DeleteExpired(ctx, s.clock.Now()); err != nil {
		s.logger.Warn("Expired session sweep failed", slog.Any("error", err))

		return
	}

	s.logger.Debug("Expired session sweep completed")
}
