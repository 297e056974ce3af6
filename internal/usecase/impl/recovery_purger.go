package impl

import (
	"context"
	"log/slog"
	"time"

	"devicequote/config"
	"devicequote/internal/domain/lifecycle"
	"devicequote/internal/usecase"

	"go.uber.org/fx"
)

// RecoveryPurgerParams holds dependencies for the purge loop, injected by Fx
type RecoveryPurgerParams struct {
	fx.In

	Lc       fx.Lifecycle
	Recovery usecase.RecoveryUsecase
	Config   *config.Config
	Logger   *slog.Logger
}

// RegisterRecoveryPurger runs PurgeExpired on a ticker for the app's lifetime.
func RegisterRecoveryPurger(params RecoveryPurgerParams) {
	interval := params.Config.Recovery.PurgeInterval
	logger := params.Logger.With(slog.String("component", "recovery_purger"))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				defer close(done)
				runPurgeLoop(ctx, params.Recovery, interval, logger)
			}()

			return nil
		},
		OnStop: func(stopCtx context.Context) error {
			cancel()
			select {
			case <-done:
			case <-stopCtx.Done():
			}

			return nil
		},
	})
}

func runPurgeLoop(ctx context.Context, recovery usecase.RecoveryUsecase, interval time.Duration, logger *slog.Logger) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			purgeCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			if _, err := recovery.PurgeExpired(purgeCtx); err != nil {
				logger.Error("Recovery purge failed", slog.Any("error", err))
			}
			cancel()
		}
	}
}
