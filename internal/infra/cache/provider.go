package cache

import (
	"log/slog"

	"devicequote/config"
	"devicequote/internal/domain/repository"
	"devicequote/internal/domain/service"
	"devicequote/internal/infra/metrics"

	"go.uber.org/fx"
)

// CacheParams holds dependencies for the pricing cache, injected by Fx
type CacheParams struct {
	fx.In

	Config    *config.Config
	Logger    *slog.Logger
	Metrics   *metrics.Registry
	PriceRepo repository.PriceRepository
}

// NewPricingCache builds the process-wide device data cache from config.
func NewPricingCache(params CacheParams) service.PricingCache {
	cfg := params.Config.Pricing

	return New(params.PriceRepo, Options{
		TTL:          cfg.CacheTTL,
		FetchTimeout: cfg.FetchTimeout,
		Workers:      cfg.ValuationWorkers,
	}, params.Metrics, params.Logger.With(slog.String("component", "pricing_cache")))
}

// Module provides the pricing cache FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewPricingCache),
)
