package main

import (
	"context"
	"log/slog"
	"os"

	"devicequote/config"
	"devicequote/internal/delivery"
	"devicequote/internal/delivery/api"
	apimiddleware "devicequote/internal/delivery/api/middleware"
	"devicequote/internal/delivery/api/router/handler"
	"devicequote/internal/delivery/worker"
	workerhandler "devicequote/internal/delivery/worker/handler"
	"devicequote/internal/domain/service"
	"devicequote/internal/infra/auth"
	"devicequote/internal/infra/cache"
	"devicequote/internal/infra/feed"
	logs "devicequote/internal/infra/log"
	"devicequote/internal/infra/metrics"
	"devicequote/internal/infra/persistence/postgres"
	"devicequote/internal/infra/pubsub"
	"devicequote/internal/infra/qrcode"
	"devicequote/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			impl.RegisterRecoveryPurger,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.NewRegistry,
		postgres.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewDeviceRepository,
			postgres.NewPriceRepository,
			postgres.NewRecoveryRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		cache.Module,
		pubsub.Module,
		feed.Module,
		fx.Provide(
			auth.NewJWTService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewPricingService,
			impl.NewQuoteService,
			impl.NewRecoveryService,
			impl.NewPriceAdminService,
			impl.NewValuationService,
			impl.NewFeedService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewQuoteHandler,
			handler.NewValuationHandler,
			handler.NewRecoveryHandler,
			handler.NewAdminHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
