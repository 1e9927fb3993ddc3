package main

import (
	"context"
	"log/slog"
	"os"

	"checkout/config"
	"checkout/internal/delivery"
	"checkout/internal/delivery/api"
	"checkout/internal/delivery/api/middleware"
	"checkout/internal/delivery/api/router/handler"
	"checkout/internal/domain/service"
	"checkout/internal/infra/auth"
	logs "checkout/internal/infra/log"
	"checkout/internal/infra/metrics"
	"checkout/internal/infra/outbox"
	"checkout/internal/infra/persistence/memory"
	"checkout/internal/infra/persistence/postgres"
	"checkout/internal/infra/pubsub"
	"checkout/internal/infra/qrcode"
	"checkout/internal/infra/remote"
	"checkout/internal/usecase/impl"

	"go.uber.org/fx"
)

const (
	defaultQRCodeSize  = 256
	defaultQRCodeLevel = "M"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		postgres.New,
		metrics.NewRegistry,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			memory.NewSessionStore,
			outbox.New,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTService,
			remote.NewLedgerClient,
			remote.NewRegistryClient,
			remote.NewLoyaltyClient,
			metrics.NewCheckoutMetrics,
			newQRCodeService,
		),
		pubsub.Module,
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		return qrcode.NewQRCodeService(defaultQRCodeSize, defaultQRCodeLevel, "")
	}

	size := cfg.QRCode.Size
	if size <= 0 {
		size = defaultQRCodeSize
	}

	return qrcode.NewQRCodeService(size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
			impl.NewCartService,
			impl.NewCustomerService,
			impl.NewSubmissionService,
			impl.NewReceiptService,
			impl.NewFallbackService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCartHandler,
			handler.NewCustomerHandler,
			handler.NewCheckoutHandler,
			handler.NewFallbackHandler,
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
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
