package main

import (
	"context"
	"log/slog"
	"os"

	"flint/config"
	"flint/internal/delivery"
	"flint/internal/delivery/http"
	"flint/internal/delivery/http/middleware"
	"flint/internal/delivery/http/router/handler"
	"flint/internal/delivery/sweeper"
	"flint/internal/domain/service"
	"flint/internal/infra/auth"
	logs "flint/internal/infra/log"
	"flint/internal/infra/notification"
	"flint/internal/infra/persistence"
	"flint/internal/infra/pubsub"
	"flint/internal/infra/qrcode"
	"flint/internal/infra/quota"
	"flint/internal/infra/storage"
	"flint/internal/infra/tiles"
	"flint/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
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
		persistence.New,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.New,
			notification.New,
			pubsub.NewEventPublisher,
			quota.New,
			storage.New,
			tiles.New,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewMatchService,
			impl.NewLikeService,
			impl.NewProximityService,
			impl.NewReminderService,
			impl.NewProfileService,
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
			handler.NewProfileHandler,
			handler.NewLikeHandler,
			handler.NewMatchHandler,
			handler.NewProximityHandler,
			handler.NewReminderHandler,
			handler.NewTileHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				http.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				sweeper.NewSweeper,
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
