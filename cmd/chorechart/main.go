package main

import (
	"context"
	"log/slog"
	"os"

	"chorechart/config"
	"chorechart/internal/delivery"
	"chorechart/internal/delivery/api"
	"chorechart/internal/delivery/api/middleware"
	"chorechart/internal/delivery/api/router/handler"
	"chorechart/internal/delivery/web"
	"chorechart/internal/domain/service"
	"chorechart/internal/infra/auth"
	logs "chorechart/internal/infra/log"
	"chorechart/internal/infra/persistence/postgres"
	"chorechart/internal/infra/pubsub"
	"chorechart/internal/infra/qrcode"
	"chorechart/internal/usecase"
	"chorechart/internal/usecase/impl"

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
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
			cleanupSessionsOnStart,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewRefreshTokenRepository,
			postgres.NewDeviceRepository,
			postgres.NewTransactionManager,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
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
			impl.NewAccountService,
			impl.NewProfileService,
			impl.NewSessionService,
			impl.NewDeviceService,
			impl.NewChoreService,
			impl.NewRewardService,
			impl.NewRedemptionService,
			impl.NewDashboardService,
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
			handler.NewAccountHandler,
			handler.NewProfileHandler,
			handler.NewChoreHandler,
			handler.NewRewardHandler,
			handler.NewRedemptionHandler,
			handler.NewDeviceHandler,
			handler.NewSessionHandler,
			web.NewHandler,
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
				newWebDeliveries,
				fx.ResultTags(`group:"deliveries,flatten"`),
			),
		),
	)
}

// newWebDeliveries serves the dashboards only when they are enabled.
func newWebDeliveries(params web.ServerParams) ([]delivery.Delivery, error) {
	if params.Cfg.Web == nil || !params.Cfg.Web.Enabled {
		params.Logger.Info("Web dashboards disabled")

		return nil, nil
	}

	srv, err := web.NewServer(params)
	if err != nil {
		return nil, err
	}

	return []delivery.Delivery{srv}, nil
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

// cleanupSessionsOnStart drops refresh tokens that expired while the server was down.
func cleanupSessionsOnStart(lc fx.Lifecycle, sessions usecase.SessionUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := sessions.CleanupExpiredSessions(ctx); err != nil {
				logger.Warn("Failed to clean up expired sessions", slog.Any("error", err))
			}

			return nil
		},
	})
}
