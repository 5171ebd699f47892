package main

import (
	"context"
	"log/slog"
	"os"

	"blogpilot/config"
	"blogpilot/internal/delivery"
	"blogpilot/internal/delivery/api"
	apimiddleware "blogpilot/internal/delivery/api/middleware"
	"blogpilot/internal/delivery/api/router/handler"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/infra/auth"
	"blogpilot/internal/infra/backend"
	logs "blogpilot/internal/infra/log"
	"blogpilot/internal/infra/metrics"
	"blogpilot/internal/infra/notify"
	"blogpilot/internal/infra/persistence"
	"blogpilot/internal/infra/probe"
	"blogpilot/internal/infra/qrcode"
	"blogpilot/internal/infra/sanitize"
	"blogpilot/internal/infra/storage"
	"blogpilot/internal/usecase"
	"blogpilot/internal/usecase/impl"

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
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
		metrics.New,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			persistence.NewSessionRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewJWTInspector,
			fx.Annotate(
				backend.New,
				fx.As(new(service.BackendAPI)),
			),
			probe.New,
			sanitize.NewHTMLSanitizer,
			storage.New,
			qrcode.New,
			notify.NewEventPublisher,
		),
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.ProvideSessionService,
			impl.NewAuthService,
			impl.NewBlogSettingsService,
			impl.NewScheduleService,
			impl.NewCreditService,
			impl.NewGenerationService,
			impl.NewPostService,
			impl.NewKeywordService,
			impl.NewAdminService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewSessionGate,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewDashboardHandler,
			handler.NewBlogHandler,
			handler.NewGenerationHandler,
			handler.NewCreditHandler,
			handler.NewScheduleHandler,
			handler.NewPostHandler,
			handler.NewKeywordHandler,
			handler.NewAdminHandler,
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

// restoreSession loads the stored session once, before any route is served.
func restoreSession(ctx context.Context, session usecase.SessionUsecase, logger *slog.Logger) {
	if _, err := session.Restore(ctx); err != nil {
		logger.Warn("Starting without a stored session", slog.Any("error", err))
	}
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
