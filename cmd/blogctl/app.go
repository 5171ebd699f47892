package main

import (
	"context"
	"log/slog"
	"os"

	"blogpilot/config"
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

// deps are the use cases the subcommands drive.
type deps struct {
	Logger     *slog.Logger
	Session    usecase.SessionUsecase
	Auth       usecase.AuthUsecase
	Blogs      usecase.BlogSettingsUsecase
	Schedule   usecase.ScheduleUsecase
	Credits    usecase.CreditUsecase
	Generation usecase.GenerationUsecase
}

// newLogger keeps stdout for command output.
func newLogger(cfg *config.Config) (*slog.Logger, error) {
	return logs.NewWithWriter(cfg, os.Stderr)
}

// newApp wires the same providers as the console, without the HTTP layer.
func newApp(ctx context.Context, target *deps) *fx.App {
	return fx.New(
		fx.NopLogger,
		fx.Provide(
			func() context.Context { return ctx },
			config.New,
			newLogger,
			metrics.New,
			persistence.NewSessionRepository,
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
			impl.ProvideSessionService,
			impl.NewAuthService,
			impl.NewBlogSettingsService,
			impl.NewScheduleService,
			impl.NewCreditService,
			impl.NewGenerationService,
		),
		fx.Populate(
			&target.Logger,
			&target.Session,
			&target.Auth,
			&target.Blogs,
			&target.Schedule,
			&target.Credits,
			&target.Generation,
		),
	)
}
