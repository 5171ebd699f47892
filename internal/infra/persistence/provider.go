// Package persistence selects the session storage driver.
package persistence

import (
	"context"
	"log/slog"

	"blogpilot/config"
	"blogpilot/internal/domain/repository"
	"blogpilot/internal/errors"
	"blogpilot/internal/infra/persistence/file"
	"blogpilot/internal/infra/persistence/sqlite"

	"go.uber.org/fx"
)

// Params holds dependencies for the session repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle `optional:"true"`
	Config *config.Config
	Logger *slog.Logger
}

// NewSessionRepository builds the repository named by session.driver.
func NewSessionRepository(params Params) (repository.SessionRepository, error) {
	cfg := params.Config.Session

	switch cfg.Driver {
	case config.SessionDriverFile:
		params.Logger.Info("Using file session storage",
			slog.String("path", cfg.Path),
			slog.Bool("sealed", cfg.Passphrase != ""),
		)

		return file.NewSessionRepository(cfg.Path, cfg.Passphrase)

	case config.SessionDriverSQLite:
		params.Logger.Info("Using sqlite session storage", slog.String("path", cfg.Path))

		repo, err := sqlite.Open(cfg.Path)
		if err != nil {
			return nil, err
		}
		if params.Lc != nil {
			params.Lc.Append(fx.Hook{
				OnStop: func(ctx context.Context) error {
					return repo.Close()
				},
			})
		}

		return repo, nil

	default:
		return nil, errors.Errorf("unknown session driver: %s", cfg.Driver)
	}
}
