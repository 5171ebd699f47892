package notify

import (
	"context"
	"log/slog"

	"blogpilot/config"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"

	"go.uber.org/fx"
)

// noopPublisher is used when event delivery is disabled
type noopPublisher struct {
	logger *slog.Logger
}

// NewNoopPublisher returns a publisher that only logs at debug level
func NewNoopPublisher(logger *slog.Logger) service.EventPublisher {
	return &noopPublisher{logger: logger}
}

func (p *noopPublisher) PublishGenerationEvent(ctx context.Context, event *entity.GenerationEvent) error {
	p.logger.Debug("[Noop] Event delivery disabled, skipping",
		slog.String("job_id", event.JobID.String()),
		slog.String("status", string(event.Status)),
	)

	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewEventPublisher creates an EventPublisher based on configuration
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.Notify
	logger := params.Logger

	var publisher service.EventPublisher
	switch cfg.Provider {
	case "", config.NotifyProviderNone:
		logger.Info("Event delivery not configured, using no-op publisher")

		return NewNoopPublisher(logger), nil

	case config.NotifyProviderWebhook:
		if cfg.Endpoint == "" {
			return nil, errors.New("endpoint is required for webhook provider")
		}
		logger.Info("Using webhook publisher", slog.String("endpoint", cfg.Endpoint))

		publisher = NewWebhookPublisher(cfg.Endpoint, logger)

	default:
		return nil, errors.Errorf("unknown notify provider: %s", cfg.Provider)
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

// Module provides the notify FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
