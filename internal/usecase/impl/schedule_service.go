package impl

import (
	"context"
	"log/slog"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// scheduleService implements the ScheduleUsecase interface.
type scheduleService struct {
	api      service.ScheduleAPI
	validate *validator.Validate
	logger   *slog.Logger
}

// ScheduleServiceParams holds dependencies for ScheduleService, injected by Fx.
type ScheduleServiceParams struct {
	fx.In

	API    service.BackendAPI
	Logger *slog.Logger
}

// NewScheduleService is the constructor for scheduleService.
func NewScheduleService(params ScheduleServiceParams) usecase.ScheduleUsecase {
	return &scheduleService{
		api:      params.API,
		validate: newValidator(),
		logger:   params.Logger,
	}
}

// Load returns the saved schedule. The second result is false when the
// default is returned instead.
func (srv *scheduleService) Load(ctx context.Context) (entity.ScheduleConfig, bool) {
	saved := srv.api.GetSchedule(ctx)
	if saved == nil {
		return entity.DefaultSchedule(), false
	}

	return *saved, true
}

// Save replaces the whole schedule.
func (srv *scheduleService) Save(ctx context.Context, cfg entity.ScheduleConfig) (entity.ScheduleConfig, error) {
	if cfg.Days == nil {
		cfg.Days = []string{}
	}
	if cfg.TargetTimes == nil {
		cfg.TargetTimes = []string{}
	}
	if err := srv.validate.Struct(cfg); err != nil {
		return cfg, validationError(err)
	}

	if err := srv.api.SaveSchedule(ctx, cfg); err != nil {
		return cfg, err
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Schedule saved",
		slog.String("frequency", string(cfg.Frequency)),
		slog.Int("posts_per_day", cfg.PostsPerDay),
	)

	return cfg, nil
}
