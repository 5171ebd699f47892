package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// ScheduleUsecase reads and replaces the posting schedule.
type ScheduleUsecase interface {
	// Load returns the saved schedule, or the default when none is saved.
	Load(ctx context.Context) (entity.ScheduleConfig, bool)
	Save(ctx context.Context, cfg entity.ScheduleConfig) (entity.ScheduleConfig, error)
}
