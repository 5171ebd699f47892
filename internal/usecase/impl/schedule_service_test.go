package impl

import (
	"context"
	"testing"

	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"
	mockService "blogpilot/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScheduleService_LoadDefault(t *testing.T) {
	api := mockService.NewMockBackendAPI(t)
	srv := NewScheduleService(ScheduleServiceParams{API: api, Logger: newDiscardLogger()})
	ctx := context.Background()

	api.EXPECT().GetSchedule(ctx).Return(nil)

	got, saved := srv.Load(ctx)

	assert.False(t, saved)
	assert.Equal(t, entity.DefaultSchedule(), got)
}

func TestScheduleService_SaveThenLoad(t *testing.T) {
	api := mockService.NewMockBackendAPI(t)
	srv := NewScheduleService(ScheduleServiceParams{API: api, Logger: newDiscardLogger()})
	ctx := context.Background()

	cfg := entity.ScheduleConfig{
		Frequency:   entity.FrequencyWeekly,
		PostsPerDay: 2,
		Days:        []string{"Tue", "Sat"},
		TargetTimes: []string{"08:30", "21:00"},
		IsActive:    true,
	}

	var stored *entity.ScheduleConfig
	api.EXPECT().
		SaveSchedule(ctx, cfg).
		RunAndReturn(func(_ context.Context, c entity.ScheduleConfig) error {
			stored = &c

			return nil
		})
	api.EXPECT().
		GetSchedule(ctx).
		RunAndReturn(func(context.Context) *entity.ScheduleConfig { return stored })

	saved, err := srv.Save(ctx, cfg)
	require.NoError(t, err)

	loaded, ok := srv.Load(ctx)

	assert.True(t, ok)
	assert.Equal(t, saved, loaded)
	assert.Equal(t, cfg, loaded)
}

func TestScheduleService_SaveValidation(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name string
		cfg  entity.ScheduleConfig
	}{
		{"unknown frequency", entity.ScheduleConfig{Frequency: "monthly", PostsPerDay: 1}},
		{"zero posts", entity.ScheduleConfig{Frequency: entity.FrequencyDaily, PostsPerDay: 0}},
		{"bad day", entity.ScheduleConfig{Frequency: entity.FrequencyDaily, PostsPerDay: 1, Days: []string{"Funday"}}},
		{"bad time", entity.ScheduleConfig{Frequency: entity.FrequencyDaily, PostsPerDay: 1, TargetTimes: []string{"25:00"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			api := mockService.NewMockBackendAPI(t)
			srv := NewScheduleService(ScheduleServiceParams{API: api, Logger: newDiscardLogger()})

			_, err := srv.Save(ctx, tt.cfg)

			require.Error(t, err)
			assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
		})
	}
}

func TestScheduleService_SaveError(t *testing.T) {
	api := mockService.NewMockBackendAPI(t)
	srv := NewScheduleService(ScheduleServiceParams{API: api, Logger: newDiscardLogger()})
	ctx := context.Background()

	api.EXPECT().SaveSchedule(ctx, entity.DefaultSchedule()).Return(errUnavailable)

	_, err := srv.Save(ctx, entity.DefaultSchedule())

	require.Error(t, err)
	assert.Equal(t, errUnavailable, err)
}
