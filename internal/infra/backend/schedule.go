package backend

import (
	"context"
	"net/http"

	"blogpilot/internal/domain/entity"
)

// GetSchedule returns the saved schedule, or nil when none is saved or the
// read failed.
func (c *Client) GetSchedule(ctx context.Context) *entity.ScheduleConfig {
	r := &request{method: http.MethodGet, path: "/schedule"}

	var out *entity.ScheduleConfig
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		c.fallback(c.endpoint(r), err)

		return nil
	}

	return out
}

// SaveSchedule replaces the schedule as a whole.
func (c *Client) SaveSchedule(ctx context.Context, cfg entity.ScheduleConfig) error {
	r := &request{method: http.MethodPost, path: "/schedule", body: cfg}
	if err := c.validateInput(c.endpoint(r), cfg); err != nil {
		return err
	}

	return c.do(ctx, r)
}
