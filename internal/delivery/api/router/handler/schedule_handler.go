package handler

import (
	"log/slog"

	"blogpilot/internal/delivery/api/response"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ScheduleHandlerParams holds dependencies for ScheduleHandler, injected by Fx.
type ScheduleHandlerParams struct {
	fx.In

	ScheduleUC usecase.ScheduleUsecase
	Logger     *slog.Logger
}

// ScheduleHandler reads and replaces the posting schedule.
type ScheduleHandler struct {
	scheduleUC usecase.ScheduleUsecase
	logger     *slog.Logger
}

// NewScheduleHandler is the constructor for ScheduleHandler
func NewScheduleHandler(params ScheduleHandlerParams) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: params.ScheduleUC,
		logger:     params.Logger,
	}
}

// ScheduleView tells whether the schedule came from the server or is the default.
type ScheduleView struct {
	Schedule entity.ScheduleConfig `json:"schedule"`
	Saved    bool                  `json:"saved"`
}

// GetSchedule returns the saved schedule or the default.
func (h *ScheduleHandler) GetSchedule(c echo.Context) error {
	cfg, saved := h.scheduleUC.Load(c.Request().Context())

	return response.OK(c, ScheduleView{Schedule: cfg, Saved: saved})
}

// SaveSchedule replaces the schedule as a whole.
func (h *ScheduleHandler) SaveSchedule(c echo.Context) error {
	var cfg entity.ScheduleConfig
	if err := c.Bind(&cfg); err != nil {
		return response.BindingError(c, "Invalid schedule input")
	}

	saved, err := h.scheduleUC.Save(c.Request().Context(), cfg)
	if err != nil {
		return err
	}

	return response.OK(c, ScheduleView{Schedule: saved, Saved: true})
}
