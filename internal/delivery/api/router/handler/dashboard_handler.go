package handler

import (
	"blogpilot/internal/delivery/api/response"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the landing page.
type DashboardHandler struct {
	dashboardUC usecase.DashboardUsecase
}

// NewDashboardHandler is the constructor for DashboardHandler
func NewDashboardHandler(dashboardUC usecase.DashboardUsecase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetDashboard joins credits, keywords, schedule, blogs and posts.
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	dash, err := h.dashboardUC.Load(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, dash)
}
