package handler

import (
	"log/slog"

	"blogpilot/internal/delivery/api/response"
	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AdminHandlerParams holds dependencies for AdminHandler, injected by Fx.
type AdminHandlerParams struct {
	fx.In

	AdminUC usecase.AdminUsecase
	Logger  *slog.Logger
}

// AdminHandler serves the administration views. The backend enforces the
// admin role; a non-admin token surfaces as a backend error.
type AdminHandler struct {
	adminUC usecase.AdminUsecase
	logger  *slog.Logger
}

// NewAdminHandler is the constructor for AdminHandler
func NewAdminHandler(params AdminHandlerParams) *AdminHandler {
	return &AdminHandler{
		adminUC: params.AdminUC,
		logger:  params.Logger,
	}
}

// GetDashboard returns stats, policy and pending payments.
func (h *AdminHandler) GetDashboard(c echo.Context) error {
	dash, err := h.adminUC.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}

	return response.OK(c, dash)
}

// UpdatePolicy replaces the system policy.
func (h *AdminHandler) UpdatePolicy(c echo.Context) error {
	var policy entity.SystemPolicy
	if err := c.Bind(&policy); err != nil {
		return response.BindingError(c, "Invalid policy input")
	}

	if err := h.adminUC.UpdatePolicy(c.Request().Context(), policy); err != nil {
		return err
	}

	return response.OK(c, policy)
}

// GrantCredits credits a user directly.
func (h *AdminHandler) GrantCredits(c echo.Context) error {
	var grant entity.ManualGrant
	if err := c.Bind(&grant); err != nil {
		return response.BindingError(c, "Invalid grant input")
	}

	if err := h.adminUC.GrantCredits(c.Request().Context(), grant); err != nil {
		return err
	}

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Credits granted",
		slog.String("user_email", grant.UserEmail),
		slog.Int("amount", grant.Amount),
	)

	return response.OK(c, grant)
}

// DecidePayment approves or rejects a pending payment.
func (h *AdminHandler) DecidePayment(c echo.Context) error {
	var decision entity.PaymentDecision
	if err := c.Bind(&decision); err != nil {
		return response.BindingError(c, "Invalid payment decision")
	}

	dash, err := h.adminUC.DecidePayment(c.Request().Context(), decision)
	if err != nil {
		return err
	}

	return response.OK(c, dash)
}
