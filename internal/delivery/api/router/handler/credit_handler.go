package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"blogpilot/internal/delivery/api/response"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CreditHandlerParams holds dependencies for CreditHandler, injected by Fx.
type CreditHandlerParams struct {
	fx.In

	CreditUC usecase.CreditUsecase
	BlogUC   usecase.BlogSettingsUsecase
	Logger   *slog.Logger
}

// CreditHandler serves the balance, history, recharge and estimate routes.
type CreditHandler struct {
	creditUC usecase.CreditUsecase
	blogUC   usecase.BlogSettingsUsecase
	logger   *slog.Logger
}

// NewCreditHandler is the constructor for CreditHandler
func NewCreditHandler(params CreditHandlerParams) *CreditHandler {
	return &CreditHandler{
		creditUC: params.CreditUC,
		blogUC:   params.BlogUC,
		logger:   params.Logger,
	}
}

// EstimateView is a client-side cost estimate next to the balance.
type EstimateView struct {
	ImageCount int                 `json:"image_count"`
	WordRange  entity.WordRange    `json:"word_range"`
	Credits    int                 `json:"credits"`
	Balance    entity.CreditStatus `json:"balance"`
}

// GetCredits fetches the balance. It never fails; an unreachable ledger
// yields the degraded fallback.
func (h *CreditHandler) GetCredits(c echo.Context) error {
	return response.OK(c, h.creditUC.Refresh(c.Request().Context()))
}

// GetHistory returns recharge requests and refreshes the balance.
func (h *CreditHandler) GetHistory(c echo.Context) error {
	history, err := h.creditUC.History(c.Request().Context())
	if err != nil {
		return err
	}
	if history == nil {
		history = []entity.RechargeRequest{}
	}

	return response.OK(c, map[string]any{
		"history": history,
		"balance": h.creditUC.Current(),
	})
}

// RequestRecharge records an off-band payment claim.
func (h *CreditHandler) RequestRecharge(c echo.Context) error {
	var input entity.RechargeInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "Invalid recharge input")
	}

	req, err := h.creditUC.RequestRecharge(c.Request().Context(), input)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, req)
}

// Estimate prices a generation. Query values override the draft's settings.
func (h *CreditHandler) Estimate(c echo.Context) error {
	settings := h.blogUC.Draft().Settings
	imageCount := settings.ImageCount
	wordRange := settings.WordRange

	if v := c.QueryParam("image_count"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "image_count must be a non-negative integer")
		}
		imageCount = n
	}
	if v := c.QueryParam("word_max"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return response.BadRequest(c, "INVALID_INPUT", "word_max must be a non-negative integer")
		}
		wordRange = wordRange.WithMax(n)
	}

	return response.OK(c, EstimateView{
		ImageCount: imageCount,
		WordRange:  wordRange,
		Credits:    h.creditUC.Estimate(imageCount, wordRange),
		Balance:    h.creditUC.Current(),
	})
}
