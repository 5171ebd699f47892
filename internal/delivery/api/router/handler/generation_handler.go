package handler

import (
	"log/slog"
	"net/http"

	"blogpilot/internal/delivery/api/response"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// GenerationHandlerParams holds dependencies for GenerationHandler, injected by Fx.
type GenerationHandlerParams struct {
	fx.In

	GenerationUC usecase.GenerationUsecase
	BlogUC       usecase.BlogSettingsUsecase
	Logger       *slog.Logger
}

// GenerationHandler starts and observes generation jobs.
type GenerationHandler struct {
	generationUC usecase.GenerationUsecase
	blogUC       usecase.BlogSettingsUsecase
	logger       *slog.Logger
}

// NewGenerationHandler is the constructor for GenerationHandler
func NewGenerationHandler(params GenerationHandlerParams) *GenerationHandler {
	return &GenerationHandler{
		generationUC: params.GenerationUC,
		blogUC:       params.BlogUC,
		logger:       params.Logger,
	}
}

// StartGenerationRequest represents the request body for starting a generation
type StartGenerationRequest struct {
	FreeTrial bool `json:"free_trial" form:"free_trial"`
}

// StartGeneration submits the current draft's settings.
func (h *GenerationHandler) StartGeneration(c echo.Context) error {
	var req StartGenerationRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid generation input")
	}

	genReq := entity.GenerationRequestFromDraft(h.blogUC.Draft(), req.FreeTrial)
	job, err := h.generationUC.Start(c.Request().Context(), genReq)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusAccepted, job)
}

// CurrentGeneration returns the latest job.
func (h *GenerationHandler) CurrentGeneration(c echo.Context) error {
	job, ok := h.generationUC.Current()
	if !ok {
		return domainerrors.ErrJobNotFound
	}

	return response.OK(c, job)
}

// GetGeneration returns one job. With ?wait=true it blocks until polling
// stops or the request is cancelled.
func (h *GenerationHandler) GetGeneration(c echo.Context) error {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid job ID")
	}

	if c.QueryParam("wait") == "true" {
		job, err := h.generationUC.Wait(c.Request().Context(), id)
		// An interrupted wait still carries the latest snapshot.
		if err != nil && job.ID == uuid.Nil {
			return err
		}

		return response.OK(c, job)
	}

	job, err := h.generationUC.Job(id)
	if err != nil {
		return err
	}

	return response.OK(c, job)
}

// CancelGeneration stops polling the current job.
func (h *GenerationHandler) CancelGeneration(c echo.Context) error {
	h.generationUC.Cancel()

	job, ok := h.generationUC.Current()
	if !ok {
		return c.NoContent(http.StatusNoContent)
	}

	return response.OK(c, job)
}
