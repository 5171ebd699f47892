package handler

import (
	"log/slog"

	"blogpilot/internal/delivery/api/response"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// KeywordHandlerParams holds dependencies for KeywordHandler, injected by Fx.
type KeywordHandlerParams struct {
	fx.In

	KeywordUC usecase.KeywordUsecase
	Logger    *slog.Logger
}

// KeywordHandler serves keyword research.
type KeywordHandler struct {
	keywordUC usecase.KeywordUsecase
	logger    *slog.Logger
}

// NewKeywordHandler is the constructor for KeywordHandler
func NewKeywordHandler(params KeywordHandlerParams) *KeywordHandler {
	return &KeywordHandler{
		keywordUC: params.KeywordUC,
		logger:    params.Logger,
	}
}

// SearchKeywords expands a seed keyword.
func (h *KeywordHandler) SearchKeywords(c echo.Context) error {
	suggestions, err := h.keywordUC.Search(c.Request().Context(), c.QueryParam("seed"))
	if err != nil {
		return err
	}
	if suggestions == nil {
		suggestions = []entity.KeywordSuggestion{}
	}

	return response.OK(c, suggestions)
}

// GetTracking returns the rank tracking table.
func (h *KeywordHandler) GetTracking(c echo.Context) error {
	return response.OK(c, h.keywordUC.Tracking(c.Request().Context()))
}
