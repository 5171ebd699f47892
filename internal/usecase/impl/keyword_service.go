package impl

import (
	"context"
	"log/slog"
	"strings"

	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
	"blogpilot/internal/usecase"

	"go.uber.org/fx"
)

// keywordService implements the KeywordUsecase interface.
type keywordService struct {
	api    service.BackendAPI
	logger *slog.Logger
}

// KeywordServiceParams holds dependencies for KeywordService, injected by Fx.
type KeywordServiceParams struct {
	fx.In

	API    service.BackendAPI
	Logger *slog.Logger
}

// NewKeywordService is the constructor for keywordService.
func NewKeywordService(params KeywordServiceParams) usecase.KeywordUsecase {
	return &keywordService{api: params.API, logger: params.Logger}
}

// Search looks up keyword suggestions for a seed. A blank seed is rejected.
func (srv *keywordService) Search(ctx context.Context, seed string) ([]entity.KeywordSuggestion, error) {
	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("seed keyword is required"), "search keywords")
	}

	srv.logger.Debug("Searching keywords", slog.String("seed", seed))

	return srv.api.SearchKeywords(ctx, seed)
}

// Tracking returns the rank tracking table; an unreachable backend yields no rows.
func (srv *keywordService) Tracking(ctx context.Context) []entity.KeywordTrackerRow {
	return srv.api.KeywordTracking(ctx)
}
