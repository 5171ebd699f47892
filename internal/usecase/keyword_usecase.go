package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// KeywordUsecase covers keyword research and rank tracking.
type KeywordUsecase interface {
	Search(ctx context.Context, seed string) ([]entity.KeywordSuggestion, error)
	Tracking(ctx context.Context) []entity.KeywordTrackerRow
}
