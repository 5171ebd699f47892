package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// DashboardUsecase joins the operator's landing views.
type DashboardUsecase interface {
	// Load tolerates failed sections, except a rejected session which is
	// returned as the error.
	Load(ctx context.Context) (entity.UserDashboard, error)
}
