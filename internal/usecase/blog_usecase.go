package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// BlogSettingsUsecase reconciles the local edit buffer with the server's blog list.
type BlogSettingsUsecase interface {
	Reload(ctx context.Context) ([]entity.Blog, error)
	Blogs() []entity.Blog
	Selected() (int64, bool)
	Select(id int64) (entity.BlogDraft, error)
	Deselect() entity.BlogDraft
	Draft() entity.BlogDraft
	UpdateDraft(patch entity.DraftPatch) entity.BlogDraft

	// Save creates or updates the drafted blog, then reloads the list.
	// A create whose settings phase fails returns *errors.PartialSaveError.
	Save(ctx context.Context) (*entity.Blog, error)
	Delete(ctx context.Context, id int64) error
	Analyze(ctx context.Context) (*entity.BlogAnalysis, error)
}
