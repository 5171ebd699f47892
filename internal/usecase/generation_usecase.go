package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"

	"github.com/google/uuid"
)

// ProgressListener receives a snapshot after every job transition or resolved slot.
type ProgressListener func(job entity.GenerationJob)

// GenerationUsecase tracks one generation job at a time.
type GenerationUsecase interface {
	// Start cancels any outstanding job and submits a new one.
	Start(ctx context.Context, req entity.GenerationRequest) (entity.GenerationJob, error)
	Current() (entity.GenerationJob, bool)
	Job(id uuid.UUID) (entity.GenerationJob, error)

	// Wait blocks until the job stops polling or ctx is done.
	Wait(ctx context.Context, id uuid.UUID) (entity.GenerationJob, error)
	Cancel()
	Close() error
	SetProgressListener(fn ProgressListener)
}
