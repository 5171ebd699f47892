package repository

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// SessionRepository persists the operator session across process restarts.
type SessionRepository interface {
	// Load returns the stored session, or nil when nothing is stored.
	Load(ctx context.Context) (*entity.Session, error)

	// Save replaces the stored session.
	Save(ctx context.Context, session *entity.Session) error

	// Clear removes the stored session. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}
