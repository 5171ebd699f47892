// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// SessionUsecase holds the operator's authenticated state.
// Login and Logout are its only mutators.
type SessionUsecase interface {
	Current() entity.Session
	Login(ctx context.Context, token, name string) (entity.Session, error)
	Logout(ctx context.Context) error

	// Restore reads durable storage once at startup.
	Restore(ctx context.Context) (entity.Session, error)
	Token() string
	IsAuthenticated() bool
}
