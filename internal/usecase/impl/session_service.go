// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/repository"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
	"blogpilot/internal/usecase"

	"go.uber.org/fx"
)

// sessionService implements SessionUsecase. It is also the backend client's token source.
type sessionService struct {
	repo      repository.SessionRepository
	inspector service.TokenInspector
	logger    *slog.Logger
	now       func() time.Time

	mu      sync.RWMutex
	current entity.Session
}

// SessionServiceParams holds dependencies for the session service, injected by Fx.
type SessionServiceParams struct {
	fx.In

	Repo      repository.SessionRepository
	Inspector service.TokenInspector
	Logger    *slog.Logger
}

// SessionServiceResult exposes the session both as a usecase and as the token
// source read by the backend client.
type SessionServiceResult struct {
	fx.Out

	Session usecase.SessionUsecase
	Tokens  service.TokenSource
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(repo repository.SessionRepository, inspector service.TokenInspector, logger *slog.Logger) usecase.SessionUsecase {
	return &sessionService{
		repo:      repo,
		inspector: inspector,
		logger:    logger,
		now:       time.Now,
	}
}

// ProvideSessionService builds the session service for Fx.
func ProvideSessionService(params SessionServiceParams) SessionServiceResult {
	srv := NewSessionService(params.Repo, params.Inspector, params.Logger)

	return SessionServiceResult{Session: srv, Tokens: srv}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Current returns a copy of the session.
func (srv *sessionService) Current() entity.Session {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current
}

// Token implements service.TokenSource.
func (srv *sessionService) Token() string {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	return srv.current.Token
}

// IsAuthenticated reports whether a token is held.
func (srv *sessionService) IsAuthenticated() bool {
	return srv.Token() != ""
}

// Login stores the token and normalized display name, then persists both.
// The in-memory session is updated even when persisting fails.
func (srv *sessionService) Login(ctx context.Context, token, name string) (entity.Session, error) {
	if token == "" {
		return entity.Session{}, errors.Wrap(domainerrors.ErrValidationFailed, "token is required")
	}

	session := srv.derive(ctx, entity.Session{
		Token:       token,
		DisplayName: entity.NormalizeDisplayName(name),
	})

	srv.mu.Lock()
	srv.current = session
	srv.mu.Unlock()

	if err := srv.repo.Save(ctx, &session); err != nil {
		srv.log(ctx).Error("Failed to persist session", slog.Any("error", err))

		return session, errors.Wrap(domainerrors.ErrSessionStorage, err.Error())
	}

	srv.log(ctx).Info("Logged in", slog.String("display_name", session.DisplayName))

	return session, nil
}

// Logout clears memory and storage.
func (srv *sessionService) Logout(ctx context.Context) error {
	srv.mu.Lock()
	srv.current = entity.Session{}
	srv.mu.Unlock()

	if err := srv.repo.Clear(ctx); err != nil {
		srv.log(ctx).Error("Failed to clear stored session", slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrSessionStorage, err.Error())
	}

	srv.log(ctx).Info("Logged out")

	return nil
}

// Restore loads the stored session. An expired token is kept: the backend
// decides validity and answers 401.
func (srv *sessionService) Restore(ctx context.Context) (entity.Session, error) {
	stored, err := srv.repo.Load(ctx)
	if err != nil {
		return entity.Session{}, errors.Wrap(domainerrors.ErrSessionStorage, err.Error())
	}
	if stored == nil {
		srv.log(ctx).Debug("No stored session")

		return entity.Session{}, nil
	}

	session := srv.derive(ctx, *stored)

	srv.mu.Lock()
	srv.current = session
	srv.mu.Unlock()

	srv.log(ctx).Info("Session restored", slog.String("display_name", session.DisplayName))

	return session, nil
}

// derive fills Subject and ExpiresAt from the token's claims when it is a JWT.
func (srv *sessionService) derive(ctx context.Context, session entity.Session) entity.Session {
	if srv.inspector == nil {
		return session
	}

	claims, err := srv.inspector.Inspect(session.Token)
	if err != nil {
		srv.log(ctx).Debug("Token claims unreadable", slog.Any("error", err))

		return session
	}
	if claims == nil {
		return session
	}

	session.Subject = claims.Subject
	session.ExpiresAt = claims.ExpiresAt
	if session.ExpiresAt != nil && !session.ExpiresAt.After(srv.now()) {
		srv.log(ctx).Warn("Session token has expired", slog.Time("expires_at", *session.ExpiresAt))
	}

	return session
}
