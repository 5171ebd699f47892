package middleware

import (
	"log/slog"
	"net/http"

	"blogpilot/internal/delivery/api/response"
	deliverycontext "blogpilot/internal/delivery/context"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ErrorMiddleware handles errors in the HTTP pipeline
type ErrorMiddleware struct {
	session usecase.SessionUsecase
	logger  *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(session usecase.SessionUsecase, logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		session: session,
		logger:  logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	// The backend no longer accepts the session token: drop it and start over
	// at login. Public routes such as /login carry no session, so their 401s
	// are rendered with the backend message below.
	_, gated := deliverycontext.GetSession(c)
	if gated && domainerrors.IsUnauthorized(err) || errors.Is(err, domainerrors.ErrNotAuthenticated) {
		if logoutErr := m.session.Logout(c.Request().Context()); logoutErr != nil {
			logger.Warn("Failed to clear rejected session", slog.Any("error", logoutErr))
		}
		_ = response.RedirectToLogin(c)

		return
	}

	var partialErr *domainerrors.PartialSaveError
	if errors.As(err, &partialErr) {
		logger.Warn("Blog created without settings", slog.Int64("blog_id", partialErr.BlogID), slog.Any("error", err))
		_ = response.ErrorWithDetails(c, partialErr.HTTPCode(), partialErr.ErrorCode(), partialErr.Message(),
			map[string]any{"blog_id": partialErr.BlogID})

		return
	}

	var apiErr *domainerrors.APIError
	if errors.As(err, &apiErr) {
		logger.Warn("Backend request failed", slog.Any("error", err))
		_ = response.AppError(c, apiErr.AsAppError())

		return
	}

	// Attempt to parse as AppError
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.Any("error", err))
		}
		_ = response.AppError(c, appErr)

		return
	}

	// Check if it is an Echo HTTPError
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := "An error occurred"
		if msg, ok := httpErr.Message.(string); ok {
			message = msg
		}

		_ = response.Error(c, httpErr.Code, "HTTP_ERROR", message, nil)

		return
	}

	// Default to internal error, log the error but return a generic message (do not expose internal details)
	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	_ = response.InternalServerError(c, "INTERNAL_ERROR", "Internal server error, please try again later")
}
