package impl

import (
	"io"
	"log/slog"
	"net/http"
	"time"

	"blogpilot/config"
	domainerrors "blogpilot/internal/domain/errors"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig(interval, timeout time.Duration) *config.Config {
	return &config.Config{
		Poller: &config.PollerConfig{
			Interval: interval,
			Timeout:  timeout,
		},
	}
}

func statusError(status int, message string) error {
	return domainerrors.NewAPIError(domainerrors.KindStatus, "PUT /blogs/{id}", status, message, nil)
}

var errUnavailable = statusError(http.StatusServiceUnavailable, "service unavailable")

var errRejected = domainerrors.NewAPIError(domainerrors.KindUnauthorized, "GET /blogs", http.StatusUnauthorized, "Could not validate credentials", nil)

func ptr[T any](v T) *T {
	return &v
}
