package errors

import (
	"fmt"
	"net/http"

	"blogpilot/internal/errors"
)

// APIErrorKind classifies backend call failures.
type APIErrorKind string

const (
	KindTransport    APIErrorKind = "transport"
	KindTimeout      APIErrorKind = "timeout"
	KindStatus       APIErrorKind = "status"
	KindUnauthorized APIErrorKind = "unauthorized"
	KindDecode       APIErrorKind = "decode"
	KindValidation   APIErrorKind = "validation"
)

// APIError is returned by every backend client call that fails.
type APIError struct {
	Kind       APIErrorKind
	StatusCode int
	Message    string
	Endpoint   string
	Err        error
}

// NewAPIError creates an API error.
func NewAPIError(kind APIErrorKind, endpoint string, statusCode int, message string, err error) *APIError {
	return &APIError{
		Kind:       kind,
		StatusCode: statusCode,
		Message:    message,
		Endpoint:   endpoint,
		Err:        err,
	}
}

func (e *APIError) Error() string {
	if e.Err != nil && e.Message == "" {
		return fmt.Sprintf("%s: %s: %v", e.Endpoint, e.Kind, e.Err)
	}

	return fmt.Sprintf("%s: %s: %s", e.Endpoint, e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// HTTPCode maps the failure onto a console status code.
func (e *APIError) HTTPCode() int {
	switch e.Kind {
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindValidation:
		return http.StatusBadRequest
	case KindTimeout:
		return http.StatusGatewayTimeout
	case KindStatus:
		if e.StatusCode >= 400 && e.StatusCode < 500 {
			return e.StatusCode
		}
	}

	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *APIError) ErrorCode() string {
	return "BACKEND_" + string(e.Kind)
}

// Details returns the endpoint and underlying cause.
func (e *APIError) Details() string {
	if e.Err != nil {
		return e.Endpoint + ": " + e.Err.Error()
	}

	return e.Endpoint
}

// UserMessage returns the text shown to the operator.
func (e *APIError) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}

	return "request failed"
}

// apiAppError adapts APIError to AppError without clashing with the Message field.
type apiAppError struct{ *APIError }

func (e apiAppError) Message() string { return e.UserMessage() }

// AsAppError converts an APIError into an AppError.
func (e *APIError) AsAppError() AppError {
	return apiAppError{e}
}

// IsKind reports whether err carries an APIError of the given kind.
func IsKind(err error, kind APIErrorKind) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind == kind
	}

	return false
}

// IsUnauthorized reports whether the backend rejected the session.
func IsUnauthorized(err error) bool {
	return IsKind(err, KindUnauthorized)
}

// IsTimeout reports whether the call ran out of time.
func IsTimeout(err error) bool {
	return IsKind(err, KindTimeout)
}
