package errors

import (
	"fmt"
	"net/http"

	"blogpilot/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Is matches by error code so detailed copies still match the predefined error.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)
	if !ok {
		return false
	}

	return e.errorCode == t.errorCode
}

// Predefined error types
var (
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	ErrNotAuthenticated = NewBaseError(
		http.StatusUnauthorized,
		"NOT_AUTHENTICATED",
		"login required",
		"",
	)

	ErrNoBlogSelected = NewBaseError(
		http.StatusBadRequest,
		"NO_BLOG_SELECTED",
		"no blog selected",
		"",
	)

	ErrBlogNotFound = NewBaseError(
		http.StatusNotFound,
		"BLOG_NOT_FOUND",
		"blog not found",
		"",
	)

	ErrJobNotFound = NewBaseError(
		http.StatusNotFound,
		"JOB_NOT_FOUND",
		"generation job not found",
		"",
	)

	ErrTermsNotAccepted = NewBaseError(
		http.StatusBadRequest,
		"TERMS_NOT_ACCEPTED",
		"terms of service must be accepted",
		"",
	)

	ErrSessionStorage = NewBaseError(
		http.StatusInternalServerError,
		"SESSION_STORAGE_FAILED",
		"session storage failed",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal error",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// PartialSaveError reports a create whose identity phase succeeded and whose
// settings phase failed. The blog exists on the server with backend defaults.
type PartialSaveError struct {
	BlogID int64
	Err    error
}

// NewPartialSaveError creates a partial save error for the given blog.
func NewPartialSaveError(blogID int64, err error) *PartialSaveError {
	return &PartialSaveError{BlogID: blogID, Err: err}
}

func (e *PartialSaveError) Error() string {
	return fmt.Sprintf("blog %d created but settings were not saved: %v", e.BlogID, e.Err)
}

func (e *PartialSaveError) Unwrap() error {
	return e.Err
}

// HTTPCode returns the HTTP status code
func (e *PartialSaveError) HTTPCode() int {
	return http.StatusBadGateway
}

// ErrorCode returns the business error code
func (e *PartialSaveError) ErrorCode() string {
	return "PARTIAL_SAVE"
}

// Message returns the user-friendly error message
func (e *PartialSaveError) Message() string {
	return "blog was created but its settings were not saved"
}

// Details returns detailed error information
func (e *PartialSaveError) Details() string {
	return e.Error()
}
