package response

import (
	"net/http"

	deliverycontext "blogpilot/internal/delivery/context"
	domainerrors "blogpilot/internal/domain/errors"

	"github.com/labstack/echo/v4"
)

// LoginPath is where unauthenticated console requests are sent.
const LoginPath = "/login"

// Envelope wraps every JSON body the console sends.
type Envelope struct {
	Data  any        `json:"data,omitempty"`
	Error *ErrorBody `json:"error,omitempty"`
	Meta  Meta       `json:"meta"`
}

// ErrorBody is the error half of an Envelope.
type ErrorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details any    `json:"details,omitempty"`
}

type Meta struct {
	RequestID string `json:"request_id"`
}

func meta(c echo.Context) Meta {
	return Meta{RequestID: deliverycontext.GetRequestID(c)}
}

// ErrorWithDetails renders an error envelope without filtering details.
func ErrorWithDetails(c echo.Context, statusCode int, errorCode, message string, details any) error {
	return c.JSON(statusCode, Envelope{
		Error: &ErrorBody{Code: errorCode, Message: message, Details: details},
		Meta:  meta(c),
	})
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Envelope{
		Data: data,
		Meta: meta(c),
	})
}

// OK returns a 200 response
func OK(c echo.Context, data any) error {
	return Success(c, http.StatusOK, data)
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return ErrorWithDetails(c, statusCode, errorCode, message, details)
}

// AppError renders an AppError, keeping its details for client errors.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	var details any
	if d := appErr.Details(); d != "" {
		details = d
	}

	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), details)
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// NotFound returns a 404 error
func NotFound(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusNotFound, errorCode, message, nil)
}

// InternalServerError returns a 500 error
func InternalServerError(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusInternalServerError, errorCode, message, nil)
}

// RedirectToLogin sends the browser to the login page with a 303 so the
// follow-up request is always a GET.
func RedirectToLogin(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, LoginPath)
}
