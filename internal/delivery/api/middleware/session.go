package middleware

import (
	"blogpilot/internal/delivery/api/response"
	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionGate keeps protected routes behind login.
type SessionGate struct {
	session usecase.SessionUsecase
}

// NewSessionGate is the constructor for SessionGate.
func NewSessionGate(session usecase.SessionUsecase) *SessionGate {
	return &SessionGate{session: session}
}

// Require redirects to the login page before the handler runs when no token
// is held, so no backend call is made without credentials.
func (g *SessionGate) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		current := g.session.Current()
		if !current.IsAuthenticated() {
			return response.RedirectToLogin(c)
		}

		deliverycontext.SetSession(c, current)

		return next(c)
	}
}
