package handler

import (
	"log/slog"
	"net/http"
	"time"

	"blogpilot/internal/delivery/api/response"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AuthUC    usecase.AuthUsecase
	SessionUC usecase.SessionUsecase
	Logger    *slog.Logger
}

// AuthHandler serves the login, signup and logout routes.
type AuthHandler struct {
	authUC    usecase.AuthUsecase
	sessionUC usecase.SessionUsecase
	logger    *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler
func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{
		authUC:    params.AuthUC,
		sessionUC: params.SessionUC,
		logger:    params.Logger,
	}
}

// LoginRequest represents the request body for logging in
type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
	Name     string `json:"name" form:"name"`
}

// SignupRequest represents the request body for creating an account
type SignupRequest struct {
	Email        string `json:"email" form:"email"`
	Password     string `json:"password" form:"password"`
	Name         string `json:"name" form:"name"`
	ReferralCode string `json:"referral_code" form:"referral_code"`
	Agreed       bool   `json:"agreed" form:"agreed"`
}

// SessionView is the session as shown to the operator. The token never leaves the process.
type SessionView struct {
	Authenticated bool       `json:"authenticated"`
	DisplayName   string     `json:"display_name,omitempty"`
	Subject       string     `json:"subject,omitempty"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
}

func newSessionView(s entity.Session) SessionView {
	return SessionView{
		Authenticated: s.IsAuthenticated(),
		DisplayName:   s.DisplayName,
		Subject:       s.Subject,
		ExpiresAt:     s.ExpiresAt,
	}
}

// LoginPage reports the login state; an authenticated operator is sent home.
func (h *AuthHandler) LoginPage(c echo.Context) error {
	if h.sessionUC.IsAuthenticated() {
		return c.Redirect(http.StatusSeeOther, "/")
	}

	return response.OK(c, newSessionView(entity.Session{}))
}

// Login exchanges credentials for a session.
func (h *AuthHandler) Login(c echo.Context) error {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid login input")
	}

	session, err := h.authUC.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
	})
	if err != nil {
		return err
	}

	return response.OK(c, newSessionView(session))
}

// Signup registers an account. The operator still has to log in afterwards.
func (h *AuthHandler) Signup(c echo.Context) error {
	var req SignupRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid signup input")
	}

	err := h.authUC.Signup(c.Request().Context(), &entity.SignupInput{
		Email:        req.Email,
		Password:     req.Password,
		Name:         req.Name,
		ReferralCode: req.ReferralCode,
		Agreed:       req.Agreed,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, map[string]string{"status": "registered"})
}

// Logout clears the session and returns to the login page. The in-memory
// session is gone even when the durable copy could not be removed.
func (h *AuthHandler) Logout(c echo.Context) error {
	if err := h.authUC.Logout(c.Request().Context()); err != nil {
		h.logger.Warn("Logout could not clear stored session", slog.Any("error", err))
	}

	return response.RedirectToLogin(c)
}

// Whoami returns the current session.
func (h *AuthHandler) Whoami(c echo.Context) error {
	return response.OK(c, newSessionView(h.sessionUC.Current()))
}
