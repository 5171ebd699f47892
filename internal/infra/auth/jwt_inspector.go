// Package auth reads display information from backend access tokens.
package auth

import (
	"strings"
	"time"

	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

// jwtInspector reads claims from JWT access tokens without verifying them.
// The signing key lives on the backend; the claims are used for display only.
type jwtInspector struct {
	parser *jwt.Parser
}

// NewJWTInspector creates a token inspector.
func NewJWTInspector() service.TokenInspector {
	return &jwtInspector{parser: jwt.NewParser()}
}

// Inspect returns nil claims for tokens that are not JWTs.
func (i *jwtInspector) Inspect(token string) (*service.TokenClaims, error) {
	if strings.Count(token, ".") != 2 {
		return nil, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := i.parser.ParseUnverified(token, claims); err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	out := &service.TokenClaims{}
	if sub, err := claims.GetSubject(); err == nil {
		out.Subject = sub
	}
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		t := exp.Time.UTC()
		out.ExpiresAt = &t
	}

	return out, nil
}

// Expired reports whether the claims carry an expiry in the past.
func Expired(claims *service.TokenClaims, now time.Time) bool {
	return claims != nil && claims.ExpiresAt != nil && !claims.ExpiresAt.After(now)
}
