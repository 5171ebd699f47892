package service

import "time"

// TokenClaims are the display-only claims read from an access token.
type TokenClaims struct {
	Subject   string
	ExpiresAt *time.Time
}

// TokenInspector reads claims without verifying the signature; the backend
// remains the only authority on token validity.
type TokenInspector interface {
	// Inspect returns nil claims and no error for opaque (non-JWT) tokens
	Inspect(token string) (*TokenClaims, error)
}
