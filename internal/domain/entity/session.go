// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"
)

// Session is the operator's authenticated state.
// Only Token and DisplayName are persisted; Subject and ExpiresAt are derived
// from the token on load.
type Session struct {
	Token       string     `json:"token"`
	DisplayName string     `json:"display_name,omitempty"`
	Subject     string     `json:"-"`
	ExpiresAt   *time.Time `json:"-"`
}

// IsAuthenticated reports whether a token is held.
func (s Session) IsAuthenticated() bool {
	return s.Token != ""
}

// NormalizeDisplayName turns raw login input into a display name.
// Email-shaped input keeps the local part; blank input yields "".
func NormalizeDisplayName(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}

	if local, _, found := strings.Cut(trimmed, "@"); found && local != "" {
		return local
	}

	return trimmed
}
