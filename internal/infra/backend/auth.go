package backend

import (
	"context"
	"net/http"

	"blogpilot/internal/domain/entity"
)

// Login exchanges credentials for an access token.
func (c *Client) Login(ctx context.Context, creds entity.Credentials) (*entity.TokenResponse, error) {
	r := &request{method: http.MethodPost, path: "/auth/login", body: creds}
	if err := c.validateInput(c.endpoint(r), creds); err != nil {
		return nil, err
	}

	var out entity.TokenResponse
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}

	return &out, nil
}

// Signup registers a new account.
func (c *Client) Signup(ctx context.Context, input entity.SignupInput) error {
	r := &request{method: http.MethodPost, path: "/auth/signup", body: input}
	if err := c.validateInput(c.endpoint(r), input); err != nil {
		return err
	}

	return c.do(ctx, r)
}
