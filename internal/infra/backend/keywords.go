package backend

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"blogpilot/internal/domain/entity"
	"blogpilot/internal/errors"
)

// SearchKeywords returns related keywords for a seed.
func (c *Client) SearchKeywords(ctx context.Context, seed string) ([]entity.KeywordSuggestion, error) {
	r := &request{method: http.MethodGet, path: "/keywords/search"}

	seed = strings.TrimSpace(seed)
	if seed == "" {
		return nil, c.validationError(c.endpoint(r), errors.New("seed keyword is required"))
	}
	r.query = url.Values{"seed": []string{seed}}

	var out []entity.KeywordSuggestion
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}

	return out, nil
}
