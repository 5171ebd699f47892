package backend

import (
	"context"
	"net/http"
	"strconv"

	"blogpilot/internal/domain/entity"
	"blogpilot/internal/errors"
)

// PostStatuses returns posts grouped by blog.
func (c *Client) PostStatuses(ctx context.Context) ([]entity.PostStatusGroup, error) {
	var out []entity.PostStatusGroup
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/posts/status", out: &out}); err != nil {
		return nil, err
	}

	return out, nil
}

// Preview runs one generation cycle. The HTML is returned synchronously; the
// listed images may not exist yet.
func (c *Client) Preview(ctx context.Context, req entity.GenerationRequest) (*entity.GenerationResult, error) {
	r := &request{method: http.MethodPost, path: "/posts/preview", body: req}
	if err := c.validateInput(c.endpoint(r), req); err != nil {
		return nil, err
	}

	var out entity.GenerationResult
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}

	return &out, nil
}

// Publish pushes a generated post to its blog platform.
func (c *Client) Publish(ctx context.Context, postID int64) (*entity.PublishResult, error) {
	var out entity.PublishResult
	r := &request{method: http.MethodPost, path: postPath(postID, "publish"), label: "/posts/{id}/publish", out: &out}
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}

	return &out, nil
}

// Track asks the backend to start rank tracking for a post.
func (c *Client) Track(ctx context.Context, postID int64) (entity.TrackResult, error) {
	out := entity.TrackResult{}
	r := &request{method: http.MethodPost, path: postPath(postID, "track"), label: "/posts/{id}/track", out: &out}
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}

	return out, nil
}

// Download fetches the post's HTML or its images archive.
func (c *Client) Download(ctx context.Context, postID int64, kind entity.DownloadKind) (*entity.Artifact, error) {
	if !kind.Valid() {
		return nil, c.validationError("GET /posts/{id}/download/{kind}", errors.Errorf("unknown download kind %q", kind))
	}

	raw := &rawResponse{}
	r := &request{
		method: http.MethodGet,
		path:   postPath(postID, "download/"+string(kind)),
		label:  "/posts/{id}/download/" + string(kind),
		raw:    raw,
	}
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}

	return &entity.Artifact{Kind: kind, ContentType: raw.contentType, Data: raw.data}, nil
}

// KeywordTracking returns the rank tracking table, or an empty table when the
// backend cannot be read.
func (c *Client) KeywordTracking(ctx context.Context) []entity.KeywordTrackerRow {
	r := &request{method: http.MethodGet, path: "/posts/keywords"}

	var out []entity.KeywordTrackerRow
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		c.fallback(c.endpoint(r), err)

		return []entity.KeywordTrackerRow{}
	}
	if out == nil {
		out = []entity.KeywordTrackerRow{}
	}

	return out
}

func postPath(id int64, action string) string {
	return "/posts/" + strconv.FormatInt(id, 10) + "/" + action
}
