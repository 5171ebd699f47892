package backend

import (
	"context"
	"net/http"
	"strconv"

	"blogpilot/internal/domain/entity"

	"github.com/google/uuid"
)

const idempotencyKeyHeader = "Idempotency-Key"

// ListBlogs returns every blog owned by the operator.
func (c *Client) ListBlogs(ctx context.Context) ([]entity.Blog, error) {
	var out []entity.Blog
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/blogs/", out: &out}); err != nil {
		return nil, err
	}

	return out, nil
}

// CreateBlog posts the identity fields. Each call carries a fresh idempotency
// key, so a repeated call still creates another blog.
func (c *Client) CreateBlog(ctx context.Context, identity entity.BlogIdentity) (*entity.Blog, error) {
	r := &request{
		method: http.MethodPost,
		path:   "/blogs/",
		body:   identity,
		header: http.Header{idempotencyKeyHeader: []string{uuid.NewString()}},
	}
	if err := c.validateInput(c.endpoint(r), identity); err != nil {
		return nil, err
	}

	var out entity.Blog
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdateBlogSettings sends only the behavioural fields.
func (c *Client) UpdateBlogSettings(ctx context.Context, id int64, settings entity.BlogSettings) (*entity.Blog, error) {
	r := &request{method: http.MethodPut, path: blogPath(id), label: "/blogs/{id}", body: settings}
	if err := c.validateInput(c.endpoint(r), settings); err != nil {
		return nil, err
	}

	return c.putBlog(ctx, r)
}

// UpdateBlog sends identity and behavioural fields together.
func (c *Client) UpdateBlog(ctx context.Context, id int64, update entity.BlogUpdate) (*entity.Blog, error) {
	r := &request{method: http.MethodPut, path: blogPath(id), label: "/blogs/{id}", body: update}
	if err := c.validateInput(c.endpoint(r), update); err != nil {
		return nil, err
	}

	return c.putBlog(ctx, r)
}

func (c *Client) putBlog(ctx context.Context, r *request) (*entity.Blog, error) {
	var out entity.Blog
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}
	if out.ID == 0 {
		// Some deployments answer PUT with an empty body.
		return nil, nil
	}

	return &out, nil
}

// DeleteBlog removes a blog.
func (c *Client) DeleteBlog(ctx context.Context, id int64) error {
	return c.do(ctx, &request{method: http.MethodDelete, path: blogPath(id), label: "/blogs/{id}"})
}

// AnalyzeBlog asks the backend for a suggested category and prompt.
func (c *Client) AnalyzeBlog(ctx context.Context, req entity.BlogAnalysisRequest) (*entity.BlogAnalysis, error) {
	var out entity.BlogAnalysis
	if err := c.do(ctx, &request{method: http.MethodPost, path: "/blogs/analyze", body: req, out: &out}); err != nil {
		return nil, err
	}

	return &out, nil
}

func blogPath(id int64) string {
	return "/blogs/" + strconv.FormatInt(id, 10)
}
