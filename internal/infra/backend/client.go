// Package backend is the REST client for the blog automation API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"reflect"
	"strings"
	"time"

	"blogpilot/config"
	deliverycontext "blogpilot/internal/delivery/context"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
	"blogpilot/internal/infra/metrics"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	"golang.org/x/time/rate"
)

const (
	apiPrefix       = "/api/v1"
	maxResponseSize = 16 << 20
)

// Options configures a Client.
type Options struct {
	BaseURL        string
	RequestTimeout time.Duration
	UserAgent      string
	RateLimit      float64
	Burst          int
	HTTPClient     *http.Client
	Tokens         service.TokenSource
	Metrics        metrics.Recorder
	Logger         *slog.Logger
}

// Client implements service.BackendAPI.
type Client struct {
	baseURL    *url.URL
	timeout    time.Duration
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	tokens     service.TokenSource
	validate   *validator.Validate
	metrics    metrics.Recorder
	logger     *slog.Logger
}

var _ service.BackendAPI = (*Client)(nil)

// NewClient creates a client rooted at <BaseURL>/api/v1.
func NewClient(opts Options) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(opts.BaseURL, "/"))
	if err != nil {
		return nil, errors.Wrap(err, "parse api base url")
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("api base url must be absolute: %q", opts.BaseURL)
	}
	if !strings.HasSuffix(base.Path, apiPrefix) {
		base.Path += apiPrefix
	}

	c := &Client{
		baseURL:    base,
		timeout:    opts.RequestTimeout,
		userAgent:  opts.UserAgent,
		httpClient: opts.HTTPClient,
		tokens:     opts.Tokens,
		validate:   validator.New(validator.WithRequiredStructEnabled()),
		metrics:    opts.Metrics,
		logger:     opts.Logger,
	}
	if c.httpClient == nil {
		c.httpClient = &http.Client{}
	}
	if c.metrics == nil {
		c.metrics = metrics.Nop{}
	}
	if c.logger == nil {
		c.logger = slog.New(slog.DiscardHandler)
	}
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), burst)
	}

	return c, nil
}

// Params defines the dependencies injected by fx
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Tokens  service.TokenSource
	Metrics metrics.Recorder
}

// New builds the client from configuration.
func New(params Params) (*Client, error) {
	cfg := params.Config.API

	return NewClient(Options{
		BaseURL:        cfg.BaseURL,
		RequestTimeout: cfg.RequestTimeout,
		UserAgent:      cfg.UserAgent,
		RateLimit:      cfg.RateLimit,
		Burst:          cfg.Burst,
		Tokens:         params.Tokens,
		Metrics:        params.Metrics,
		Logger:         params.Logger,
	})
}

// BaseURL returns the API root, including the version prefix.
func (c *Client) BaseURL() *url.URL {
	u := *c.baseURL

	return &u
}

// request describes one backend call. Label is the templated path used for
// metrics and error messages.
type request struct {
	method string
	path   string
	label  string
	query  url.Values
	body   any
	header http.Header
	out    any
	raw    *rawResponse
}

type rawResponse struct {
	contentType string
	data        []byte
}

func (c *Client) endpoint(r *request) string {
	label := r.label
	if label == "" {
		label = r.path
	}

	return r.method + " " + label
}

// do performs the call. Every failure is returned as *APIError.
func (c *Client) do(ctx context.Context, r *request) error {
	endpoint := c.endpoint(r)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return c.fail(ctx, endpoint, 0, "", err)
		}
	}

	req, err := c.newHTTPRequest(ctx, r)
	if err != nil {
		return c.failKind(domainerrors.KindTransport, endpoint, 0, "", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return c.fail(ctx, endpoint, 0, "", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	c.metrics.RecordAPICall(endpoint, resp.StatusCode, time.Since(start))
	if err != nil {
		return c.fail(ctx, endpoint, resp.StatusCode, "", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		kind := domainerrors.KindStatus
		if resp.StatusCode == http.StatusUnauthorized {
			kind = domainerrors.KindUnauthorized
		}
		message := parseDetail(data)
		if message == "" {
			message = fmt.Sprintf("%s failed with status %d", endpoint, resp.StatusCode)
		}

		return c.failKind(kind, endpoint, resp.StatusCode, message, nil)
	}

	if r.raw != nil {
		r.raw.contentType = resp.Header.Get("Content-Type")
		r.raw.data = data

		return nil
	}

	if r.out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, r.out); err != nil {
		return c.failKind(domainerrors.KindDecode, endpoint, resp.StatusCode, "unexpected response body", err)
	}
	if err := c.validateResult(r.out); err != nil {
		return c.failKind(domainerrors.KindDecode, endpoint, resp.StatusCode, "response failed validation", err)
	}

	return nil
}

func (c *Client) newHTTPRequest(ctx context.Context, r *request) (*http.Request, error) {
	u := *c.baseURL
	u.Path = c.baseURL.Path + r.path
	if len(r.query) > 0 {
		u.RawQuery = r.query.Encode()
	}

	var body io.Reader
	if r.body != nil {
		payload, err := json.Marshal(r.body)
		if err != nil {
			return nil, errors.Wrap(err, "encode request body")
		}
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, r.method, u.String(), body)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	req.Header.Set("Accept", "application/json")
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}
	if id := deliverycontext.GetRequestIDFromContext(ctx); id != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, id)
	}
	// Read at call time so login and logout take effect on the next request.
	if c.tokens != nil {
		if token := c.tokens.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	for key, values := range r.header {
		for _, v := range values {
			req.Header.Add(key, v)
		}
	}

	return req, nil
}

// fail classifies a transport-level error, separating deadline expiry from
// other failures.
func (c *Client) fail(ctx context.Context, endpoint string, status int, message string, err error) error {
	kind := domainerrors.KindTransport
	if errors.IsDeadline(err) || errors.IsDeadline(ctx.Err()) {
		kind = domainerrors.KindTimeout
		message = "request timed out"
	}

	return c.failKind(kind, endpoint, status, message, err)
}

func (c *Client) failKind(kind domainerrors.APIErrorKind, endpoint string, status int, message string, err error) error {
	c.metrics.RecordAPIFailure(endpoint, string(kind))

	attrs := []any{
		slog.String("endpoint", endpoint),
		slog.String("kind", string(kind)),
		slog.Int("status", status),
	}
	if err != nil {
		attrs = append(attrs, slog.Any("error", err))
	}
	c.logger.Warn("Backend call failed", attrs...)

	return domainerrors.NewAPIError(kind, endpoint, status, message, err)
}

// validationError wraps a client-side check that failed before any network call.
func (c *Client) validationError(endpoint string, err error) error {
	return c.failKind(domainerrors.KindValidation, endpoint, 0, "invalid request", err)
}

func (c *Client) validateInput(endpoint string, v any) error {
	if err := c.validate.Struct(v); err != nil {
		return c.validationError(endpoint, err)
	}

	return nil
}

// validateResult checks decoded structs, or each struct of a decoded slice.
func (c *Client) validateResult(out any) error {
	v := reflect.ValueOf(out)
	for v.Kind() == reflect.Pointer {
		if v.IsNil() {
			return nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Struct:
		return c.validate.Struct(v.Interface())
	case reflect.Slice:
		for i := range v.Len() {
			elem := v.Index(i)
			if elem.Kind() == reflect.Struct {
				if err := c.validate.Struct(elem.Interface()); err != nil {
					return errors.Wrapf(err, "element %d", i)
				}
			}
		}
	}

	return nil
}

// fallback logs and records a read answered with its fallback value.
func (c *Client) fallback(endpoint string, err error) {
	c.metrics.RecordFallback(endpoint)
	c.logger.Warn("Using fallback value", slog.String("endpoint", endpoint), slog.Any("error", err))
}

// parseDetail extracts the server's detail message. FastAPI sends either a
// string or a list of {msg} objects.
func parseDetail(data []byte) string {
	var body struct {
		Detail json.RawMessage `json:"detail"`
	}
	if err := json.Unmarshal(data, &body); err != nil || len(body.Detail) == 0 {
		return ""
	}

	var text string
	if err := json.Unmarshal(body.Detail, &text); err == nil {
		return strings.TrimSpace(text)
	}

	var items []struct {
		Msg string `json:"msg"`
	}
	if err := json.Unmarshal(body.Detail, &items); err == nil && len(items) > 0 {
		return strings.TrimSpace(items[0].Msg)
	}

	return ""
}
