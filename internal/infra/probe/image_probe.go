// Package probe checks whether asynchronously rendered images exist yet.
package probe

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"blogpilot/config"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
	"blogpilot/internal/infra/metrics"

	"github.com/doyensec/safeurl"
	"go.uber.org/fx"
)

const defaultProbeTimeout = 5 * time.Second

// Options configures an image probe.
type Options struct {
	// BaseURL resolves relative image paths such as /generated_images/x.png.
	BaseURL string
	Timeout time.Duration

	// AllowPrivateNetworks uses a plain client so a backend on localhost or a
	// private network can be probed.
	AllowPrivateNetworks bool

	HTTPClient *http.Client
	Metrics    metrics.Recorder
	Logger     *slog.Logger
}

type imageProbe struct {
	base    *url.URL
	client  *http.Client
	metrics metrics.Recorder
	logger  *slog.Logger
}

// NewImageProbe creates an image probe.
func NewImageProbe(opts Options) (service.ImageProbe, error) {
	base, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse probe base url")
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultProbeTimeout
	}

	client := opts.HTTPClient
	if client == nil {
		if opts.AllowPrivateNetworks {
			client = &http.Client{Timeout: timeout}
		} else {
			cfg := safeurl.GetConfigBuilder().
				SetTimeout(timeout).
				SetAllowedSchemes("http", "https").
				SetAllowedPorts(80, 443).
				Build()
			client = safeurl.Client(cfg).Client
		}
	}

	p := &imageProbe{base: base, client: client, metrics: opts.Metrics, logger: opts.Logger}
	if p.metrics == nil {
		p.metrics = metrics.Nop{}
	}
	if p.logger == nil {
		p.logger = slog.New(slog.DiscardHandler)
	}

	return p, nil
}

// Params holds dependencies for the image probe, injected by Fx
type Params struct {
	fx.In

	Config  *config.Config
	Metrics metrics.Recorder
	Logger  *slog.Logger
}

// New builds the probe from configuration.
func New(params Params) (service.ImageProbe, error) {
	return NewImageProbe(Options{
		BaseURL:              params.Config.API.BaseURL,
		Timeout:              params.Config.Poller.Interval * 4,
		AllowPrivateNetworks: params.Config.Poller.AllowPrivateNetworks,
		Metrics:              params.Metrics,
		Logger:               params.Logger,
	})
}

// Exists issues a HEAD request, falling back to GET when HEAD is not allowed.
func (p *imageProbe) Exists(ctx context.Context, rawURL string) (bool, error) {
	target, err := p.resolve(rawURL)
	if err != nil {
		return false, err
	}

	status, err := p.check(ctx, http.MethodHead, target)
	if err == nil && status == http.StatusMethodNotAllowed {
		status, err = p.check(ctx, http.MethodGet, target)
	}
	if err != nil {
		p.logger.Debug("Image probe failed", slog.String("url", target), slog.Any("error", err))

		return false, err
	}

	found := status >= 200 && status < 300
	p.metrics.RecordProbe(found)

	return found, nil
}

func (p *imageProbe) resolve(rawURL string) (string, error) {
	ref, err := url.Parse(rawURL)
	if err != nil {
		return "", errors.Wrapf(err, "parse image url %q", rawURL)
	}

	return p.base.ResolveReference(ref).String(), nil
}

func (p *imageProbe) check(ctx context.Context, method, target string) (int, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return 0, errors.WithStack(err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return 0, errors.WithStack(err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 1<<20))

	return resp.StatusCode, nil
}
