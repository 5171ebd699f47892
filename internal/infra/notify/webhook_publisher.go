// Package notify delivers generation events to an external listener.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"blogpilot/internal/domain/entity"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
)

const eventTypeGenerationFinished = "generation.finished"

// webhookPublisher implements EventPublisher by POSTing a JSON envelope
type webhookPublisher struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
}

// WebhookMessage is the envelope posted to the endpoint
type WebhookMessage struct {
	Type        string                  `json:"type"`
	MessageID   string                  `json:"messageId"`
	PublishTime string                  `json:"publishTime"`
	Event       *entity.GenerationEvent `json:"event"`
}

// NewWebhookPublisher creates a publisher that posts to endpoint
func NewWebhookPublisher(endpoint string, logger *slog.Logger) service.EventPublisher {
	return &webhookPublisher{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}
}

// PublishGenerationEvent posts the event
func (p *webhookPublisher) PublishGenerationEvent(ctx context.Context, event *entity.GenerationEvent) error {
	msg := WebhookMessage{
		Type:        eventTypeGenerationFinished,
		MessageID:   event.JobID.String(),
		PublishTime: time.Now().UTC().Format(time.RFC3339),
		Event:       event,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return errors.WithStack(err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.endpoint, bytes.NewReader(body))
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return errors.WithStack(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("webhook returned non-success status: %d", resp.StatusCode)
	}

	p.logger.Info("[Webhook] Generation event delivered",
		slog.String("job_id", event.JobID.String()),
		slog.String("status", string(event.Status)),
	)

	return nil
}

// Close releases resources (no-op for HTTP client)
func (p *webhookPublisher) Close() error {
	return nil
}
