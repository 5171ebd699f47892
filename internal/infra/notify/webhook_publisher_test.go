package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"blogpilot/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEvent() *entity.GenerationEvent {
	return &entity.GenerationEvent{
		JobID:         uuid.New(),
		PostID:        12,
		Status:        entity.JobStatusCompleted,
		ImageTotal:    3,
		ResolvedCount: 3,
		FinishedAt:    time.Now().UTC(),
	}
}

func TestWebhookPublisher_Publish(t *testing.T) {
	var got WebhookMessage
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusAccepted)
	}))
	t.Cleanup(server.Close)

	event := testEvent()
	publisher := NewWebhookPublisher(server.URL, slog.New(slog.DiscardHandler))
	require.NoError(t, publisher.PublishGenerationEvent(context.Background(), event))

	assert.Equal(t, eventTypeGenerationFinished, got.Type)
	assert.Equal(t, event.JobID.String(), got.MessageID)
	require.NotNil(t, got.Event)
	assert.Equal(t, entity.JobStatusCompleted, got.Event.Status)
	assert.Equal(t, 3, got.Event.ResolvedCount)
	assert.NoError(t, publisher.Close())
}

func TestWebhookPublisher_NonSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)

	publisher := NewWebhookPublisher(server.URL, slog.New(slog.DiscardHandler))
	err := publisher.PublishGenerationEvent(context.Background(), testEvent())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestNoopPublisher(t *testing.T) {
	publisher := NewNoopPublisher(slog.New(slog.DiscardHandler))
	assert.NoError(t, publisher.PublishGenerationEvent(context.Background(), testEvent()))
	assert.NoError(t, publisher.Close())
}
