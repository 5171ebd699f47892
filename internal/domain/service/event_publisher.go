package service

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// EventPublisher delivers generation events to an external listener
type EventPublisher interface {
	// PublishGenerationEvent is called once per job that reaches a terminal state
	PublishGenerationEvent(ctx context.Context, event *entity.GenerationEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
