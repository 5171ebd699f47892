package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// PostUsecase covers generated posts after preview.
type PostUsecase interface {
	Statuses(ctx context.Context) ([]entity.PostStatusGroup, error)

	// Publish stores a QR code of the published link when the backend returns one.
	Publish(ctx context.Context, postID int64) (*entity.PublishResult, error)
	Track(ctx context.Context, postID int64) (entity.TrackResult, error)

	// Export downloads an artifact and writes it to the artifact store.
	Export(ctx context.Context, postID int64, kind entity.DownloadKind) (*entity.ExportedArtifact, error)
	Artifact(ctx context.Context, key string) ([]byte, error)
}
