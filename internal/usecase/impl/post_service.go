package impl

import (
	"context"
	"fmt"
	"log/slog"
	"mime"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
	"blogpilot/internal/usecase"

	"go.uber.org/fx"
)

// postService implements the PostUsecase interface.
type postService struct {
	api    service.PostAPI
	qr     service.QRCodeService
	store  service.ArtifactStore
	logger *slog.Logger
}

// PostServiceParams holds dependencies for PostService, injected by Fx.
type PostServiceParams struct {
	fx.In

	API    service.BackendAPI
	QR     service.QRCodeService
	Store  service.ArtifactStore
	Logger *slog.Logger
}

// NewPostService is the constructor for postService.
func NewPostService(params PostServiceParams) usecase.PostUsecase {
	return &postService{
		api:    params.API,
		qr:     params.QR,
		store:  params.Store,
		logger: params.Logger,
	}
}

func (srv *postService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Statuses returns the posts grouped by blog.
func (srv *postService) Statuses(ctx context.Context) ([]entity.PostStatusGroup, error) {
	return srv.api.PostStatuses(ctx)
}

// Publish publishes a post manually. A failure to store the QR code is logged
// and does not fail the publish.
func (srv *postService) Publish(ctx context.Context, postID int64) (*entity.PublishResult, error) {
	if postID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("post id is required"), "publish post")
	}

	result, err := srv.api.Publish(ctx, postID)
	if err != nil {
		return nil, err
	}
	srv.log(ctx).Info("Post published", slog.Int64("post_id", postID), slog.String("status", result.Status))

	if result.URL == "" {
		return result, nil
	}

	png, err := srv.qr.GenerateLinkQR(result.URL)
	if err != nil {
		srv.log(ctx).Warn("Failed to render QR code", slog.Int64("post_id", postID), slog.Any("error", err))

		return result, nil
	}

	key := fmt.Sprintf("posts/%d/qrcode.png", postID)
	if err := srv.store.Put(ctx, key, png, "image/png"); err != nil {
		srv.log(ctx).Warn("Failed to store QR code", slog.String("key", key), slog.Any("error", err))

		return result, nil
	}
	result.QRCodeKey = key

	return result, nil
}

// Track asks the backend to start rank tracking for a post.
func (srv *postService) Track(ctx context.Context, postID int64) (entity.TrackResult, error) {
	if postID <= 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("post id is required"), "track post")
	}

	return srv.api.Track(ctx, postID)
}

// Export downloads an artifact and writes it to the artifact store.
func (srv *postService) Export(ctx context.Context, postID int64, kind entity.DownloadKind) (*entity.ExportedArtifact, error) {
	if postID <= 0 || !kind.Valid() {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("post id and a known download kind are required"), "export post")
	}

	artifact, err := srv.api.Download(ctx, postID, kind)
	if err != nil {
		return nil, err
	}

	key := fmt.Sprintf("posts/%d/%s%s", postID, kind, artifactExtension(artifact))
	if err := srv.store.Put(ctx, key, artifact.Data, artifact.ContentType); err != nil {
		return nil, errors.Wrapf(err, "store artifact %s", key)
	}

	srv.log(ctx).Info("Artifact exported", slog.String("key", key), slog.Int("size", len(artifact.Data)))

	return &entity.ExportedArtifact{
		PostID:      postID,
		Kind:        kind,
		Key:         key,
		Size:        len(artifact.Data),
		ContentType: artifact.ContentType,
	}, nil
}

// Artifact reads a previously exported file.
func (srv *postService) Artifact(ctx context.Context, key string) ([]byte, error) {
	return srv.store.Get(ctx, key)
}

func artifactExtension(a *entity.Artifact) string {
	mediaType, _, err := mime.ParseMediaType(a.ContentType)
	if err == nil {
		switch mediaType {
		case "text/html":
			return ".html"
		case "application/zip", "application/x-zip-compressed":
			return ".zip"
		case "application/json":
			return ".json"
		}
	}
	if a.Kind == entity.DownloadHTML {
		return ".html"
	}

	return ".zip"
}
