// Package storage writes exported post artifacts to a gocloud.dev bucket.
package storage

import (
	"context"
	"log/slog"
	"net/url"
	"os"

	"blogpilot/config"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"

	"go.uber.org/fx"
	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob"
	_ "gocloud.dev/blob/memblob"
	"gocloud.dev/gcerrors"
)

type blobStore struct {
	bucket *blob.Bucket
}

// OpenBlobStore opens the bucket at bucketURL (file:///dir or mem://).
// Local directories are created when missing.
func OpenBlobStore(ctx context.Context, bucketURL string) (service.ArtifactStore, error) {
	u, err := url.Parse(bucketURL)
	if err != nil {
		return nil, errors.Wrap(err, "parse bucket url")
	}
	if u.Scheme == "file" {
		if err := os.MkdirAll(u.Path, 0o755); err != nil {
			return nil, errors.Wrap(err, "create export directory")
		}
	}

	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "open bucket %s", bucketURL)
	}

	return &blobStore{bucket: bucket}, nil
}

func (s *blobStore) Put(ctx context.Context, key string, data []byte, contentType string) error {
	opts := &blob.WriterOptions{ContentType: contentType}

	return errors.Wrapf(s.bucket.WriteAll(ctx, key, data, opts), "write %s", key)
}

func (s *blobStore) Get(ctx context.Context, key string) ([]byte, error) {
	data, err := s.bucket.ReadAll(ctx, key)
	if gcerrors.Code(err) == gcerrors.NotFound {
		return nil, errors.Wrapf(domainerrors.ErrNotFound.WithDetails(key), "read %s", key)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "read %s", key)
	}

	return data, nil
}

func (s *blobStore) Close() error {
	return s.bucket.Close()
}

// Params holds dependencies for the artifact store, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// New opens the configured export bucket and closes it on shutdown.
func New(params Params) (service.ArtifactStore, error) {
	store, err := OpenBlobStore(params.Ctx, params.Config.Export.BucketURL)
	if err != nil {
		return nil, err
	}
	params.Logger.Info("Artifact export bucket opened", slog.String("url", params.Config.Export.BucketURL))

	params.Lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return store.Close()
		},
	})

	return store, nil
}
