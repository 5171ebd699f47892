package service

import "context"

// ImageProbe performs a lightweight existence check on a rendered image.
type ImageProbe interface {
	// Exists reports whether the image can be fetched. A missing image is
	// (false, nil); errors are reserved for checks that could not run.
	Exists(ctx context.Context, url string) (bool, error)
}

// HTMLSanitizer cleans backend-produced HTML before it is shown.
type HTMLSanitizer interface {
	Sanitize(html string) string
}

// ArtifactStore writes exported files.
type ArtifactStore interface {
	Put(ctx context.Context, key string, data []byte, contentType string) error
	Get(ctx context.Context, key string) ([]byte, error)
	Close() error
}
