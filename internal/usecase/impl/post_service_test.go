package impl

import (
	"context"
	"testing"

	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"
	mockService "blogpilot/internal/mocks/service"
	"blogpilot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type postFixture struct {
	srv   usecase.PostUsecase
	api   *mockService.MockBackendAPI
	qr    *mockService.MockQRCodeService
	store *mockService.MockArtifactStore
}

func newPostFixture(t *testing.T) *postFixture {
	t.Helper()

	f := &postFixture{
		api:   mockService.NewMockBackendAPI(t),
		qr:    mockService.NewMockQRCodeService(t),
		store: mockService.NewMockArtifactStore(t),
	}
	f.srv = NewPostService(PostServiceParams{API: f.api, QR: f.qr, Store: f.store, Logger: newDiscardLogger()})

	return f
}

func TestPostService_PublishStoresQRCode(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()
	png := []byte{0x89, 'P', 'N', 'G'}

	f.api.EXPECT().Publish(ctx, int64(5)).Return(&entity.PublishResult{Status: "published", URL: "https://blog.naver.com/kim/5"}, nil)
	f.qr.EXPECT().GenerateLinkQR("https://blog.naver.com/kim/5").Return(png, nil)
	f.store.EXPECT().Put(ctx, "posts/5/qrcode.png", png, "image/png").Return(nil)

	got, err := f.srv.Publish(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, "posts/5/qrcode.png", got.QRCodeKey)
}

func TestPostService_PublishWithoutURL(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Publish(ctx, int64(5)).Return(&entity.PublishResult{Status: "queued"}, nil)

	got, err := f.srv.Publish(ctx, 5)

	require.NoError(t, err)
	assert.Empty(t, got.QRCodeKey)
}

func TestPostService_PublishQRFailureIsTolerated(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Publish(ctx, int64(5)).Return(&entity.PublishResult{Status: "published", URL: "https://x.test/5"}, nil)
	f.qr.EXPECT().GenerateLinkQR("https://x.test/5").Return(nil, errors.New("too long"))

	got, err := f.srv.Publish(ctx, 5)

	require.NoError(t, err)
	assert.Equal(t, "published", got.Status)
	assert.Empty(t, got.QRCodeKey)
}

func TestPostService_PublishErrors(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid id", func(t *testing.T) {
		f := newPostFixture(t)

		_, err := f.srv.Publish(ctx, 0)

		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("backend failure propagates", func(t *testing.T) {
		f := newPostFixture(t)
		f.api.EXPECT().Publish(ctx, int64(5)).Return(nil, errUnavailable)

		_, err := f.srv.Publish(ctx, 5)

		assert.Equal(t, errUnavailable, err)
	})
}

func TestPostService_Export(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name        string
		kind        entity.DownloadKind
		contentType string
		wantKey     string
	}{
		{"html", entity.DownloadHTML, "text/html; charset=utf-8", "posts/9/html.html"},
		{"images zip", entity.DownloadImages, "application/zip", "posts/9/images.zip"},
		{"unknown type falls back by kind", entity.DownloadImages, "application/octet-stream", "posts/9/images.zip"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPostFixture(t)
			data := []byte("payload")

			f.api.EXPECT().Download(ctx, int64(9), tt.kind).Return(&entity.Artifact{Kind: tt.kind, ContentType: tt.contentType, Data: data}, nil)
			f.store.EXPECT().Put(ctx, tt.wantKey, data, tt.contentType).Return(nil)

			got, err := f.srv.Export(ctx, 9, tt.kind)

			require.NoError(t, err)
			assert.Equal(t, tt.wantKey, got.Key)
			assert.Equal(t, len(data), got.Size)
		})
	}
}

func TestPostService_ExportUnknownKind(t *testing.T) {
	f := newPostFixture(t)

	_, err := f.srv.Export(context.Background(), 9, "pdf")

	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
}

func TestPostService_Track(t *testing.T) {
	f := newPostFixture(t)
	ctx := context.Background()

	f.api.EXPECT().Track(ctx, int64(3)).Return(entity.TrackResult{"status": "tracking"}, nil)

	got, err := f.srv.Track(ctx, 3)

	require.NoError(t, err)
	assert.Equal(t, "tracking", got["status"])
}
