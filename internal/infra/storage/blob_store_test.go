package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlobStore_Memory(t *testing.T) {
	ctx := context.Background()
	store, err := OpenBlobStore(ctx, "mem://")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Put(ctx, "posts/1/post.html", []byte("<p>x</p>"), "text/html"))

	data, err := store.Get(ctx, "posts/1/post.html")
	require.NoError(t, err)
	assert.Equal(t, []byte("<p>x</p>"), data)

	_, err = store.Get(ctx, "posts/2/post.html")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}

func TestBlobStore_FileCreatesDirectory(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "exports")

	store, err := OpenBlobStore(ctx, "file://"+filepath.ToSlash(dir))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	require.NoError(t, store.Put(ctx, "posts/3/qr.png", []byte{0x89, 'P', 'N', 'G'}, "image/png"))

	data, err := os.ReadFile(filepath.Join(dir, "posts", "3", "qr.png"))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, data)
}

func TestOpenBlobStore_UnknownScheme(t *testing.T) {
	_, err := OpenBlobStore(context.Background(), "nosuch://bucket")
	assert.Error(t, err)
}
