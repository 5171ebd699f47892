package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"blogpilot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_Lifecycle(t *testing.T) {
	ctx := context.Background()
	repo, err := Open(filepath.Join(t.TempDir(), "session.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "one", DisplayName: "a"}))
	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "two", DisplayName: "b"}))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.Session{Token: "two", DisplayName: "b"}, loaded)

	require.NoError(t, repo.Clear(ctx))
	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionRepository_SurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.db")

	repo, err := Open(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "persisted"}))
	require.NoError(t, repo.Close())

	reopened, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = reopened.Close() })

	loaded, err := reopened.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "persisted", loaded.Token)
	assert.Empty(t, loaded.DisplayName)
}

func TestOpen_InMemory(t *testing.T) {
	repo, err := Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close() })

	require.NoError(t, repo.Save(context.Background(), &entity.Session{Token: "mem"}))
	loaded, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "mem", loaded.Token)
}
