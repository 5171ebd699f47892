package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"blogpilot/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepository_LoadMissing(t *testing.T) {
	repo, err := NewSessionRepository(filepath.Join(t.TempDir(), "nested", "session.json"), "")
	require.NoError(t, err)

	session, err := repo.Load(context.Background())
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepository_SaveLoadClear(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")
	repo, err := NewSessionRepository(path, "")
	require.NoError(t, err)

	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "tok", DisplayName: "a", Subject: "not stored"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"token": "tok"`)
	assert.NotContains(t, string(data), "not stored")

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, &entity.Session{Token: "tok", DisplayName: "a"}, loaded)

	require.NoError(t, repo.Clear(ctx))
	require.NoError(t, repo.Clear(ctx))

	loaded, err = repo.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestSessionRepository_Sealed(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "session.json")

	repo, err := NewSessionRepository(path, "correct horse")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, &entity.Session{Token: "secret-token", DisplayName: "kim"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, isSealed(data))
	assert.NotContains(t, string(data), "secret-token")

	loaded, err := repo.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "secret-token", loaded.Token)

	t.Run("wrong passphrase", func(t *testing.T) {
		other, err := NewSessionRepository(path, "battery staple")
		require.NoError(t, err)

		_, err = other.Load(ctx)
		assert.ErrorIs(t, err, errWrongPassphrase)
	})

	t.Run("no passphrase", func(t *testing.T) {
		plain, err := NewSessionRepository(path, "")
		require.NoError(t, err)

		_, err = plain.Load(ctx)
		assert.ErrorIs(t, err, errWrongPassphrase)
	})
}

func TestSessionRepository_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	repo, err := NewSessionRepository(path, "")
	require.NoError(t, err)

	_, err = repo.Load(context.Background())
	assert.Error(t, err)
}
