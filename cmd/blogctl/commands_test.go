package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log/slog"
	"testing"

	"blogpilot/internal/domain/entity"
	"blogpilot/internal/errors"
	mockUsecase "blogpilot/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"Mon", "Fri"}, splitList(" Mon, ,Fri "))
	assert.Equal(t, []string{}, splitList(""))
}

func TestDraftFlags_PatchOnlyExplicitFlags(t *testing.T) {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	f := newDraftFlags(fs)
	require.NoError(t, fs.Parse([]string{"-max", "3000", "-topic", "travel"}))

	p := f.patch()

	require.NotNil(t, p.WordMax)
	assert.Equal(t, 3000, *p.WordMax)
	require.NotNil(t, p.InterestTopic)
	assert.Equal(t, "travel", *p.InterestTopic)
	assert.Nil(t, p.WordMin)
	assert.Nil(t, p.ImageCount)
	assert.Nil(t, p.Persona)
}

func TestEstimateCommand(t *testing.T) {
	fs := flag.NewFlagSet("estimate", flag.ContinueOnError)
	cmd := estimateCommand(fs)
	require.NoError(t, fs.Parse([]string{"-images", "5", "-min", "1000", "-max", "2500"}))

	var out bytes.Buffer
	require.NoError(t, cmd.local(&out))

	var got struct {
		ImageCount int              `json:"image_count"`
		WordRange  entity.WordRange `json:"word_range"`
		Credits    int              `json:"credits"`
	}
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, 5, got.ImageCount)
	assert.Equal(t, entity.WordRange{Min: 1000, Max: 2500}, got.WordRange)
	assert.Equal(t, 12, got.Credits)
}

func TestRun_UnknownSubcommand(t *testing.T) {
	err := run(context.Background(), "publish", nil)

	assert.ErrorContains(t, err, "unknown subcommand")
}

func TestCommands_SessionRequirement(t *testing.T) {
	for name, needs := range map[string]bool{
		"login":    false,
		"logout":   false,
		"whoami":   false,
		"estimate": false,
		"credits":  true,
		"history":  true,
		"generate": true,
		"schedule": true,
	} {
		require.Contains(t, commands, name)
		assert.Equal(t, needs, commands[name].needsSession, name)
	}
}

func TestRestoreSession_UnreadableStoreIsLogged(t *testing.T) {
	ctx := context.Background()
	session := mockUsecase.NewMockSessionUsecase(t)
	session.EXPECT().Restore(ctx).Return(entity.Session{}, errors.New("corrupt session file"))

	var logs bytes.Buffer
	d := &deps{
		Logger:  slog.New(slog.NewJSONHandler(&logs, nil)),
		Session: session,
	}

	restoreSession(ctx, d)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(logs.Bytes(), &entry))
	assert.Equal(t, "WARN", entry["level"])
	assert.Equal(t, "Stored session could not be read", entry["msg"])
	assert.Equal(t, "corrupt session file", entry["error"])
}
