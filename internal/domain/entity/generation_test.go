package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerationRequest_MarshalJSON(t *testing.T) {
	req := GenerationRequestFromDraft(NewBlogDraft(), true)

	data, err := json.Marshal(req)
	require.NoError(t, err)

	var wire map[string]any
	require.NoError(t, json.Unmarshal(data, &wire))
	assert.Equal(t, []any{float64(800), float64(1200)}, wire["word_count_range"])
	assert.Equal(t, true, wire["free_trial"])
	assert.Equal(t, DefaultInterestTopic, wire["topic"])
	assert.NotContains(t, wire, "WordRange")
}

func TestJobStatus_IsTerminal(t *testing.T) {
	assert.False(t, JobStatusIdle.IsTerminal())
	assert.False(t, JobStatusProcessing.IsTerminal())
	assert.True(t, JobStatusCompleted.IsTerminal())
	assert.True(t, JobStatusError.IsTerminal())
	assert.True(t, JobStatusTimedOut.IsTerminal())
}

func TestGenerationJob_CloneIsIndependent(t *testing.T) {
	job := GenerationJob{Slots: []ImageSlot{{Index: 0, URL: "a"}}}

	clone := job.Clone()
	clone.Slots[0].Resolved = true

	assert.False(t, job.Slots[0].Resolved)
}
