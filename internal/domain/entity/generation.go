package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// GenerationRequest asks the backend for one preview cycle.
type GenerationRequest struct {
	Topic        string    `json:"topic" validate:"required"`
	Persona      string    `json:"persona" validate:"required"`
	ImageCount   int       `json:"image_count" validate:"gte=1"`
	CustomPrompt string    `json:"custom_prompt,omitempty"`
	WordRange    WordRange `json:"-"`
	FreeTrial    bool      `json:"free_trial"`
}

// MarshalJSON sends the word range as the two-element array the backend expects.
func (r GenerationRequest) MarshalJSON() ([]byte, error) {
	type alias GenerationRequest

	return json.Marshal(struct {
		alias
		WordCountRange [2]int `json:"word_count_range"`
	}{
		alias:          alias(r),
		WordCountRange: [2]int{r.WordRange.Min, r.WordRange.Max},
	})
}

// GenerationRequestFromDraft builds a request from the edit buffer.
func GenerationRequestFromDraft(d BlogDraft, freeTrial bool) GenerationRequest {
	return GenerationRequest{
		Topic:        d.Settings.InterestTopic,
		Persona:      d.Settings.Persona,
		ImageCount:   d.Settings.ImageCount,
		CustomPrompt: d.Settings.CustomPrompt,
		WordRange:    d.Settings.WordRange,
		FreeTrial:    freeTrial,
	}
}

// GenerationResult is the synchronous preview response.
// Images lists the URLs that will exist once rendering finishes.
type GenerationResult struct {
	Status          string   `json:"status"`
	ImageTotal      int      `json:"image_total"`
	PostID          int64    `json:"post_id"`
	HTML            string   `json:"html"`
	Summary         string   `json:"summary"`
	CreditsRequired int      `json:"credits_required"`
	Images          []string `json:"images"`
	ImageError      *string  `json:"image_error,omitempty"`
}

// JobStatus is the poller state.
type JobStatus string

const (
	JobStatusIdle       JobStatus = "idle"
	JobStatusProcessing JobStatus = "processing"
	JobStatusCompleted  JobStatus = "completed"
	JobStatusError      JobStatus = "error"
	JobStatusTimedOut   JobStatus = "timed_out"
)

// IsTerminal reports whether no further transition can happen.
func (s JobStatus) IsTerminal() bool {
	switch s {
	case JobStatusCompleted, JobStatusError, JobStatusTimedOut:
		return true
	default:
		return false
	}
}

// ImageSlot is one expected image. URL is set for placeholders too; Resolved
// flips once the image exists.
type ImageSlot struct {
	Index      int        `json:"index"`
	URL        string     `json:"url"`
	Resolved   bool       `json:"resolved"`
	ResolvedAt *time.Time `json:"resolved_at,omitempty"`
}

// GenerationJob is a client-side snapshot of one generation cycle.
type GenerationJob struct {
	ID              uuid.UUID   `json:"id"`
	PostID          int64       `json:"post_id,omitempty"`
	Status          JobStatus   `json:"status"`
	FreeTrial       bool        `json:"free_trial"`
	HTML            string      `json:"html,omitempty"`
	SanitizedHTML   string      `json:"sanitized_html,omitempty"`
	Summary         string      `json:"summary,omitempty"`
	CreditsRequired int         `json:"credits_required"`
	Slots           []ImageSlot `json:"slots"`
	ResolvedCount   int         `json:"resolved_count"`
	Error           string      `json:"error,omitempty"`
	StartedAt       time.Time   `json:"started_at"`
	FinishedAt      *time.Time  `json:"finished_at,omitempty"`
}

// Clone returns a copy safe to hand out while the poller keeps mutating the original.
func (j *GenerationJob) Clone() GenerationJob {
	out := *j
	out.Slots = make([]ImageSlot, len(j.Slots))
	copy(out.Slots, j.Slots)

	return out
}

// GenerationEvent is published when a job reaches a terminal state.
type GenerationEvent struct {
	JobID         uuid.UUID `json:"job_id"`
	PostID        int64     `json:"post_id,omitempty"`
	Status        JobStatus `json:"status"`
	ImageTotal    int       `json:"image_total"`
	ResolvedCount int       `json:"resolved_count"`
	FreeTrial     bool      `json:"free_trial"`
	FinishedAt    time.Time `json:"finished_at"`
}
