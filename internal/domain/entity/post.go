package entity

import "time"

// PostStatus is one generated post as tracked by the backend.
type PostStatus struct {
	ID           int64          `json:"id"`
	Title        string         `json:"title"`
	Status       string         `json:"status"`
	PublishedURL *string        `json:"published_url"`
	ViewCount    int            `json:"view_count"`
	KeywordRanks map[string]any `json:"keyword_ranks"`
	CreatedAt    time.Time      `json:"created_at"`
}

// PostStatusGroup lists the posts of one blog, newest first.
type PostStatusGroup struct {
	BlogAlias string       `json:"blog_alias"`
	Platform  string       `json:"platform"`
	Posts     []PostStatus `json:"posts"`
}

// PublishResult is the outcome of a manual publish.
type PublishResult struct {
	Status  string `json:"status"`
	URL     string `json:"url,omitempty"`
	Message string `json:"message,omitempty"`

	// QRCodeKey is the artifact key of the published link's QR code.
	QRCodeKey string `json:"qr_code_key,omitempty"`
}

// TrackResult is the backend's acknowledgement of a rank-tracking request.
type TrackResult map[string]any

// DownloadKind selects which artifact of a post is downloaded.
type DownloadKind string

const (
	DownloadHTML   DownloadKind = "html"
	DownloadImages DownloadKind = "images"
)

// Valid reports whether the kind is known.
func (k DownloadKind) Valid() bool {
	return k == DownloadHTML || k == DownloadImages
}

// Artifact is a downloaded post file.
type Artifact struct {
	Kind        DownloadKind `json:"kind"`
	ContentType string       `json:"content_type"`
	Data        []byte       `json:"-"`
}

// ExportedArtifact tells where an artifact was written.
type ExportedArtifact struct {
	PostID      int64        `json:"post_id"`
	Kind        DownloadKind `json:"kind"`
	Key         string       `json:"key"`
	Size        int          `json:"size"`
	ContentType string       `json:"content_type"`
}
