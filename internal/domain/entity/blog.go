package entity

// PlatformType is a supported publishing platform.
type PlatformType string

const (
	PlatformNaver     PlatformType = "Naver"
	PlatformBlogger   PlatformType = "Blogger"
	PlatformTistory   PlatformType = "Tistory"
	PlatformInBlog    PlatformType = "InBlog"
	PlatformWordPress PlatformType = "WordPress"
)

// Draft defaults used when the server entity omits a field or nothing is selected.
const (
	DefaultInterestTopic = "AI Marketing Automation"
	DefaultPersona       = "전문 SEO 마케터처럼"
	DefaultWordMin       = 800
	DefaultWordMax       = 1200
	DefaultImageCount    = 3
	DefaultPlatform      = PlatformNaver
)

// WordRange bounds the length of generated content. Min never exceeds Max.
type WordRange struct {
	Min int `json:"min" validate:"gte=0"`
	Max int `json:"max" validate:"gtefield=Min"`
}

// DefaultWordRange returns the range applied when none is configured.
func DefaultWordRange() WordRange {
	return WordRange{Min: DefaultWordMin, Max: DefaultWordMax}
}

// WithMin returns the range with min set, clamped down to the current max.
func (r WordRange) WithMin(v int) WordRange {
	r.Min = min(v, r.Max)

	return r
}

// WithMax returns the range with max set, clamped up to the current min.
func (r WordRange) WithMax(v int) WordRange {
	r.Max = max(v, r.Min)

	return r
}

// APIKeyData holds platform credentials as returned by the backend.
type APIKeyData struct {
	AccessToken string `json:"access_token,omitempty"`
}

// Blog is a configured publishing target as confirmed by the backend.
// Settings fields are pointers because the backend omits unset values.
type Blog struct {
	ID              int64        `json:"id" validate:"required"`
	Alias           string       `json:"alias"`
	PlatformType    PlatformType `json:"platform_type"`
	BlogURL         string       `json:"blog_url"`
	BlogID          string       `json:"blog_id,omitempty"`
	APIKeyData      *APIKeyData  `json:"api_key_data,omitempty"`
	Status          string       `json:"status,omitempty"`
	InterestTopic   *string      `json:"interest_topic,omitempty"`
	Persona         *string      `json:"persona,omitempty"`
	DefaultCategory *string      `json:"default_category,omitempty"`
	CustomPrompt    *string      `json:"custom_prompt,omitempty"`
	WordRange       *WordRange   `json:"word_range,omitempty"`
	ImageCount      *int         `json:"image_count,omitempty"`
}

// AccessToken returns the stored platform token or "".
func (b *Blog) AccessToken() string {
	if b.APIKeyData == nil {
		return ""
	}

	return b.APIKeyData.AccessToken
}

// BlogIdentity is the creation schema: it must not carry behavioural fields.
type BlogIdentity struct {
	Alias          string       `json:"alias" validate:"required"`
	PlatformType   PlatformType `json:"platform_type" validate:"required,oneof=Naver Blogger Tistory InBlog WordPress"`
	BlogURL        string       `json:"blog_url" validate:"required,url"`
	BlogID         string       `json:"blog_id" validate:"required"`
	APIAccessToken string       `json:"api_access_token,omitempty"`
}

// BlogSettings are the behavioural fields sent through the update schema.
type BlogSettings struct {
	InterestTopic   string    `json:"interest_topic"`
	Persona         string    `json:"persona"`
	DefaultCategory string    `json:"default_category,omitempty"`
	CustomPrompt    string    `json:"custom_prompt,omitempty"`
	WordRange       WordRange `json:"word_range"`
	ImageCount      int       `json:"image_count" validate:"gte=1"`
}

// BlogUpdate is the merged identity + settings body for an existing blog.
type BlogUpdate struct {
	BlogIdentity
	BlogSettings
}

// DraftMode tells whether the edit buffer targets a new or an existing blog.
type DraftMode string

const (
	DraftModeCreate DraftMode = "create"
	DraftModeEdit   DraftMode = "edit"
)

// BlogDraft is the locally edited configuration buffer.
type BlogDraft struct {
	Mode     DraftMode    `json:"mode"`
	BlogID   int64        `json:"blog_id,omitempty"`
	Identity BlogIdentity `json:"identity"`
	Settings BlogSettings `json:"settings"`
}

// NewBlogDraft returns a create-mode buffer populated with defaults.
func NewBlogDraft() BlogDraft {
	return BlogDraft{
		Mode: DraftModeCreate,
		Identity: BlogIdentity{
			PlatformType: DefaultPlatform,
		},
		Settings: BlogSettings{
			InterestTopic: DefaultInterestTopic,
			Persona:       DefaultPersona,
			WordRange:     DefaultWordRange(),
			ImageCount:    DefaultImageCount,
		},
	}
}

// DraftFromBlog populates an edit-mode buffer from a server-confirmed blog.
func DraftFromBlog(b *Blog) BlogDraft {
	draft := NewBlogDraft()
	draft.Mode = DraftModeEdit
	draft.BlogID = b.ID
	draft.Identity = BlogIdentity{
		Alias:          b.Alias,
		PlatformType:   b.PlatformType,
		BlogURL:        b.BlogURL,
		BlogID:         b.BlogID,
		APIAccessToken: b.AccessToken(),
	}
	if draft.Identity.PlatformType == "" {
		draft.Identity.PlatformType = DefaultPlatform
	}

	if b.InterestTopic != nil {
		draft.Settings.InterestTopic = *b.InterestTopic
	}
	if b.Persona != nil {
		draft.Settings.Persona = *b.Persona
	}
	if b.DefaultCategory != nil {
		draft.Settings.DefaultCategory = *b.DefaultCategory
	}
	if b.CustomPrompt != nil {
		draft.Settings.CustomPrompt = *b.CustomPrompt
	}
	if b.WordRange != nil {
		draft.Settings.WordRange = *b.WordRange
	}
	if b.ImageCount != nil {
		draft.Settings.ImageCount = *b.ImageCount
	}

	return draft
}

// DraftPatch is a partial edit; nil fields are left untouched.
type DraftPatch struct {
	Alias           *string       `json:"alias,omitempty"`
	PlatformType    *PlatformType `json:"platform_type,omitempty"`
	BlogURL         *string       `json:"blog_url,omitempty"`
	BlogID          *string       `json:"blog_id,omitempty"`
	APIAccessToken  *string       `json:"api_access_token,omitempty"`
	InterestTopic   *string       `json:"interest_topic,omitempty"`
	Persona         *string       `json:"persona,omitempty"`
	DefaultCategory *string       `json:"default_category,omitempty"`
	CustomPrompt    *string       `json:"custom_prompt,omitempty"`
	WordMin         *int          `json:"word_min,omitempty"`
	WordMax         *int          `json:"word_max,omitempty"`
	ImageCount      *int          `json:"image_count,omitempty"`
}

// Apply merges the patch into the draft. Word range edits are clamped.
func (p DraftPatch) Apply(d *BlogDraft) {
	setString(&d.Identity.Alias, p.Alias)
	setString(&d.Identity.BlogURL, p.BlogURL)
	setString(&d.Identity.BlogID, p.BlogID)
	setString(&d.Identity.APIAccessToken, p.APIAccessToken)
	setString(&d.Settings.InterestTopic, p.InterestTopic)
	setString(&d.Settings.Persona, p.Persona)
	setString(&d.Settings.DefaultCategory, p.DefaultCategory)
	setString(&d.Settings.CustomPrompt, p.CustomPrompt)

	if p.PlatformType != nil {
		d.Identity.PlatformType = *p.PlatformType
	}
	switch {
	case p.WordMin != nil && p.WordMax != nil:
		// Both bounds at once: the new max wins and min is clamped to it.
		d.Settings.WordRange = WordRange{Min: *p.WordMin, Max: *p.WordMax}.WithMin(*p.WordMin)
	case p.WordMin != nil:
		d.Settings.WordRange = d.Settings.WordRange.WithMin(*p.WordMin)
	case p.WordMax != nil:
		d.Settings.WordRange = d.Settings.WordRange.WithMax(*p.WordMax)
	}
	if p.ImageCount != nil {
		d.Settings.ImageCount = *p.ImageCount
	}
}

func setString(dst *string, src *string) {
	if src != nil {
		*dst = *src
	}
}

// BlogAnalysisRequest addresses either a saved blog or an unsaved URL.
type BlogAnalysisRequest struct {
	BlogID  int64  `json:"blog_id,omitempty"`
	BlogURL string `json:"blog_url,omitempty"`
	Alias   string `json:"alias,omitempty"`
}

// BlogAnalysis is the backend's suggestion for category and prompt.
type BlogAnalysis struct {
	Category string `json:"category"`
	Prompt   string `json:"prompt"`
}
