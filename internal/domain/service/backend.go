package service

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// TokenSource yields the bearer token at call time. An empty token means the
// Authorization header is omitted.
type TokenSource interface {
	Token() string
}

// AuthAPI covers login and registration.
type AuthAPI interface {
	Login(ctx context.Context, creds entity.Credentials) (*entity.TokenResponse, error)
	Signup(ctx context.Context, input entity.SignupInput) error
}

// BlogAPI covers the blog entity endpoints.
type BlogAPI interface {
	ListBlogs(ctx context.Context) ([]entity.Blog, error)

	// CreateBlog accepts identity fields only. Repeated calls create duplicates.
	CreateBlog(ctx context.Context, identity entity.BlogIdentity) (*entity.Blog, error)
	UpdateBlogSettings(ctx context.Context, id int64, settings entity.BlogSettings) (*entity.Blog, error)
	UpdateBlog(ctx context.Context, id int64, update entity.BlogUpdate) (*entity.Blog, error)
	DeleteBlog(ctx context.Context, id int64) error
	AnalyzeBlog(ctx context.Context, req entity.BlogAnalysisRequest) (*entity.BlogAnalysis, error)
}

// ScheduleAPI covers the posting schedule.
type ScheduleAPI interface {
	// GetSchedule returns nil when nothing is saved or the read failed.
	GetSchedule(ctx context.Context) *entity.ScheduleConfig
	SaveSchedule(ctx context.Context, cfg entity.ScheduleConfig) error
}

// PostAPI covers generation and post lifecycle endpoints.
type PostAPI interface {
	PostStatuses(ctx context.Context) ([]entity.PostStatusGroup, error)
	Preview(ctx context.Context, req entity.GenerationRequest) (*entity.GenerationResult, error)
	Publish(ctx context.Context, postID int64) (*entity.PublishResult, error)
	Track(ctx context.Context, postID int64) (entity.TrackResult, error)
	Download(ctx context.Context, postID int64, kind entity.DownloadKind) (*entity.Artifact, error)

	// KeywordTracking never fails; an unreachable backend yields an empty table.
	KeywordTracking(ctx context.Context) []entity.KeywordTrackerRow
}

// CreditAPI covers the credit ledger.
type CreditAPI interface {
	// CreditStatus never fails; an unreachable ledger yields the degraded fallback.
	CreditStatus(ctx context.Context) entity.CreditStatus
	RechargeHistory(ctx context.Context) ([]entity.RechargeRequest, error)
	RequestRecharge(ctx context.Context, input entity.RechargeInput) (*entity.RechargeRequest, error)
}

// AdminAPI covers operator administration.
type AdminAPI interface {
	AdminStats(ctx context.Context) (*entity.AdminStats, error)
	GetPolicy(ctx context.Context) (*entity.SystemPolicy, error)
	UpdatePolicy(ctx context.Context, policy entity.SystemPolicy) error
	PendingPayments(ctx context.Context) ([]entity.PendingPayment, error)
	GrantCredits(ctx context.Context, grant entity.ManualGrant) error
	ConfirmPayment(ctx context.Context, decision entity.PaymentDecision) error
}

// KeywordAPI covers keyword research.
type KeywordAPI interface {
	SearchKeywords(ctx context.Context, seed string) ([]entity.KeywordSuggestion, error)
}

// BackendAPI is the full REST surface.
type BackendAPI interface {
	AuthAPI
	BlogAPI
	ScheduleAPI
	PostAPI
	CreditAPI
	AdminAPI
	KeywordAPI
}
