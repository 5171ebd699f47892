package entity

import "time"

// AdminStats summarises platform usage.
type AdminStats struct {
	TotalUsers       int `json:"total_users"`
	TotalBlogs       int `json:"total_blogs"`
	TotalPosts       int `json:"total_posts"`
	PublishedPosts   int `json:"published_posts"`
	TotalCreditsUsed int `json:"total_credits_used"`
	PendingDeposits  int `json:"pending_deposits"`
}

// SystemPolicy holds bonus and pricing settings.
type SystemPolicy struct {
	SignupBonus   int `json:"signup_bonus" validate:"gte=0"`
	ReferralBonus int `json:"referral_bonus" validate:"gte=0"`
	CostShort     int `json:"cost_short" validate:"gte=0"`
	CostMedium    int `json:"cost_medium" validate:"gte=0"`
	CostLong      int `json:"cost_long" validate:"gte=0"`
	CostImage     int `json:"cost_image" validate:"gte=0"`
}

// PendingPayment is a recharge request awaiting admin confirmation.
type PendingPayment struct {
	ID               int64     `json:"id"`
	UserEmail        string    `json:"user_email,omitempty"`
	Amount           int       `json:"amount"`
	RequestedCredits int       `json:"requested_credits"`
	DepositorName    string    `json:"depositor_name"`
	CreatedAt        time.Time `json:"created_at"`
}

// ManualGrant credits a user directly.
type ManualGrant struct {
	UserEmail string `json:"user_email" validate:"required,email"`
	Amount    int    `json:"amount" validate:"gt=0"`
	Reason    string `json:"reason"`
}

// PaymentDecision approves or rejects a pending payment.
type PaymentDecision struct {
	RequestID int64 `json:"request_id" validate:"required"`
	Approve   bool  `json:"approve"`
}

// AdminDashboard joins the independently fetched admin views.
// A nil section failed to load; Errors names which ones.
type AdminDashboard struct {
	Stats   *AdminStats      `json:"stats"`
	Policy  *SystemPolicy    `json:"policy"`
	Pending []PendingPayment `json:"pending"`
	Errors  []string         `json:"errors,omitempty"`
}

// UserDashboard joins the operator's landing views.
type UserDashboard struct {
	DisplayName string              `json:"display_name,omitempty"`
	Credit      CreditStatus        `json:"credit"`
	Keywords    []KeywordTrackerRow `json:"keywords"`
	Schedule    ScheduleConfig      `json:"schedule"`
	Blogs       []Blog              `json:"blogs"`
	Posts       []PostStatusGroup   `json:"posts"`
	Errors      []string            `json:"errors,omitempty"`
}
