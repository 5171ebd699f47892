package entity

import "time"

// Credit pricing used for client-side estimates.
const (
	CreditsPerImage     = 2
	WordsPerTextCredit  = 1000
	DefaultCurrencyCode = "KRW"
)

// CreditStatus is a read-only projection of the server ledger.
// Degraded marks the fallback value returned when the ledger was unreachable.
type CreditStatus struct {
	CurrentCredit     int    `json:"current_credit" validate:"gte=0"`
	UpcomingDeduction int    `json:"upcoming_deduction" validate:"gte=0"`
	Currency          string `json:"currency,omitempty"`
	Degraded          bool   `json:"degraded"`
}

// FallbackCreditStatus is shown when the ledger cannot be read.
func FallbackCreditStatus() CreditStatus {
	return CreditStatus{Currency: DefaultCurrencyCode, Degraded: true}
}

// EstimateCredits mirrors the backend charge: two credits per image plus one
// per thousand words of the range ceiling.
func EstimateCredits(imageCount int, wordRange WordRange) int {
	return imageCount*CreditsPerImage + wordRange.Max/WordsPerTextCredit
}

// RechargeStatus is the lifecycle of an off-band payment claim.
type RechargeStatus string

const (
	RechargePending   RechargeStatus = "PENDING"
	RechargeCompleted RechargeStatus = "COMPLETED"
	RechargeRejected  RechargeStatus = "REJECTED"
)

// RechargeInput is what the user submits.
type RechargeInput struct {
	Amount           int    `json:"amount" validate:"gt=0"`
	RequestedCredits int    `json:"requested_credits" validate:"gt=0"`
	DepositorName    string `json:"depositor_name" validate:"required"`
}

// RechargeRequest is a recorded payment claim.
type RechargeRequest struct {
	ID               int64          `json:"id"`
	Amount           int            `json:"amount"`
	RequestedCredits int            `json:"requested_credits"`
	DepositorName    string         `json:"depositor_name"`
	Status           RechargeStatus `json:"status" validate:"omitempty,oneof=PENDING COMPLETED REJECTED"`
	CreatedAt        time.Time      `json:"created_at"`
}
