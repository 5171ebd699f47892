package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// AdminUsecase covers operator administration.
type AdminUsecase interface {
	// Dashboard fetches stats, policy and pending payments concurrently.
	// Each failed section is reported in Errors and left empty; a rejected
	// session is returned as the error instead.
	Dashboard(ctx context.Context) (entity.AdminDashboard, error)
	UpdatePolicy(ctx context.Context, policy entity.SystemPolicy) error
	GrantCredits(ctx context.Context, grant entity.ManualGrant) error

	// DecidePayment confirms or rejects a payment, then refreshes the credit
	// display and the dashboard.
	DecidePayment(ctx context.Context, decision entity.PaymentDecision) (entity.AdminDashboard, error)
}
