package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// CreditUsecase shows the ledger balance. The balance is only ever replaced
// by a fresh fetch.
type CreditUsecase interface {
	Refresh(ctx context.Context) entity.CreditStatus
	Current() entity.CreditStatus

	// History returns the recharge history and refreshes the balance.
	History(ctx context.Context) ([]entity.RechargeRequest, error)
	RequestRecharge(ctx context.Context, input entity.RechargeInput) (*entity.RechargeRequest, error)
	Estimate(imageCount int, wordRange entity.WordRange) int
}
