package backend

import (
	"context"
	"net/http"

	"blogpilot/internal/domain/entity"
)

// CreditStatus reads the ledger, falling back to the degraded zero balance
// on any failure.
func (c *Client) CreditStatus(ctx context.Context) entity.CreditStatus {
	r := &request{method: http.MethodGet, path: "/credits/status"}

	var out entity.CreditStatus
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		c.fallback(c.endpoint(r), err)

		return entity.FallbackCreditStatus()
	}
	out.Degraded = false
	if out.Currency == "" {
		out.Currency = entity.DefaultCurrencyCode
	}

	return out
}

// RechargeHistory returns the operator's payment claims.
func (c *Client) RechargeHistory(ctx context.Context) ([]entity.RechargeRequest, error) {
	var out []entity.RechargeRequest
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/credits/recharge/history", out: &out}); err != nil {
		return nil, err
	}

	return out, nil
}

// RequestRecharge records an off-band payment claim.
func (c *Client) RequestRecharge(ctx context.Context, input entity.RechargeInput) (*entity.RechargeRequest, error) {
	r := &request{method: http.MethodPost, path: "/credits/recharge/request", body: input}
	if err := c.validateInput(c.endpoint(r), input); err != nil {
		return nil, err
	}

	var out entity.RechargeRequest
	r.out = &out
	if err := c.do(ctx, r); err != nil {
		return nil, err
	}

	return &out, nil
}
