package backend

import (
	"context"
	"net/http"

	"blogpilot/internal/domain/entity"
)

// AdminStats returns platform usage totals.
func (c *Client) AdminStats(ctx context.Context) (*entity.AdminStats, error) {
	var out entity.AdminStats
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/admin/stats", out: &out}); err != nil {
		return nil, err
	}

	return &out, nil
}

// GetPolicy returns bonus and pricing settings.
func (c *Client) GetPolicy(ctx context.Context) (*entity.SystemPolicy, error) {
	var out entity.SystemPolicy
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/admin/policy", out: &out}); err != nil {
		return nil, err
	}

	return &out, nil
}

// UpdatePolicy replaces bonus and pricing settings.
func (c *Client) UpdatePolicy(ctx context.Context, policy entity.SystemPolicy) error {
	r := &request{method: http.MethodPut, path: "/admin/policy", body: policy}
	if err := c.validateInput(c.endpoint(r), policy); err != nil {
		return err
	}

	return c.do(ctx, r)
}

// PendingPayments lists recharge requests awaiting confirmation.
func (c *Client) PendingPayments(ctx context.Context) ([]entity.PendingPayment, error) {
	var out []entity.PendingPayment
	if err := c.do(ctx, &request{method: http.MethodGet, path: "/admin/credits/pending-payments", out: &out}); err != nil {
		return nil, err
	}

	return out, nil
}

// GrantCredits credits a user directly.
func (c *Client) GrantCredits(ctx context.Context, grant entity.ManualGrant) error {
	r := &request{method: http.MethodPost, path: "/admin/credits/manual-grant", body: grant}
	if err := c.validateInput(c.endpoint(r), grant); err != nil {
		return err
	}

	return c.do(ctx, r)
}

// ConfirmPayment approves or rejects a pending recharge request.
func (c *Client) ConfirmPayment(ctx context.Context, decision entity.PaymentDecision) error {
	r := &request{method: http.MethodPost, path: "/admin/credits/confirm-payment", body: decision}
	if err := c.validateInput(c.endpoint(r), decision); err != nil {
		return err
	}

	return c.do(ctx, r)
}
