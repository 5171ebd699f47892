package impl

import (
	"context"
	"testing"

	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"
	mockService "blogpilot/internal/mocks/service"
	mockUsecase "blogpilot/internal/mocks/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAdminService_Dashboard(t *testing.T) {
	ctx := context.Background()
	stats := &entity.AdminStats{TotalUsers: 10, TotalPosts: 40}
	policy := &entity.SystemPolicy{SignupBonus: 50, CostImage: 2}
	pending := []entity.PendingPayment{{ID: 1, Amount: 10000, RequestedCredits: 100, DepositorName: "Kim"}}

	t.Run("all sections", func(t *testing.T) {
		api := mockService.NewMockBackendAPI(t)
		srv := NewAdminService(AdminServiceParams{API: api, Logger: newDiscardLogger()})

		api.EXPECT().AdminStats(ctx).Return(stats, nil)
		api.EXPECT().GetPolicy(ctx).Return(policy, nil)
		api.EXPECT().PendingPayments(ctx).Return(pending, nil)

		dash, err := srv.Dashboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, stats, dash.Stats)
		assert.Equal(t, policy, dash.Policy)
		assert.Equal(t, pending, dash.Pending)
		assert.Empty(t, dash.Errors)
	})

	t.Run("failed section is isolated", func(t *testing.T) {
		api := mockService.NewMockBackendAPI(t)
		srv := NewAdminService(AdminServiceParams{API: api, Logger: newDiscardLogger()})

		api.EXPECT().AdminStats(ctx).Return(stats, nil)
		api.EXPECT().GetPolicy(ctx).Return(nil, errUnavailable)
		api.EXPECT().PendingPayments(ctx).Return(nil, errUnavailable)

		dash, err := srv.Dashboard(ctx)

		require.NoError(t, err)
		assert.Equal(t, stats, dash.Stats)
		assert.Nil(t, dash.Policy)
		assert.NotNil(t, dash.Pending)
		assert.Empty(t, dash.Pending)
		require.Len(t, dash.Errors, 2)
		assert.Contains(t, dash.Errors[0], "policy")
		assert.Contains(t, dash.Errors[1], "pending_payments")
	})

	t.Run("rejected session is returned", func(t *testing.T) {
		api := mockService.NewMockBackendAPI(t)
		srv := NewAdminService(AdminServiceParams{API: api, Logger: newDiscardLogger()})

		api.EXPECT().AdminStats(ctx).Return(nil, errRejected)
		api.EXPECT().GetPolicy(ctx).Return(policy, nil)
		api.EXPECT().PendingPayments(ctx).Return(nil, errUnavailable)

		_, err := srv.Dashboard(ctx)

		assert.True(t, domainerrors.IsUnauthorized(err))
	})
}

func TestAdminService_UpdatePolicy(t *testing.T) {
	ctx := context.Background()
	api := mockService.NewMockBackendAPI(t)
	srv := NewAdminService(AdminServiceParams{API: api, Logger: newDiscardLogger()})

	err := srv.UpdatePolicy(ctx, entity.SystemPolicy{CostShort: -1})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	policy := entity.SystemPolicy{SignupBonus: 100, CostShort: 1, CostMedium: 2, CostLong: 3, CostImage: 2}
	api.EXPECT().UpdatePolicy(ctx, policy).Return(nil)

	require.NoError(t, srv.UpdatePolicy(ctx, policy))
}

func TestAdminService_GrantCredits(t *testing.T) {
	ctx := context.Background()
	api := mockService.NewMockBackendAPI(t)
	srv := NewAdminService(AdminServiceParams{API: api, Logger: newDiscardLogger()})

	err := srv.GrantCredits(ctx, entity.ManualGrant{UserEmail: "not-an-email", Amount: 10})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	api.EXPECT().
		GrantCredits(ctx, entity.ManualGrant{UserEmail: "a@b.com", Amount: 10, Reason: "event"}).
		Return(nil)

	require.NoError(t, srv.GrantCredits(ctx, entity.ManualGrant{UserEmail: " a@b.com", Amount: 10, Reason: "event "}))
}

func TestAdminService_DecidePaymentRefreshes(t *testing.T) {
	ctx := context.Background()
	api := mockService.NewMockBackendAPI(t)
	credits := mockUsecase.NewMockCreditUsecase(t)
	srv := NewAdminService(AdminServiceParams{API: api, Credits: credits, Logger: newDiscardLogger()})
	decision := entity.PaymentDecision{RequestID: 4, Approve: true}

	api.EXPECT().ConfirmPayment(ctx, decision).Return(nil)
	credits.EXPECT().Refresh(ctx).Return(entity.CreditStatus{CurrentCredit: 100})
	api.EXPECT().AdminStats(ctx).Return(&entity.AdminStats{}, nil)
	api.EXPECT().GetPolicy(ctx).Return(&entity.SystemPolicy{}, nil)
	api.EXPECT().PendingPayments(ctx).Return([]entity.PendingPayment{}, nil)

	dash, err := srv.DecidePayment(ctx, decision)

	require.NoError(t, err)
	assert.Empty(t, dash.Pending)
}

func TestAdminService_DecidePaymentFailureSkipsRefresh(t *testing.T) {
	ctx := context.Background()
	api := mockService.NewMockBackendAPI(t)
	credits := mockUsecase.NewMockCreditUsecase(t)
	srv := NewAdminService(AdminServiceParams{API: api, Credits: credits, Logger: newDiscardLogger()})

	api.EXPECT().ConfirmPayment(ctx, mock.Anything).Return(errUnavailable)

	_, err := srv.DecidePayment(ctx, entity.PaymentDecision{RequestID: 4})

	assert.Equal(t, errUnavailable, err)
}
