package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	api      service.AdminAPI
	credits  usecase.CreditUsecase
	validate *validator.Validate
	logger   *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	API     service.BackendAPI
	Credits usecase.CreditUsecase
	Logger  *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		api:      params.API,
		credits:  params.Credits,
		validate: newValidator(),
		logger:   params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Dashboard fetches the three admin views concurrently. Sections are written
// to distinct fields, so arrival order does not matter.
func (srv *adminService) Dashboard(ctx context.Context) (entity.AdminDashboard, error) {
	var (
		dash                            entity.AdminDashboard
		statsErr, policyErr, pendingErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		dash.Stats, statsErr = srv.api.AdminStats(ctx)

		return nil
	})
	g.Go(func() error {
		dash.Policy, policyErr = srv.api.GetPolicy(ctx)

		return nil
	})
	g.Go(func() error {
		dash.Pending, pendingErr = srv.api.PendingPayments(ctx)

		return nil
	})
	_ = g.Wait()

	if err := firstUnauthorized(statsErr, policyErr, pendingErr); err != nil {
		return entity.AdminDashboard{}, err
	}

	for _, section := range []struct {
		name string
		err  error
	}{
		{"stats", statsErr},
		{"policy", policyErr},
		{"pending_payments", pendingErr},
	} {
		if section.err != nil {
			dash.Errors = append(dash.Errors, section.name+": "+section.err.Error())
			srv.log(ctx).Warn("Admin dashboard section failed", slog.String("section", section.name), slog.Any("error", section.err))
		}
	}
	if dash.Pending == nil {
		dash.Pending = []entity.PendingPayment{}
	}

	return dash, nil
}

// UpdatePolicy replaces the system policy.
func (srv *adminService) UpdatePolicy(ctx context.Context, policy entity.SystemPolicy) error {
	if err := srv.validate.Struct(policy); err != nil {
		return validationError(err)
	}

	if err := srv.api.UpdatePolicy(ctx, policy); err != nil {
		return err
	}
	srv.log(ctx).Info("System policy updated")

	return nil
}

// GrantCredits credits a user directly.
func (srv *adminService) GrantCredits(ctx context.Context, grant entity.ManualGrant) error {
	grant.UserEmail = strings.TrimSpace(grant.UserEmail)
	grant.Reason = strings.TrimSpace(grant.Reason)
	if err := srv.validate.Struct(grant); err != nil {
		return validationError(err)
	}

	if err := srv.api.GrantCredits(ctx, grant); err != nil {
		return err
	}
	srv.log(ctx).Info("Credits granted", slog.String("user_email", grant.UserEmail), slog.Int("amount", grant.Amount))

	return nil
}

// DecidePayment confirms or rejects a pending payment.
func (srv *adminService) DecidePayment(ctx context.Context, decision entity.PaymentDecision) (entity.AdminDashboard, error) {
	if err := srv.validate.Struct(decision); err != nil {
		return entity.AdminDashboard{}, validationError(err)
	}

	if err := srv.api.ConfirmPayment(ctx, decision); err != nil {
		return entity.AdminDashboard{}, err
	}
	srv.log(ctx).Info("Payment decided", slog.Int64("request_id", decision.RequestID), slog.Bool("approved", decision.Approve))

	srv.credits.Refresh(ctx)

	return srv.Dashboard(ctx)
}
