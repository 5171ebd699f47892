package impl

import (
	"context"
	"log/slog"
	"strings"
	"sync"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// creditService implements the CreditUsecase interface.
type creditService struct {
	api      service.CreditAPI
	validate *validator.Validate
	logger   *slog.Logger

	mu      sync.RWMutex
	current entity.CreditStatus
	loaded  bool
}

// CreditServiceParams holds dependencies for CreditService, injected by Fx.
type CreditServiceParams struct {
	fx.In

	API    service.BackendAPI
	Logger *slog.Logger
}

// NewCreditService is the constructor for creditService.
func NewCreditService(params CreditServiceParams) usecase.CreditUsecase {
	return &creditService{
		api:      params.API,
		validate: newValidator(),
		logger:   params.Logger,
	}
}

func (srv *creditService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Refresh replaces the displayed balance with a fresh read.
func (srv *creditService) Refresh(ctx context.Context) entity.CreditStatus {
	status := srv.api.CreditStatus(ctx)

	srv.mu.Lock()
	srv.current = status
	srv.loaded = true
	srv.mu.Unlock()

	srv.log(ctx).Debug("Credit status refreshed",
		slog.Int("current_credit", status.CurrentCredit),
		slog.Bool("degraded", status.Degraded),
	)

	return status
}

// Current returns the last fetched balance, or the fallback before the first fetch.
func (srv *creditService) Current() entity.CreditStatus {
	srv.mu.RLock()
	defer srv.mu.RUnlock()

	if !srv.loaded {
		return entity.FallbackCreditStatus()
	}

	return srv.current
}

// History fetches the full recharge history and refreshes the balance.
func (srv *creditService) History(ctx context.Context) ([]entity.RechargeRequest, error) {
	history, err := srv.api.RechargeHistory(ctx)
	srv.Refresh(ctx)
	if err != nil {
		return nil, err
	}

	return history, nil
}

// RequestRecharge submits a payment claim after validating it locally.
func (srv *creditService) RequestRecharge(ctx context.Context, input entity.RechargeInput) (*entity.RechargeRequest, error) {
	input.DepositorName = strings.TrimSpace(input.DepositorName)
	if err := srv.validate.Struct(input); err != nil {
		return nil, validationError(err)
	}

	req, err := srv.api.RequestRecharge(ctx, input)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("Recharge requested",
		slog.Int("amount", input.Amount),
		slog.Int("requested_credits", input.RequestedCredits),
	)

	return req, nil
}

// Estimate returns the credits a generation with these settings will cost.
func (srv *creditService) Estimate(imageCount int, wordRange entity.WordRange) int {
	return entity.EstimateCredits(imageCount, wordRange)
}
