package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "blogpilot/internal/delivery/context"
	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/domain/service"
	"blogpilot/internal/errors"
	"blogpilot/internal/usecase"

	"github.com/go-playground/validator/v10"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	api      service.AuthAPI
	session  usecase.SessionUsecase
	validate *validator.Validate
	logger   *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	API     service.BackendAPI
	Session usecase.SessionUsecase
	Logger  *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		api:      params.API,
		session:  params.Session,
		validate: newValidator(),
		logger:   params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login exchanges credentials for a token and stores the session. A blank
// name falls back to the email.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (entity.Session, error) {
	creds := entity.Credentials{
		Email:    strings.TrimSpace(input.Email),
		Password: input.Password,
	}
	if err := srv.validate.Struct(creds); err != nil {
		return entity.Session{}, validationError(err)
	}

	resp, err := srv.api.Login(ctx, creds)
	if err != nil {
		return entity.Session{}, err
	}

	name := input.Name
	if strings.TrimSpace(name) == "" {
		name = creds.Email
	}

	return srv.session.Login(ctx, resp.AccessToken, name)
}

// Signup registers an account. Terms agreement and name are checked first.
func (srv *authService) Signup(ctx context.Context, input *entity.SignupInput) error {
	if !input.Agreed {
		return errors.WithStack(domainerrors.ErrTermsNotAccepted)
	}

	payload := *input
	payload.Email = strings.TrimSpace(payload.Email)
	payload.Name = strings.TrimSpace(payload.Name)
	payload.ReferralCode = strings.TrimSpace(payload.ReferralCode)
	if err := srv.validate.Struct(payload); err != nil {
		return validationError(err)
	}

	if err := srv.api.Signup(ctx, payload); err != nil {
		return err
	}

	srv.log(ctx).Info("Account registered", slog.String("email", payload.Email))

	return nil
}

// Logout drops the session.
func (srv *authService) Logout(ctx context.Context) error {
	return srv.session.Logout(ctx)
}
