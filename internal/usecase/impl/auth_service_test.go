package impl

import (
	"context"
	"net/http"
	"testing"

	"blogpilot/internal/domain/entity"
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"
	mockService "blogpilot/internal/mocks/service"
	mockUsecase "blogpilot/internal/mocks/usecase"
	"blogpilot/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthService(t *testing.T) (usecase.AuthUsecase, *mockService.MockBackendAPI, *mockUsecase.MockSessionUsecase) {
	t.Helper()

	api := mockService.NewMockBackendAPI(t)
	session := mockUsecase.NewMockSessionUsecase(t)

	return NewAuthService(AuthServiceParams{API: api, Session: session, Logger: newDiscardLogger()}), api, session
}

func TestAuthService_Login_EmailBecomesDisplayName(t *testing.T) {
	srv, api, session := newAuthService(t)
	ctx := context.Background()

	api.EXPECT().
		Login(ctx, entity.Credentials{Email: "a@b.com", Password: "pw"}).
		Return(&entity.TokenResponse{AccessToken: "tok"}, nil)
	session.EXPECT().Login(ctx, "tok", "a@b.com").Return(entity.Session{Token: "tok", DisplayName: "a"}, nil)

	got, err := srv.Login(ctx, &usecase.LoginInput{Email: " a@b.com ", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "a", got.DisplayName)
}

func TestAuthService_Login_ExplicitName(t *testing.T) {
	srv, api, session := newAuthService(t)
	ctx := context.Background()

	api.EXPECT().Login(ctx, mock.Anything).Return(&entity.TokenResponse{AccessToken: "tok"}, nil)
	session.EXPECT().Login(ctx, "tok", "Kim").Return(entity.Session{Token: "tok", DisplayName: "Kim"}, nil)

	_, err := srv.Login(ctx, &usecase.LoginInput{Email: "a@b.com", Password: "pw", Name: "Kim"})

	require.NoError(t, err)
}

func TestAuthService_Login_Errors(t *testing.T) {
	t.Run("invalid email never reaches the backend", func(t *testing.T) {
		srv, _, _ := newAuthService(t)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "nope", Password: "pw"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("rejected credentials", func(t *testing.T) {
		srv, api, _ := newAuthService(t)
		apiErr := domainerrors.NewAPIError(domainerrors.KindUnauthorized, "POST /auth/login", http.StatusUnauthorized, "Incorrect email or password", nil)
		api.EXPECT().Login(mock.Anything, mock.Anything).Return(nil, apiErr)

		_, err := srv.Login(context.Background(), &usecase.LoginInput{Email: "a@b.com", Password: "bad"})

		require.Error(t, err)
		assert.True(t, domainerrors.IsUnauthorized(err))
	})
}

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()

	t.Run("terms must be accepted first", func(t *testing.T) {
		srv, _, _ := newAuthService(t)

		err := srv.Signup(ctx, &entity.SignupInput{Email: "a@b.com", Password: "password1", Name: "Kim"})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrTermsNotAccepted))
	})

	t.Run("name is required", func(t *testing.T) {
		srv, _, _ := newAuthService(t)

		err := srv.Signup(ctx, &entity.SignupInput{Email: "a@b.com", Password: "password1", Name: "  ", Agreed: true})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))
	})

	t.Run("success", func(t *testing.T) {
		srv, api, _ := newAuthService(t)
		api.EXPECT().
			Signup(ctx, mock.MatchedBy(func(in entity.SignupInput) bool {
				return in.Email == "a@b.com" && in.Name == "Kim"
			})).
			Return(nil)

		err := srv.Signup(ctx, &entity.SignupInput{Email: "a@b.com ", Password: "password1", Name: " Kim", Agreed: true})

		require.NoError(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	srv, _, session := newAuthService(t)
	ctx := context.Background()
	session.EXPECT().Logout(ctx).Return(nil)

	require.NoError(t, srv.Logout(ctx))
}
