package usecase

import (
	"context"

	"blogpilot/internal/domain/entity"
)

// LoginInput defines the data required for an operator to log in.
// Name is optional; the email is used for the display name when it is blank.
type LoginInput struct {
	Email    string
	Password string
	Name     string
}

// AuthUsecase defines the account operations.
type AuthUsecase interface {
	Login(ctx context.Context, input *LoginInput) (entity.Session, error)
	Signup(ctx context.Context, input *entity.SignupInput) error
	Logout(ctx context.Context) error
}
