package impl

import (
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"

	"github.com/go-playground/validator/v10"
)

func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// validationError maps a validator failure onto ErrValidationFailed.
func validationError(err error) error {
	return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(err.Error()), "validate input")
}
