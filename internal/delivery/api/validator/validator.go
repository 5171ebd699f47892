// Package validator adapts go-playground/validator to echo.
package validator

import (
	domainerrors "blogpilot/internal/domain/errors"
	"blogpilot/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with required-struct checks enabled.
func New() *CustomValidator {
	return &CustomValidator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// Validate checks i and reports failures as ErrValidationFailed.
func (v *CustomValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(err.Error()))
	}

	return nil
}
