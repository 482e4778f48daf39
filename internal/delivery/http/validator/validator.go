// Package validator adapts go-playground/validator to Echo's Validator interface.
package validator

import (
	domainerrors "taskhub/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// CustomValidator wraps a single validator instance; it is safe for
// concurrent use and caches struct metadata internally.
type CustomValidator struct {
	validate *playground.Validate
}

// New constructs the validator used by the Echo server.
func New() *CustomValidator {
	return &CustomValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate checks struct tags and converts failures into the application
// error taxonomy so the error middleware renders them as 422.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
