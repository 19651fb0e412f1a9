package handler

import (
	"github.com/vinylshop/record-store/internal/pkg/validation"
)

// echoValidator adapts the validation package so Echo can call c.Validate(req).
type echoValidator struct{}

// NewValidator returns an echoValidator ready to be assigned to echo.Echo.Validator.
func NewValidator() *echoValidator {
	return &echoValidator{}
}

// Validate satisfies the echo.Validator interface. Failures are returned as
// *domain.ValidationError so the error handler can list every violation.
func (ev *echoValidator) Validate(i any) error {
	return validation.Check(i).Err()
}
