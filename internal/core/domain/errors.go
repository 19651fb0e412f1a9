package domain

import (
	"errors"
	"strings"
)

var (
	ErrValidation         = errors.New("validation failed")
	ErrWeakPassword       = errors.New("password does not meet complexity policy")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
	ErrEmailImmutable     = errors.New("email cannot be changed")
	ErrUnknownEmail       = errors.New("email not registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("unauthenticated")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrProductNotFound    = errors.New("product not found")
	ErrProductExists      = errors.New("product already exists")
)

// FieldViolation describes a single rule a field failed.
type FieldViolation struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError carries every violation found for an input.
// It matches ErrValidation under errors.Is.
type ValidationError struct {
	Violations []FieldViolation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		msgs = append(msgs, v.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
