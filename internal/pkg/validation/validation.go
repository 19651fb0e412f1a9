// Package validation turns struct rules into a typed result of field-level
// violations. Services call Check before an entity is built or persisted.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/pkg/password"
)

var (
	once sync.Once
	v    *validator.Validate
)

// Result is the outcome of Check. The zero value means success.
type Result struct {
	Violations []domain.FieldViolation
}

// OK reports whether no rule was violated.
func (r Result) OK() bool {
	return len(r.Violations) == 0
}

// Err returns nil on success, or a *domain.ValidationError otherwise.
func (r Result) Err() error {
	if r.OK() {
		return nil
	}
	return &domain.ValidationError{Violations: r.Violations}
}

// Engine returns the shared validator with the custom rules registered.
func Engine() *validator.Validate {
	once.Do(func() {
		v = validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = v.RegisterValidation("password", func(fl validator.FieldLevel) bool {
			return password.Satisfies(fl.Field().String())
		})
		_ = v.RegisterValidation("genres", func(fl validator.FieldLevel) bool {
			return fl.Field().Kind() == reflect.Slice && fl.Field().Len() <= domain.MaxGenres
		})
	})
	return v
}

// Check validates s against its `validate` tags.
func Check(s any) Result {
	err := Engine().Struct(s)
	if err == nil {
		return Result{}
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return Result{Violations: []domain.FieldViolation{{Field: "", Rule: "invalid", Message: err.Error()}}}
	}

	out := make([]domain.FieldViolation, 0, len(ve))
	for _, fe := range ve {
		out = append(out, domain.FieldViolation{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: message(fe),
		})
	}
	return Result{Violations: out}
}

func jsonName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "email":
		return field + " must be a valid email"
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	case "genres":
		return fmt.Sprintf("%d genres only allowed.", domain.MaxGenres)
	case "password":
		if tooLong(fe.Value()) {
			return password.TooLongMessage
		}
		return password.PolicyMessage
	default:
		return fmt.Sprintf("%s failed validation (%s)", field, fe.Tag())
	}
}

func tooLong(v any) bool {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return false
		}
		rv = rv.Elem()
	}
	return rv.Kind() == reflect.String && len(rv.String()) > password.MaxBytes
}
