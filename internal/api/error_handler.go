package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/pkg/password"
)

// errorResponse is the canonical error envelope for all API errors.
type errorResponse struct {
	Msg    string                  `json:"msg"`
	Errors []domain.FieldViolation `json:"errors,omitempty"`
}

// NewHTTPErrorHandler returns an echo.HTTPErrorHandler that:
//   - Maps known domain errors to their HTTP status codes.
//   - Logs unexpected errors without leaking details to the client.
//   - Renders a consistent JSON envelope: {"msg": "<message>"}.
func NewHTTPErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code, body := resolveError(err, log, c)
		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, body)
	}
}

func resolveError(err error, log zerolog.Logger, c echo.Context) (int, errorResponse) {
	// Echo's own errors (bind failures, unknown routes, guard rejections).
	var he *echo.HTTPError
	if errors.As(err, &he) {
		return he.Code, errorResponse{Msg: fmt.Sprintf("%v", he.Message)}
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		return http.StatusBadRequest, errorResponse{Msg: ve.Error(), Errors: ve.Violations}
	}

	switch {
	case errors.Is(err, domain.ErrWeakPassword):
		return http.StatusBadRequest, errorResponse{Msg: password.PolicyMessage}
	case errors.Is(err, domain.ErrPasswordTooLong):
		return http.StatusBadRequest, errorResponse{Msg: password.TooLongMessage}
	case errors.Is(err, domain.ErrEmailImmutable):
		return http.StatusBadRequest, errorResponse{Msg: "You cannot change your email"}
	case errors.Is(err, domain.ErrUnknownEmail):
		return http.StatusBadRequest, errorResponse{Msg: "This email is not yet registered in our website;"}
	case errors.Is(err, domain.ErrInvalidCredentials):
		return http.StatusUnauthorized, errorResponse{Msg: "Wrong password or email"}
	case errors.Is(err, domain.ErrUnauthenticated):
		return http.StatusUnauthorized, errorResponse{Msg: "invalid token"}
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden, errorResponse{Msg: "access forbidden"}
	case errors.Is(err, domain.ErrUserNotFound):
		return http.StatusNotFound, errorResponse{Msg: "User not found."}
	case errors.Is(err, domain.ErrUserExists):
		return http.StatusConflict, errorResponse{Msg: "This email is already registered"}
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound, errorResponse{Msg: "product not found"}
	case errors.Is(err, domain.ErrProductExists):
		return http.StatusConflict, errorResponse{Msg: "a product with this album name or description already exists"}
	}

	// Unexpected error: log the real cause, return a generic message.
	log.Error().
		Err(err).
		Str("method", c.Request().Method).
		Str("path", c.Path()).
		Msg("unhandled error")

	return http.StatusInternalServerError, errorResponse{Msg: "internal server error"}
}
