package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vinylshop/record-store/internal/api/metrics"
	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
)

// UserHandler handles account endpoints.
type UserHandler struct {
	users ports.UserService
	log   zerolog.Logger
}

func NewUserHandler(users ports.UserService, log zerolog.Logger) *UserHandler {
	return &UserHandler{users: users, log: log}
}

// Signup creates a new account.
//
// @Summary      Sign up
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /signup [post]
func (h *UserHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		metrics.SignupsTotal.WithLabelValues("invalid").Inc()
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	user, err := h.users.Signup(c.Request().Context(), toSignupInput(req))
	if err != nil {
		metrics.SignupsTotal.WithLabelValues(signupResult(err)).Inc()
		h.log.Debug().Err(err).Object("request", req.logView()).Msg("signup rejected")
		return err
	}

	metrics.SignupsTotal.WithLabelValues("created").Inc()
	h.log.Info().Str("user_id", user.ID).Msg("account created")
	return c.JSON(http.StatusCreated, toUserResponse(user))
}

// Login authenticates a user and returns a token.
//
// @Summary      Log in
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /login [post]
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.users.Login(c.Request().Context(), ports.LoginInput{Email: req.Email, Password: req.Password})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		h.log.Debug().Err(err).Object("request", req.logView()).Msg("login rejected")
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusOK, toLoginResponse(result))
}

// Profile returns the authenticated user.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /profile [get]
func (h *UserHandler) Profile(c echo.Context, current *domain.User) error {
	return c.JSON(http.StatusOK, toUserResponse(current))
}

// UpdateProfile changes the name and/or password of the authenticated user.
//
// @Summary      Update own profile
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      500   {object}  errorResponse
// @Router       /profile/update [patch]
func (h *UserHandler) UpdateProfile(c echo.Context, current *domain.User) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	h.log.Debug().Str("user_id", current.ID).Object("request", req.logView()).Msg("profile update")

	user, err := h.users.UpdateProfile(c.Request().Context(), current, toUpdateProfileInput(req))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, toUserResponse(user))
}

// DeleteAccount removes the authenticated user's account.
//
// @Summary      Delete own account
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  deleteAccountResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Failure      500  {object}  errorResponse
// @Router       /delete-account [delete]
func (h *UserHandler) DeleteAccount(c echo.Context, current *domain.User) error {
	result, err := h.users.DeleteAccount(c.Request().Context(), current)
	if err != nil {
		return err
	}

	metrics.AccountsDeletedTotal.Add(float64(result.DeletedCount))
	h.log.Info().Str("user_id", current.ID).Int64("deleted", result.DeletedCount).Msg("account deleted")
	return c.JSON(http.StatusOK, deleteAccountResponse{
		Acknowledged: result.Acknowledged,
		DeletedCount: result.DeletedCount,
	})
}

func signupResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrWeakPassword), errors.Is(err, domain.ErrPasswordTooLong):
		return "weak_password"
	case errors.Is(err, domain.ErrValidation):
		return "invalid"
	case errors.Is(err, domain.ErrUserExists):
		return "duplicate"
	default:
		return "error"
	}
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrUnknownEmail):
		return "unknown_email"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "wrong_password"
	default:
		return "error"
	}
}
