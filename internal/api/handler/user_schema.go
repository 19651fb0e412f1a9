package handler

import (
	"time"

	"github.com/rs/zerolog"
)

// errorResponse is the error envelope rendered by the API error handler.
type errorResponse struct {
	Msg string `json:"msg"`
}

// --- Request types ---

type signupRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type updateProfileRequest struct {
	Name     *string `json:"name"`
	Password *string `json:"password"`
	Email    *string `json:"email"`
}

// --- Loggable views ---
// Request types that carry credentials are logged only through these views,
// which have no field to hold a password.

type signupLogView struct {
	Name  string
	Email string
}

func (v signupLogView) MarshalZerologObject(e *zerolog.Event) {
	e.Str("name", v.Name).Str("email", v.Email)
}

func (r signupRequest) logView() signupLogView {
	return signupLogView{Name: r.Name, Email: r.Email}
}

type loginLogView struct {
	Email string
}

func (v loginLogView) MarshalZerologObject(e *zerolog.Event) {
	e.Str("email", v.Email)
}

func (r loginRequest) logView() loginLogView {
	return loginLogView{Email: r.Email}
}

type updateProfileLogView struct {
	Name            *string
	PasswordChanged bool
	EmailPresent    bool
}

func (v updateProfileLogView) MarshalZerologObject(e *zerolog.Event) {
	if v.Name != nil {
		e.Str("name", *v.Name)
	}
	e.Bool("password_changed", v.PasswordChanged).Bool("email_present", v.EmailPresent)
}

func (r updateProfileRequest) logView() updateProfileLogView {
	return updateProfileLogView{
		Name:            r.Name,
		PasswordChanged: r.Password != nil,
		EmailPresent:    r.Email != nil,
	}
}

// --- Response types ---

type userResponse struct {
	ID        string    `json:"_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type loginUserResponse struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	ID    string `json:"_id"`
	Role  string `json:"role"`
}

type loginResponse struct {
	User  loginUserResponse `json:"user"`
	Token string            `json:"token"`
}

type deleteAccountResponse struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}
