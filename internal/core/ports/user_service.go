package ports

import (
	"context"

	"github.com/vinylshop/record-store/internal/core/domain"
)

// SignupInput is the DTO passed from the transport layer to UserService.Signup.
type SignupInput struct {
	Name     string `json:"name"     validate:"max=100"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,password"`
}

// LoginInput carries the credentials presented at login.
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult is returned on a successful login.
type LoginResult struct {
	Token string
	User  *domain.User
}

// UpdateProfileInput carries a partial profile update. Email is only present
// so the service can refuse it.
type UpdateProfileInput struct {
	Name     *string `json:"name"     validate:"omitnil,min=1,max=100"`
	Password *string `json:"password" validate:"omitnil,password"`
	Email    *string `json:"email"    validate:"-"`
}

// DeleteResult summarises a hard delete.
type DeleteResult struct {
	Acknowledged bool
	DeletedCount int64
}

// UserService defines the account use cases.
type UserService interface {
	Signup(ctx context.Context, in SignupInput) (*domain.User, error)
	Login(ctx context.Context, in LoginInput) (*LoginResult, error)
	// Resolve loads the user a verified identity refers to.
	Resolve(ctx context.Context, id domain.Identity) (*domain.User, error)
	UpdateProfile(ctx context.Context, current *domain.User, in UpdateProfileInput) (*domain.User, error)
	DeleteAccount(ctx context.Context, current *domain.User) (*DeleteResult, error)
}
