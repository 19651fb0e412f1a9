package ports

import (
	"context"
	"time"

	"github.com/vinylshop/record-store/internal/core/domain"
)

// UserChanges lists the fields a profile update may set. Nil fields are left untouched.
type UserChanges struct {
	Name         *string
	PasswordHash *string
	UpdatedAt    time.Time
}

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts user and returns it with its assigned ID.
	// A duplicate email yields domain.ErrUserExists.
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Update applies changes to the user with the given id and returns the stored result.
	Update(ctx context.Context, id string, changes UserChanges) (*domain.User, error)
	// Delete hard-deletes the user and reports how many documents were removed.
	Delete(ctx context.Context, id string) (int64, error)
}
