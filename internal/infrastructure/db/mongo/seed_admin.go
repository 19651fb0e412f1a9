package mongo

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/pkg/password"
)

// AdminSeed describes the administrator account created on first start.
type AdminSeed struct {
	Email    string
	Password string
	Name     string
}

// EnsureAdminUser creates the seed administrator when it does not exist yet.
// It is a no-op when email or password is empty. The returned bool reports
// whether a user was created.
func EnsureAdminUser(ctx context.Context, users *UserRepository, seed AdminSeed) (bool, error) {
	email := strings.ToLower(strings.TrimSpace(seed.Email))
	if email == "" || seed.Password == "" {
		return false, nil
	}

	_, err := users.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return false, err
	}

	if err := password.CheckPolicy(seed.Password); err != nil {
		return false, err
	}
	hash, err := password.Hash(seed.Password)
	if err != nil {
		return false, err
	}

	name := seed.Name
	if name == "" {
		name = "Administrator"
	}

	now := time.Now().UTC()
	_, err = users.Create(ctx, &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         domain.RoleAdmin,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if errors.Is(err, domain.ErrUserExists) {
		return false, nil
	}
	return err == nil, err
}
