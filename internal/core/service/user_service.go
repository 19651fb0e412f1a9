package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/core/ports"
	"github.com/vinylshop/record-store/internal/pkg/password"
	"github.com/vinylshop/record-store/internal/pkg/validation"
)

// TokenIssuer signs bearer tokens for authenticated users.
type TokenIssuer interface {
	Issue(user *domain.User) (string, error)
	TTL() time.Duration
}

// Revoker invalidates every outstanding token of a user (Redis).
type Revoker interface {
	RevokeUser(ctx context.Context, userID string, ttl time.Duration) error
}

// UserService implements signup, login and profile management.
type UserService struct {
	repo    ports.UserRepository
	tokens  TokenIssuer
	revoker Revoker
	log     zerolog.Logger
	now     func() time.Time
}

func NewUserService(repo ports.UserRepository, tokens TokenIssuer, revoker Revoker, log zerolog.Logger) *UserService {
	return &UserService{
		repo:    repo,
		tokens:  tokens,
		revoker: revoker,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Signup validates the input, hashes the password and stores a new user with
// the default role.
func (s *UserService) Signup(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)

	// The policy check runs first so a weak password always reports the same message.
	if err := password.CheckPolicy(in.Password); err != nil {
		return nil, err
	}
	if err := validation.Check(in).Err(); err != nil {
		return nil, err
	}

	hash, err := password.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	now := s.now()
	created, err := s.repo.Create(ctx, &domain.User{
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		if !errors.Is(err, domain.ErrUserExists) {
			s.log.Error().Err(err).Msg("failed to create user")
		}
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return created, nil
}

// Login checks the credentials and issues a token.
func (s *UserService) Login(ctx context.Context, in ports.LoginInput) (*ports.LoginResult, error) {
	email := normalizeEmail(in.Email)
	if email == "" {
		return nil, domain.ErrUnknownEmail
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrUnknownEmail
		}
		return nil, fmt.Errorf("login: %w", err)
	}

	if !password.Verify(in.Password, user.PasswordHash) {
		s.log.Info().Str("user_id", user.ID).Msg("login rejected: wrong password")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("login: %w", err)
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return &ports.LoginResult{Token: token, User: user}, nil
}

// Resolve loads the user behind a verified identity.
func (s *UserService) Resolve(ctx context.Context, id domain.Identity) (*domain.User, error) {
	if id.UserID == "" {
		return nil, domain.ErrUnauthenticated
	}
	return s.repo.FindByID(ctx, id.UserID)
}

// UpdateProfile applies a partial update to the current user. Email changes
// are refused; a new password is re-checked and re-hashed.
func (s *UserService) UpdateProfile(ctx context.Context, current *domain.User, in ports.UpdateProfileInput) (*domain.User, error) {
	if in.Email != nil {
		return nil, domain.ErrEmailImmutable
	}
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		in.Name = &name
	}
	if err := validation.Check(in).Err(); err != nil {
		return nil, err
	}

	changes := ports.UserChanges{Name: in.Name, UpdatedAt: s.now()}
	if in.Password != nil {
		hash, err := password.Hash(*in.Password)
		if err != nil {
			return nil, err
		}
		changes.PasswordHash = &hash
	}

	updated, err := s.repo.Update(ctx, current.ID, changes)
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("user_id", current.ID).
		Bool("name_changed", in.Name != nil).
		Bool("password_changed", in.Password != nil).
		Msg("profile updated")
	return updated, nil
}

// DeleteAccount hard-deletes the current user and revokes their tokens.
func (s *UserService) DeleteAccount(ctx context.Context, current *domain.User) (*ports.DeleteResult, error) {
	n, err := s.repo.Delete(ctx, current.ID)
	if err != nil {
		s.log.Error().Err(err).Str("user_id", current.ID).Msg("failed to delete user")
		return nil, err
	}

	// The account is already gone; a revocation failure only means old tokens
	// fall through to the user lookup and get a 404.
	if err := s.revoker.RevokeUser(ctx, current.ID, s.tokens.TTL()); err != nil {
		s.log.Warn().Err(err).Str("user_id", current.ID).Msg("failed to revoke tokens")
	}

	s.log.Info().Str("user_id", current.ID).Int64("deleted", n).Msg("account deleted")
	return &ports.DeleteResult{Acknowledged: true, DeletedCount: n}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
