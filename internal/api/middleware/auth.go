package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/vinylshop/record-store/internal/core/domain"
	"github.com/vinylshop/record-store/internal/pkg/token"
)

// AuthedHandler is a handler that runs only for an authenticated, resolved user.
type AuthedHandler func(c echo.Context, current *domain.User) error

// TokenVerifier checks a raw bearer token.
type TokenVerifier interface {
	Verify(raw string) (*token.Claims, error)
}

// UserResolver loads the user a verified identity refers to.
type UserResolver interface {
	Resolve(ctx context.Context, id domain.Identity) (*domain.User, error)
}

// RevocationChecker reports whether a user's tokens have been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, userID string) (bool, error)
}

// Guard authenticates bearer tokens and resolves them to users.
type Guard struct {
	tokens  TokenVerifier
	users   UserResolver
	revoked RevocationChecker
	log     zerolog.Logger
}

func NewGuard(tokens TokenVerifier, users UserResolver, revoked RevocationChecker, log zerolog.Logger) *Guard {
	return &Guard{tokens: tokens, users: users, revoked: revoked, log: log}
}

// Protect runs both stages before h. The resolved user is passed to h
// explicitly; nothing is stored on the echo context.
func (g *Guard) Protect(h AuthedHandler) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := g.Authenticate(c.Request())
		if err != nil {
			return err
		}

		current, err := g.Resolve(c.Request().Context(), id)
		if err != nil {
			return err
		}

		return h(c, current)
	}
}

// Authenticate is the first stage: it requires an "Authorization: Bearer"
// header carrying a valid, unrevoked token.
func (g *Guard) Authenticate(r *http.Request) (domain.Identity, error) {
	authHeader := r.Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || strings.TrimSpace(parts[1]) == "" {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
	}

	claims, err := g.tokens.Verify(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
	}
	id := claims.Identity()

	revoked, err := g.revoked.IsRevoked(r.Context(), id.UserID)
	if err != nil {
		// Fall through to the user lookup, which still rejects deleted accounts.
		g.log.Warn().Err(err).Str("user_id", id.UserID).Msg("revocation check failed")
	} else if revoked {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "token has been revoked")
	}

	return id, nil
}

// Resolve is the second stage: it loads the user behind id.
func (g *Guard) Resolve(ctx context.Context, id domain.Identity) (*domain.User, error) {
	user, err := g.users.Resolve(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrUnauthenticated) {
			return nil, echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
		}
		return nil, err
	}
	return user, nil
}
