package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/vinylshop/record-store/internal/core/domain"
)

// RequireRole wraps h so it only runs when the resolved user holds one of
// allowedRoles. The role is read from the stored user, not from the token.
func RequireRole(h AuthedHandler, allowedRoles ...string) AuthedHandler {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(c echo.Context, current *domain.User) error {
		if _, ok := allowed[current.Role]; !ok {
			return domain.ErrForbidden
		}
		return h(c, current)
	}
}
