package middleware

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskhub/todo-service/internal/core/domain"
)

// RoleResolver looks up the role for an authenticated username. Tokens carry
// only subject and email, so the role is resolved against the user store at
// request time — which also means a role change takes effect immediately,
// unlike anything baked into a token.
type RoleResolver interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

// RequireRole allows the request through only when the authenticated user's
// stored role is one of allowedRoles. Must run after Auth.
func RequireRole(resolver RoleResolver, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			username, _ := c.Get("username").(string)
			if username == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			user, err := resolver.FindByUsername(c.Request().Context(), username)
			if err != nil {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}
			if _, ok := allowed[user.Role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, domain.ErrForbidden.Error())
			}

			return next(c)
		}
	}
}
