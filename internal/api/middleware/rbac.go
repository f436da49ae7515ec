package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

// RBAC resolves the subject's current role through the role authority and
// enforces that it is one of the allowed roles. The role embedded in the
// token is deliberately ignored: a demoted user with a still-valid token must
// lose admin access immediately.
//
// The resolved role is stored under CtxRole for handlers to pass downstream.
func RBAC(authority ports.RoleAuthority, allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			subjectID, _ := c.Get(CtxSubjectID).(string)
			if subjectID == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
			}

			role, err := authority.CurrentRole(c.Request().Context(), subjectID)
			if err != nil {
				if errors.Is(err, domain.ErrUserNotFound) {
					// Token outlived the identity it was issued for.
					return echo.NewHTTPError(http.StatusUnauthorized, "unknown subject")
				}
				return err
			}

			if _, ok := allowed[role]; !ok {
				return echo.NewHTTPError(http.StatusForbidden, "forbidden")
			}

			c.Set(CtxRole, role)
			return next(c)
		}
	}
}
