package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

// Context keys set by the middleware chain.
const (
	CtxSubjectID = "subject_id"
	CtxTokenRole = "token_role"
	CtxRole      = "role"
)

// Auth verifies the bearer token and injects the subject identity into the
// context. It establishes only who is asking: the issuance-time role goes in
// as a hint under token_role, and no access decision is made here.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			claims, err := tokens.Verify(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxSubjectID, claims.SubjectID)
			c.Set(CtxTokenRole, claims.Role)

			return next(c)
		}
	}
}
