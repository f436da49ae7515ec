package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DurgamAbhilash44/blooging-backend/internal/api/middleware"
)

// ctxActor extracts the subject id and the store-resolved role injected by
// the Auth and RBAC middleware. Presence of both proves the full chain ran;
// anything missing is a 401, not a 500.
func ctxActor(c echo.Context) (subjectID, role string, err error) {
	subjectID, _ = c.Get(middleware.CtxSubjectID).(string)
	if subjectID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	role, _ = c.Get(middleware.CtxRole).(string)
	if role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing role claims")
	}

	return subjectID, role, nil
}

// ctxSubject extracts only the subject id, for routes that never gate on role.
func ctxSubject(c echo.Context) (string, error) {
	subjectID, _ := c.Get(middleware.CtxSubjectID).(string)
	if subjectID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return subjectID, nil
}
