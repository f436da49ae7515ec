package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

type stubAuthority struct {
	roles map[string]string
	calls int
}

func (a *stubAuthority) CurrentRole(_ context.Context, subjectID string) (string, error) {
	a.calls++
	role, ok := a.roles[subjectID]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return role, nil
}

func rbacContext(e *echo.Echo, subjectID, tokenRole string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if subjectID != "" {
		c.Set(CtxSubjectID, subjectID)
	}
	if tokenRole != "" {
		c.Set(CtxTokenRole, tokenRole)
	}
	return c, rec
}

func TestRBAC_AllowsAndStoresCurrentRole(t *testing.T) {
	e := echo.New()
	authority := &stubAuthority{roles: map[string]string{"user_1": domain.RoleAdmin}}
	c, _ := rbacContext(e, "user_1", "")

	called := false
	mw := RBAC(authority, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get(CtxRole) != domain.RoleAdmin {
			t.Fatalf("resolved role not stored")
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if authority.calls != 1 {
		t.Fatalf("expected one authority lookup, got %d", authority.calls)
	}
}

func TestRBAC_IgnoresTokenRole(t *testing.T) {
	e := echo.New()
	// The store says "user" even though the token still claims "admin".
	authority := &stubAuthority{roles: map[string]string{"user_1": domain.RoleUser}}
	c, rec := rbacContext(e, "user_1", domain.RoleAdmin)

	mw := RBAC(authority, domain.RoleAdmin)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("demoted subject must not pass an admin gate")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
}

func TestRBAC_UnknownSubject(t *testing.T) {
	e := echo.New()
	authority := &stubAuthority{roles: map[string]string{}}
	c, rec := rbacContext(e, "deleted_user", "")

	mw := RBAC(authority, domain.RoleAdmin, domain.RoleUser)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for deleted identity, got %d", rec.Code)
	}
}

func TestRBAC_MissingSubject(t *testing.T) {
	e := echo.New()
	authority := &stubAuthority{roles: map[string]string{}}
	c, rec := rbacContext(e, "", "")

	mw := RBAC(authority, domain.RoleUser)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	if authority.calls != 0 {
		t.Fatalf("authority consulted without a subject")
	}
}
