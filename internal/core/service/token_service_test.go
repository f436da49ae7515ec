package service

import (
	"testing"
	"time"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := NewTokenService("secret", 0)

	token, err := svc.Issue("user_1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	claims, err := svc.Verify(token)
	if err != nil {
		t.Fatalf("verify failed: %v", err)
	}
	if claims.SubjectID != "user_1" {
		t.Fatalf("unexpected subject: %s", claims.SubjectID)
	}
	if claims.Role != domain.RoleUser {
		t.Fatalf("unexpected role: %s", claims.Role)
	}
}

func TestTokenService_Expiry(t *testing.T) {
	issued := time.Now().UTC()
	svc := NewTokenService("secret", time.Hour)
	svc.now = func() time.Time { return issued }

	token, err := svc.Issue("user_1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	// Still valid just inside the window.
	svc.now = func() time.Time { return issued.Add(59 * time.Minute) }
	if _, err := svc.Verify(token); err != nil {
		t.Fatalf("token rejected before expiry: %v", err)
	}

	// Two hours after issuance the assertion is dead.
	svc.now = func() time.Time { return issued.Add(2 * time.Hour) }
	if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken after expiry, got %v", err)
	}
}

func TestTokenService_WrongSecret(t *testing.T) {
	token, err := NewTokenService("secret", 0).Issue("user_1", domain.RoleUser)
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := NewTokenService("other", 0).Verify(token); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}

func TestTokenService_Malformed(t *testing.T) {
	svc := NewTokenService("secret", 0)

	for _, token := range []string{"", "not-a-token", "a.b.c"} {
		if _, err := svc.Verify(token); err != domain.ErrInvalidToken {
			t.Fatalf("expected ErrInvalidToken for %q, got %v", token, err)
		}
	}
}
