package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

func seedUser(t *testing.T, repo *stubUserRepo, name, role string) *domain.User {
	t.Helper()
	created, err := repo.Create(context.Background(), &domain.User{
		Name:         name,
		Email:        name + "@example.com",
		PasswordHash: "hash",
		Role:         role,
	})
	if err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return created
}

func TestUserService_Profile(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	alice := seedUser(t, repo, "alice", domain.RoleUser)

	got, err := svc.Profile(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("profile failed: %v", err)
	}
	if got.Name != "alice" {
		t.Fatalf("unexpected profile: %+v", got)
	}

	if _, err := svc.Profile(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserService_ListOthers_AdminOnly(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	seedUser(t, repo, "root", domain.RoleAdmin)
	seedUser(t, repo, "alice", domain.RoleUser)
	seedUser(t, repo, "bob", domain.RoleUser)

	if _, err := svc.ListOthers(context.Background(), domain.RoleUser); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	users, err := svc.ListOthers(context.Background(), domain.RoleAdmin)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("expected 2 non-admin users, got %d", len(users))
	}
	for _, u := range users {
		if u.Role == domain.RoleAdmin {
			t.Fatalf("admin leaked into listing: %+v", u)
		}
	}
}

func TestUserService_UpdateUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	alice := seedUser(t, repo, "alice", domain.RoleUser)

	password := "newpass"
	role := domain.RoleAdmin
	updated, err := svc.UpdateUser(context.Background(), ports.UpdateUserInput{
		UserID:    alice.ID,
		ActorRole: domain.RoleAdmin,
		Password:  &password,
		Role:      &role,
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.Role != domain.RoleAdmin {
		t.Fatalf("role not applied: %s", updated.Role)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.PasswordHash), []byte("newpass")); err != nil {
		t.Fatalf("new password not hashed: %v", err)
	}
}

func TestUserService_UpdateUser_Gates(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	alice := seedUser(t, repo, "alice", domain.RoleUser)

	if _, err := svc.UpdateUser(context.Background(), ports.UpdateUserInput{
		UserID:    alice.ID,
		ActorRole: domain.RoleUser,
	}); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	badRole := "moderator"
	if _, err := svc.UpdateUser(context.Background(), ports.UpdateUserInput{
		UserID:    alice.ID,
		ActorRole: domain.RoleAdmin,
		Role:      &badRole,
	}); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput for bad role, got %v", err)
	}
}

func TestUserService_DeleteUser(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo, zerolog.Nop())
	alice := seedUser(t, repo, "alice", domain.RoleUser)

	if err := svc.DeleteUser(context.Background(), alice.ID, domain.RoleUser); err != domain.ErrForbidden {
		t.Fatalf("expected ErrForbidden, got %v", err)
	}

	if err := svc.DeleteUser(context.Background(), alice.ID, domain.RoleAdmin); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), alice.ID); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound after delete, got %v", err)
	}
}

func TestRoleAuthority_TracksStoreState(t *testing.T) {
	repo := newStubUserRepo()
	authority := NewRoleAuthority(repo)
	alice := seedUser(t, repo, "alice", domain.RoleAdmin)

	role, err := authority.CurrentRole(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("current role failed: %v", err)
	}
	if role != domain.RoleAdmin {
		t.Fatalf("unexpected role: %s", role)
	}

	// Demotion is visible on the very next read, token or no token.
	alice.Role = domain.RoleUser
	if err := repo.Update(context.Background(), alice); err != nil {
		t.Fatalf("update failed: %v", err)
	}
	role, err = authority.CurrentRole(context.Background(), alice.ID)
	if err != nil {
		t.Fatalf("current role failed: %v", err)
	}
	if role != domain.RoleUser {
		t.Fatalf("stale role after demotion: %s", role)
	}

	if _, err := authority.CurrentRole(context.Background(), "ghost"); err != domain.ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
