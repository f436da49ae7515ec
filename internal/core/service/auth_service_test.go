package service

import (
	"context"
	"strconv"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

// ---------------------------------------------------------------------------
// In-memory stub repository (shared by the auth, user, and role tests)
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email || u.Name == user.Name {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	created := cloneUser(user)
	created.ID = "user_" + strconv.Itoa(r.nextID)
	r.users[created.ID] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(u), nil
}

func (r *stubUserRepo) FindRole(_ context.Context, id string) (string, error) {
	u, ok := r.users[id]
	if !ok {
		return "", domain.ErrUserNotFound
	}
	return u.Role, nil
}

func (r *stubUserRepo) FindAllExcept(_ context.Context, role string) ([]*domain.User, error) {
	out := []*domain.User{}
	for _, u := range r.users {
		if u.Role != role {
			out = append(out, cloneUser(u))
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	r.users[user.ID] = cloneUser(user)
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.users[id]; !ok {
		return domain.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

// ---------------------------------------------------------------------------
// Tests
// ---------------------------------------------------------------------------

func newAuthService(repo *stubUserRepo) *AuthService {
	return NewAuthService(repo, NewTokenService("secret", 0))
}

func TestAuthService_Register_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	user, err := svc.Register(context.Background(), "alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("expected role user, got %s", user.Role)
	}
	if user.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_Validation(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "", "a@example.com", "pass"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "", "pass"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Register_NeverGrantsAdmin(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)

	// Registration is unauthenticated, so every identity it creates must be
	// a plain user. Admin status is only reachable through the admin-gated
	// update path.
	user, err := svc.Register(context.Background(), "mallory", "mallory@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Fatalf("self-registered identity got role %q", user.Role)
	}
	if stored := repo.users[user.ID]; stored.Role != domain.RoleUser {
		t.Fatalf("stored identity got role %q", stored.Role)
	}
}

func TestAuthService_Register_Duplicate(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "bob", "bob@example.com", "pass2"); err != domain.ErrUserExists {
		t.Fatalf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newAuthService(repo)
	tokens := NewTokenService("secret", 0)

	registered, err := svc.Register(context.Background(), "carol", "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	// Promote through the store, the way the admin update path would.
	repo.users[registered.ID].Role = domain.RoleAdmin

	token, user, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected token, got empty")
	}
	if user == nil || user.Name != "carol" {
		t.Fatalf("unexpected user: %+v", user)
	}

	claims, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token did not verify: %v", err)
	}
	if claims.SubjectID != user.ID {
		t.Fatalf("expected subject %s, got %s", user.ID, claims.SubjectID)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("expected role %s, got %s", domain.RoleAdmin, claims.Role)
	}
}

func TestAuthService_Login_InvalidPassword(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	if _, err := svc.Register(context.Background(), "dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if _, _, err := svc.Login(context.Background(), "dave@example.com", "badpass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_Login_UnknownEmail(t *testing.T) {
	svc := newAuthService(newStubUserRepo())

	// A missing user and a wrong password must be indistinguishable.
	if _, _, err := svc.Login(context.Background(), "ghost@example.com", "pass"); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}
