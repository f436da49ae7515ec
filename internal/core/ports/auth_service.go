package ports

import (
	"context"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

type AuthService interface {
	// Register creates a user-role identity. There is no way to choose a
	// role at registration; promotion goes through the admin-gated user
	// management path.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
}

// RoleAuthority resolves the current, authoritative role of a subject by
// consulting the credential store. It is the single source of truth consulted
// before any privileged action; token-embedded roles are never trusted.
type RoleAuthority interface {
	CurrentRole(ctx context.Context, subjectID string) (string, error)
}
