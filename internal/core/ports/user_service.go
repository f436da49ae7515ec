package ports

import (
	"context"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

// UpdateUserInput carries an admin-initiated identity update. Nil fields are
// left unchanged. A non-nil Password is re-hashed before the record is saved.
type UpdateUserInput struct {
	UserID    string
	ActorRole string
	Name      *string
	Email     *string
	Password  *string
	Role      *string
}

// UserService covers profile lookup and admin-only identity management.
type UserService interface {
	Profile(ctx context.Context, subjectID string) (*domain.User, error)
	// ListOthers returns every non-admin identity. Admin only.
	ListOthers(ctx context.Context, actorRole string) ([]*domain.User, error)
	UpdateUser(ctx context.Context, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, userID, actorRole string) error
}
