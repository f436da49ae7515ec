package ports

import (
	"context"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

// UserRepository defines the persistence boundary for identity records.
// Uniqueness of name and email is enforced by the store (unique indexes);
// violations surface as domain.ErrUserExists.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindRole is the lean read used by the role authority: it returns only
	// the current role of the identity, straight from the store.
	FindRole(ctx context.Context, id string) (string, error)
	// FindAllExcept returns every user whose role differs from the given one.
	FindAllExcept(ctx context.Context, role string) ([]*domain.User, error)
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}
