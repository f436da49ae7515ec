package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

// UserService covers profile lookup and admin identity management.
type UserService struct {
	repo ports.UserRepository
	log  zerolog.Logger
}

func NewUserService(repo ports.UserRepository, log zerolog.Logger) *UserService {
	return &UserService{repo: repo, log: log}
}

// Profile returns the subject's own identity record.
func (s *UserService) Profile(ctx context.Context, subjectID string) (*domain.User, error) {
	return s.repo.FindByID(ctx, subjectID)
}

// ListOthers returns every non-admin identity. Admin only.
func (s *UserService) ListOthers(ctx context.Context, actorRole string) ([]*domain.User, error) {
	if actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}
	return s.repo.FindAllExcept(ctx, domain.RoleAdmin)
}

// UpdateUser applies an admin-initiated update to an identity. A new password
// is hashed here, explicitly, before the record is saved; a new role must be
// one of the two accepted values.
func (s *UserService) UpdateUser(ctx context.Context, input ports.UpdateUserInput) (*domain.User, error) {
	if input.ActorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	user, err := s.repo.FindByID(ctx, input.UserID)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		if *input.Name == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Name = *input.Name
	}
	if input.Email != nil {
		if *input.Email == "" {
			return nil, domain.ErrInvalidInput
		}
		user.Email = *input.Email
	}
	if input.Password != nil {
		if *input.Password == "" {
			return nil, domain.ErrInvalidInput
		}
		hash, err := HashPassword(*input.Password)
		if err != nil {
			return nil, err
		}
		user.PasswordHash = hash
	}
	if input.Role != nil {
		if !domain.ValidRole(*input.Role) {
			return nil, domain.ErrInvalidInput
		}
		user.Role = *input.Role
	}
	user.UpdatedAt = time.Now().UTC()

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

// DeleteUser removes an identity. Admin only. Posts the identity authored
// are left untouched.
func (s *UserService) DeleteUser(ctx context.Context, userID, actorRole string) error {
	if actorRole != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if err := s.repo.Delete(ctx, userID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("user deleted")
	return nil
}
