package service

import (
	"context"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

// RoleAuthority re-reads the identity record on every call so that a role
// change takes effect immediately, even while an older token for the subject
// is still valid.
type RoleAuthority struct {
	repo ports.UserRepository
}

func NewRoleAuthority(repo ports.UserRepository) *RoleAuthority {
	return &RoleAuthority{repo: repo}
}

// CurrentRole returns the store-resident role of the subject, or
// domain.ErrUserNotFound when the identity no longer exists.
func (a *RoleAuthority) CurrentRole(ctx context.Context, subjectID string) (string, error) {
	return a.repo.FindRole(ctx, subjectID)
}
