package ports

import (
	"context"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

// CreatePostInput carries the data for a new post submission.
type CreatePostInput struct {
	Title    string
	Content  string
	Category string
	AuthorID string
}

// UpdatePostInput carries an edit. Nil fields are left unchanged. ActorID and
// ActorRole identify the requester; the engine enforces owner-or-admin.
type UpdatePostInput struct {
	PostID    string
	ActorID   string
	ActorRole string
	Title     *string
	Content   *string
	Category  *string
}

// PostService owns the post state machine, ownership policy, engagement
// mutations, and the role-aware listing policy.
type PostService interface {
	Create(ctx context.Context, input CreatePostInput) (*domain.Post, error)
	Accept(ctx context.Context, postID, actorRole string) (*domain.Post, error)
	Reject(ctx context.Context, postID, actorRole string) (*domain.Post, error)
	Update(ctx context.Context, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, postID, actorID, actorRole string) error
	// ToggleLike flips the requester's membership in the like set and reports
	// whether the post is liked after the call.
	ToggleLike(ctx context.Context, postID, actorID, actorRole string) (bool, error)
	AddComment(ctx context.Context, postID, actorID, actorRole, text string) (*domain.Post, error)
	// ListByStatus applies the listing policy: admins see every post in the
	// status, other roles only their own.
	ListByStatus(ctx context.Context, status domain.PostStatus, requesterID, requesterRole string) ([]*domain.Post, error)
	// Feed returns all accepted posts regardless of requester.
	Feed(ctx context.Context) ([]*domain.Post, error)
}
