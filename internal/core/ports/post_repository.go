package ports

import (
	"context"
	"time"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
)

// PostEdit carries the field changes applied by an update. Nil fields are
// left untouched; the repository applies the whole edit as a single atomic
// document mutation that also resets status to pending.
type PostEdit struct {
	Title    *string
	Content  *string
	Category *string
}

// PostRepository defines the persistence boundary for posts.
//
// Every mutation on likes, comments, or status must be a single-document
// atomic update so that concurrent requests against the same post never
// lose each other's writes.
type PostRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindByTitle(ctx context.Context, title string) (*domain.Post, error)
	// FindAllByStatus lists posts in the given status. When authorID is
	// non-empty, results are additionally scoped to that author.
	FindAllByStatus(ctx context.Context, status domain.PostStatus, authorID string) ([]*domain.Post, error)
	Create(ctx context.Context, post *domain.Post) error
	Delete(ctx context.Context, id string) error
	SetStatus(ctx context.Context, id string, status domain.PostStatus, at time.Time) error
	// ApplyEdit applies the edit and forces status back to pending in the
	// same atomic update.
	ApplyEdit(ctx context.Context, id string, edit PostEdit, at time.Time) error
	PushComment(ctx context.Context, id string, comment domain.Comment) error
	PushLike(ctx context.Context, id string, like domain.Like) error
	PullLike(ctx context.Context, id string, authorID string) error
}
