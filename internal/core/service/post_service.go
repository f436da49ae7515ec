package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

// FeedCache abstracts the Redis-backed cache for the accepted feed. All
// methods are best-effort: failures degrade to store reads, never to errors.
type FeedCache interface {
	Get(ctx context.Context) ([]*domain.Post, bool)
	Set(ctx context.Context, posts []*domain.Post)
	Invalidate(ctx context.Context)
}

// PostService implements the post state machine, ownership policy,
// engagement mutations, and the listing policy.
type PostService struct {
	repo  ports.PostRepository
	cache FeedCache
	log   zerolog.Logger
}

func NewPostService(repo ports.PostRepository, cache FeedCache, log zerolog.Logger) *PostService {
	return &PostService{repo: repo, cache: cache, log: log}
}

// Create submits a new post. Title must be globally unique; the fresh post is
// always pending regardless of who authored it.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*domain.Post, error) {
	if input.Title == "" || input.Content == "" || input.Category == "" {
		return nil, domain.ErrInvalidInput
	}

	if _, err := s.repo.FindByTitle(ctx, input.Title); err == nil {
		return nil, domain.ErrDuplicateTitle
	} else if err != domain.ErrPostNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	post := &domain.Post{
		ID:        uuid.NewString(),
		Title:     input.Title,
		Content:   input.Content,
		Category:  input.Category,
		Status:    domain.StatusPending,
		AuthorID:  input.AuthorID,
		Comments:  []domain.Comment{},
		Likes:     []domain.Like{},
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, post); err != nil {
		s.log.Error().Err(err).Str("title", input.Title).Msg("failed to create post")
		return nil, err
	}

	s.log.Info().Str("post_id", post.ID).Str("author_id", input.AuthorID).Msg("post created")
	return post, nil
}

// Accept marks a pending (or previously rejected) post as accepted. Admin only.
func (s *PostService) Accept(ctx context.Context, postID, actorRole string) (*domain.Post, error) {
	return s.moderate(ctx, postID, actorRole, domain.StatusAccepted)
}

// Reject marks a post as rejected. Admin only.
func (s *PostService) Reject(ctx context.Context, postID, actorRole string) (*domain.Post, error) {
	return s.moderate(ctx, postID, actorRole, domain.StatusRejected)
}

func (s *PostService) moderate(ctx context.Context, postID, actorRole string, decision domain.PostStatus) (*domain.Post, error) {
	if actorRole != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if err := s.repo.SetStatus(ctx, postID, decision, now); err != nil {
		return nil, err
	}
	post.Status = decision
	post.UpdatedAt = now

	s.invalidateFeed(ctx)
	s.log.Info().Str("post_id", postID).Str("decision", string(decision)).Msg("post moderated")
	return post, nil
}

// Update applies an edit and unconditionally moves the post back to pending,
// so edited content never reaches the public feed without re-review.
func (s *PostService) Update(ctx context.Context, input ports.UpdatePostInput) (*domain.Post, error) {
	if input.Title == nil && input.Content == nil && input.Category == nil {
		return nil, domain.ErrInvalidInput
	}
	if input.Title != nil && *input.Title == "" {
		return nil, domain.ErrInvalidInput
	}
	if input.Content != nil && *input.Content == "" {
		return nil, domain.ErrInvalidInput
	}

	post, err := s.repo.FindByID(ctx, input.PostID)
	if err != nil {
		return nil, err
	}
	if err := authorize(post, input.ActorID, input.ActorRole); err != nil {
		return nil, err
	}

	if input.Title != nil && *input.Title != post.Title {
		if _, err := s.repo.FindByTitle(ctx, *input.Title); err == nil {
			return nil, domain.ErrDuplicateTitle
		} else if err != domain.ErrPostNotFound {
			return nil, err
		}
	}

	now := time.Now().UTC()
	edit := ports.PostEdit{Title: input.Title, Content: input.Content, Category: input.Category}
	if err := s.repo.ApplyEdit(ctx, input.PostID, edit, now); err != nil {
		return nil, err
	}

	if input.Title != nil {
		post.Title = *input.Title
	}
	if input.Content != nil {
		post.Content = *input.Content
	}
	if input.Category != nil {
		post.Category = *input.Category
	}
	post.Status = domain.StatusPending
	post.UpdatedAt = now

	s.invalidateFeed(ctx)
	s.log.Info().Str("post_id", post.ID).Str("actor_id", input.ActorID).Msg("post updated, back to pending")
	return post, nil
}

// Delete removes a post and, with it, its comments and likes. Owner or admin.
func (s *PostService) Delete(ctx context.Context, postID, actorID, actorRole string) error {
	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return err
	}
	if err := authorize(post, actorID, actorRole); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, postID); err != nil {
		return err
	}

	s.invalidateFeed(ctx)
	s.log.Info().Str("post_id", postID).Str("actor_id", actorID).Msg("post deleted")
	return nil
}

// ToggleLike flips the actor's membership in the like set. Only the "user"
// role may like; admins moderate, they do not engage. The repo applies the
// add/remove as an atomic document mutation.
func (s *PostService) ToggleLike(ctx context.Context, postID, actorID, actorRole string) (bool, error) {
	if actorRole != domain.RoleUser {
		return false, domain.ErrForbidden
	}

	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return false, err
	}

	if post.LikedBy(actorID) {
		if err := s.repo.PullLike(ctx, postID, actorID); err != nil {
			return false, err
		}
		return false, nil
	}

	like := domain.Like{AuthorID: actorID, CreatedAt: time.Now().UTC()}
	if err := s.repo.PushLike(ctx, postID, like); err != nil {
		return false, err
	}
	return true, nil
}

// AddComment appends a comment to the post. Only the "user" role may comment;
// existing comments are never touched.
func (s *PostService) AddComment(ctx context.Context, postID, actorID, actorRole, text string) (*domain.Post, error) {
	if text == "" {
		return nil, domain.ErrInvalidInput
	}
	if actorRole != domain.RoleUser {
		return nil, domain.ErrForbidden
	}

	post, err := s.repo.FindByID(ctx, postID)
	if err != nil {
		return nil, err
	}

	comment := domain.Comment{AuthorID: actorID, Text: text, CreatedAt: time.Now().UTC()}
	if err := s.repo.PushComment(ctx, postID, comment); err != nil {
		return nil, err
	}
	post.Comments = append(post.Comments, comment)

	return post, nil
}

// ListByStatus applies the listing policy: admins enumerate every post in
// the status, everyone else only their own. An empty result is not an error.
func (s *PostService) ListByStatus(ctx context.Context, status domain.PostStatus, requesterID, requesterRole string) ([]*domain.Post, error) {
	if !domain.ValidStatus(status) {
		return nil, domain.ErrInvalidInput
	}

	authorID := requesterID
	if requesterRole == domain.RoleAdmin {
		authorID = ""
	}
	return s.repo.FindAllByStatus(ctx, status, authorID)
}

// Feed returns every accepted post, for any authenticated requester. Reads
// go through the cache; the store is the fallback on a miss.
func (s *PostService) Feed(ctx context.Context) ([]*domain.Post, error) {
	if s.cache != nil {
		if posts, ok := s.cache.Get(ctx); ok {
			return posts, nil
		}
	}

	posts, err := s.repo.FindAllByStatus(ctx, domain.StatusAccepted, "")
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		s.cache.Set(ctx, posts)
	}
	return posts, nil
}

func (s *PostService) invalidateFeed(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

// authorize enforces the ownership rule shared by update and delete:
// the author of the post, or any admin.
func authorize(post *domain.Post, actorID, actorRole string) error {
	if post.AuthorID == actorID || actorRole == domain.RoleAdmin {
		return nil
	}
	return domain.ErrForbidden
}
