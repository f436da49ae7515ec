package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

const postsCollection = "posts"

// PostRepository persists posts. Status, likes, and comments are always
// written with single UpdateOne calls ($set/$push/$pull) so that concurrent
// requests against the same post never lose each other's writes.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(db *mongo.Database) *PostRepository {
	return &PostRepository{coll: db.Collection(postsCollection)}
}

func (r *PostRepository) Create(ctx context.Context, post *domain.Post) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if _, err := r.coll.InsertOne(ctx, post); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("insert post: %w", err)
	}
	return nil
}

func (r *PostRepository) FindByID(ctx context.Context, id string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Post
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post: %w", err)
	}
	return &p, nil
}

func (r *PostRepository) FindByTitle(ctx context.Context, title string) (*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var p domain.Post
	if err := r.coll.FindOne(ctx, bson.M{"title": title}).Decode(&p); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPostNotFound
		}
		return nil, fmt.Errorf("find post by title: %w", err)
	}
	return &p, nil
}

func (r *PostRepository) FindAllByStatus(ctx context.Context, status domain.PostStatus, authorID string) ([]*domain.Post, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{"status": status}
	if authorID != "" {
		filter["author_id"] = authorID
	}

	cur, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer cur.Close(ctx)

	posts := []*domain.Post{}
	for cur.Next(ctx) {
		var p domain.Post
		if err := cur.Decode(&p); err != nil {
			return nil, fmt.Errorf("decode post: %w", err)
		}
		posts = append(posts, &p)
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

func (r *PostRepository) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete post: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

func (r *PostRepository) SetStatus(ctx context.Context, id string, status domain.PostStatus, at time.Time) error {
	update := bson.M{"$set": bson.M{"status": status, "updated_at": at}}
	return r.updateOne(ctx, id, update, "set status")
}

// ApplyEdit writes the changed fields and the pending status in one atomic
// document mutation, so an edit can never land without the re-review flag.
func (r *PostRepository) ApplyEdit(ctx context.Context, id string, edit ports.PostEdit, at time.Time) error {
	set := bson.M{"status": domain.StatusPending, "updated_at": at}
	if edit.Title != nil {
		set["title"] = *edit.Title
	}
	if edit.Content != nil {
		set["content"] = *edit.Content
	}
	if edit.Category != nil {
		set["category"] = *edit.Category
	}
	return r.updateOne(ctx, id, bson.M{"$set": set}, "apply edit")
}

func (r *PostRepository) PushComment(ctx context.Context, id string, comment domain.Comment) error {
	update := bson.M{
		"$push": bson.M{"comments": comment},
		"$set":  bson.M{"updated_at": comment.CreatedAt},
	}
	return r.updateOne(ctx, id, update, "push comment")
}

func (r *PostRepository) PushLike(ctx context.Context, id string, like domain.Like) error {
	update := bson.M{
		"$push": bson.M{"likes": like},
		"$set":  bson.M{"updated_at": like.CreatedAt},
	}
	return r.updateOne(ctx, id, update, "push like")
}

func (r *PostRepository) PullLike(ctx context.Context, id string, authorID string) error {
	update := bson.M{
		"$pull": bson.M{"likes": bson.M{"author_id": authorID}},
	}
	return r.updateOne(ctx, id, update, "pull like")
}

func (r *PostRepository) updateOne(ctx context.Context, id string, update bson.M, op string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrDuplicateTitle
		}
		return fmt.Errorf("%s: %w", op, err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrPostNotFound
	}
	return nil
}

// EnsureIndexes creates the unique title index and the listing indexes.
func (r *PostRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "title", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "author_id", Value: 1}}},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexes)
	return err
}
