package domain

import "time"

// PostStatus represents the moderation state of a post.
type PostStatus string

const (
	StatusPending  PostStatus = "pending"
	StatusAccepted PostStatus = "accepted"
	StatusRejected PostStatus = "rejected"
)

// ValidStatus reports whether s is one of the three moderation states.
func ValidStatus(s PostStatus) bool {
	return s == StatusPending || s == StatusAccepted || s == StatusRejected
}

// Comment is a single append-only comment on a post. Comments are never
// edited or removed while the post exists.
type Comment struct {
	AuthorID  string    `json:"author_id" bson:"author_id"`
	Text      string    `json:"text" bson:"text"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Like marks that one user likes a post. At most one entry per user;
// re-liking after an unlike produces a fresh CreatedAt.
type Like struct {
	AuthorID  string    `json:"author_id" bson:"author_id"`
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// Post is the core aggregate root. AuthorID is immutable after creation.
// A freshly created post is always pending, and any edit to title or content
// moves it back to pending so moderation always sees the latest version.
type Post struct {
	ID        string     `json:"id" bson:"_id"`
	Title     string     `json:"title" bson:"title"`
	Content   string     `json:"content" bson:"content"`
	Category  string     `json:"category" bson:"category"`
	Status    PostStatus `json:"status" bson:"status"`
	AuthorID  string     `json:"author_id" bson:"author_id"`
	Comments  []Comment  `json:"comments" bson:"comments"`
	Likes     []Like     `json:"likes" bson:"likes"`
	CreatedAt time.Time  `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time  `json:"updated_at" bson:"updated_at"`
}

// LikedBy reports whether userID currently appears in the like set.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.AuthorID == userID {
			return true
		}
	}
	return false
}
