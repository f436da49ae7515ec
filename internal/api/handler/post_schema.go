package handler

import "github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"

type createPostRequest struct {
	Title    string `json:"title"    validate:"required"`
	Content  string `json:"content"  validate:"required"`
	Category string `json:"category" validate:"required"`
}

// updatePostRequest uses pointers so a field left out of the payload is not
// mistaken for clearing it.
type updatePostRequest struct {
	Title    *string `json:"title"`
	Content  *string `json:"content"`
	Category *string `json:"category"`
}

type commentRequest struct {
	Text string `json:"text" validate:"required"`
}

type postResponse struct {
	Post *domain.Post `json:"post"`
}

type postsResponse struct {
	Posts []*domain.Post `json:"posts"`
}

type likeResponse struct {
	Liked bool `json:"liked"`
}
