package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DurgamAbhilash44/blooging-backend/internal/api/metrics"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"
	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

// PostHandler handles HTTP requests for the post lifecycle.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// Create handles POST /api/posts.
//
// @Summary      Submit a new post for moderation
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createPostRequest  true  "Post details"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	subjectID, err := ctxSubject(c)
	if err != nil {
		return err
	}

	var req createPostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		Category: req.Category,
		AuthorID: subjectID,
	})
	if err != nil {
		return err
	}

	metrics.PostsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, postResponse{Post: post})
}

// Accept handles POST /api/posts/:id/accept.
//
// @Summary      Accept a post (admin only)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  postResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id}/accept [post]
func (h *PostHandler) Accept(c echo.Context) error {
	return h.moderate(c, domain.StatusAccepted)
}

// Reject handles POST /api/posts/:id/reject.
//
// @Summary      Reject a post (admin only)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  postResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id}/reject [post]
func (h *PostHandler) Reject(c echo.Context) error {
	return h.moderate(c, domain.StatusRejected)
}

func (h *PostHandler) moderate(c echo.Context, decision domain.PostStatus) error {
	_, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	var post *domain.Post
	if decision == domain.StatusAccepted {
		post, err = h.service.Accept(c.Request().Context(), c.Param("id"), role)
	} else {
		post, err = h.service.Reject(c.Request().Context(), c.Param("id"), role)
	}
	if err != nil {
		return err
	}

	metrics.ModerationDecisionsTotal.WithLabelValues(string(decision)).Inc()
	return c.JSON(http.StatusOK, postResponse{Post: post})
}

// Update handles PUT /api/posts/:id.
//
// @Summary      Edit a post (owner or admin); status returns to pending
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "Post ID"
// @Param        body  body      updatePostRequest  true  "Fields to change"
// @Success      200   {object}  postResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	subjectID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updatePostRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	post, err := h.service.Update(c.Request().Context(), ports.UpdatePostInput{
		PostID:    c.Param("id"),
		ActorID:   subjectID,
		ActorRole: role,
		Title:     req.Title,
		Content:   req.Content,
		Category:  req.Category,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postResponse{Post: post})
}

// Delete handles DELETE /api/posts/:id.
//
// @Summary      Delete a post (owner or admin)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "Post ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	subjectID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), c.Param("id"), subjectID, role); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// ToggleLike handles POST /api/posts/:id/like.
//
// @Summary      Like or unlike a post (user role only)
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post ID"
// @Success      200  {object}  likeResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/posts/{id}/like [post]
func (h *PostHandler) ToggleLike(c echo.Context) error {
	subjectID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	liked, err := h.service.ToggleLike(c.Request().Context(), c.Param("id"), subjectID, role)
	if err != nil {
		return err
	}

	action := "unlike"
	if liked {
		action = "like"
	}
	metrics.LikesToggledTotal.WithLabelValues(action).Inc()

	return c.JSON(http.StatusOK, likeResponse{Liked: liked})
}

// AddComment handles POST /api/posts/:id/comments.
//
// @Summary      Comment on a post (user role only)
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Post ID"
// @Param        body  body      commentRequest  true  "Comment text"
// @Success      201   {object}  postResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/posts/{id}/comments [post]
func (h *PostHandler) AddComment(c echo.Context) error {
	subjectID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req commentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.AddComment(c.Request().Context(), c.Param("id"), subjectID, role, req.Text)
	if err != nil {
		return err
	}

	metrics.CommentsAddedTotal.Inc()
	return c.JSON(http.StatusCreated, postResponse{Post: post})
}

// ListByStatus handles GET /api/posts/:status for pending/accepted/rejected.
// Admins see every post in the status; other roles only their own. An empty
// result is a 200 with an empty list, never an error.
//
// @Summary      List posts by moderation status
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        status  path      string  true  "pending, accepted, or rejected"
// @Success      200     {object}  postsResponse
// @Failure      400     {object}  errorResponse
// @Router       /api/posts/{status} [get]
func (h *PostHandler) ListByStatus(c echo.Context) error {
	subjectID, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	status := domain.PostStatus(c.Param("status"))
	posts, err := h.service.ListByStatus(c.Request().Context(), status, subjectID, role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postsResponse{Posts: posts})
}

// Feed handles GET /api/posts/feed — every accepted post, any authenticated
// requester.
//
// @Summary      Public feed of accepted posts
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  postsResponse
// @Router       /api/posts/feed [get]
func (h *PostHandler) Feed(c echo.Context) error {
	if _, err := ctxSubject(c); err != nil {
		return err
	}

	posts, err := h.service.Feed(c.Request().Context())
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, postsResponse{Posts: posts})
}
