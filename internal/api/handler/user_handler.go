package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/DurgamAbhilash44/blooging-backend/internal/core/ports"
)

// UserHandler handles profile lookup and admin user management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Profile handles GET /api/profile.
//
// @Summary      Get own profile
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  userResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/profile [get]
func (h *UserHandler) Profile(c echo.Context) error {
	subjectID, err := ctxSubject(c)
	if err != nil {
		return err
	}

	user, err := h.service.Profile(c.Request().Context(), subjectID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// List handles GET /api/users — all non-admin identities, admin only.
//
// @Summary      List non-admin users (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  usersResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c echo.Context) error {
	_, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	users, err := h.service.ListOthers(c.Request().Context(), role)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// Update handles PUT /api/users/:id — admin only.
//
// @Summary      Update a user (admin only)
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User ID"
// @Param        body  body      updateUserRequest  true  "Fields to change"
// @Success      200   {object}  userResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	_, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.UpdateUser(c.Request().Context(), ports.UpdateUserInput{
		UserID:    c.Param("id"),
		ActorRole: role,
		Name:      req.Name,
		Email:     req.Email,
		Password:  req.Password,
		Role:      req.Role,
	})
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userResponse{User: user})
}

// Delete handles DELETE /api/users/:id — admin only.
//
// @Summary      Delete a user (admin only)
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path  string  true  "User ID"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	_, role, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.DeleteUser(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
