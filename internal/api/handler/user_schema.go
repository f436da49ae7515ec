package handler

import "github.com/DurgamAbhilash44/blooging-backend/internal/core/domain"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// registerRequest deliberately has no role field. Registration always yields
// a user-role identity; promotion is an admin operation.
type registerRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string       `json:"token,omitempty"`
	User  *domain.User `json:"user,omitempty"`
}

// updateUserRequest uses pointers so absent fields are distinguishable from
// empty ones; only present fields are applied.
type updateUserRequest struct {
	Name     *string `json:"name"`
	Email    *string `json:"email"    validate:"omitempty,email"`
	Password *string `json:"password" validate:"omitempty,min=6"`
	Role     *string `json:"role"     validate:"omitempty,oneof=admin user"`
}

type userResponse struct {
	User *domain.User `json:"user"`
}

type usersResponse struct {
	Users []*domain.User `json:"users"`
}
