package domain

import "errors"

// Sentinel errors for the whole core. The HTTP layer maps these to status
// codes in one place; services return them unwrapped so errors.Is works.
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrForbidden          = errors.New("access forbidden")
	ErrUserNotFound       = errors.New("user not found")
	ErrPostNotFound       = errors.New("post not found")
	ErrUserExists         = errors.New("user already exists")
	ErrDuplicateTitle     = errors.New("post title already taken")
)
