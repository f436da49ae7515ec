package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// ValidRole reports whether r is one of the two accepted role values.
func ValidRole(r string) bool {
	return r == RoleAdmin || r == RoleUser
}

// User models an identity in the system. PasswordHash is never serialized;
// hashing happens explicitly in the service layer before the record is built.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
