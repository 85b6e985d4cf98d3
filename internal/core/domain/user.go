package domain

import (
	"errors"
	"time"
)

const (
	RoleAssociate = "associate"
	RoleManager   = "manager"
)

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidRole = errors.New("invalid role")
var ErrForbidden = errors.New("access forbidden")

// ValidRole reports whether role is one of the two roles the system knows.
func ValidRole(role string) bool {
	return role == RoleAssociate || role == RoleManager
}

// User models an authenticated actor: either an associate who logs time or a
// manager who assigns tasks and reviews timesheets.
type User struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Name         string    `json:"name" bson:"name"`
	Email        string    `json:"email" bson:"email"`
	PasswordHash string    `json:"-" bson:"password_hash"`
	Role         string    `json:"role" bson:"role"`
	CreatedAt    time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" bson:"updated_at"`
}
