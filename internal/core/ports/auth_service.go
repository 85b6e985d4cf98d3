package ports

import (
	"context"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
)

// RegisterInput carries the data needed to create a new account.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthService implements registration, login, and profile lookup.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies credentials and returns a signed token plus the user.
	Login(ctx context.Context, email, password string) (string, *domain.User, error)
	Profile(ctx context.Context, userID string) (*domain.User, error)
}
