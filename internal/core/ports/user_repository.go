package ports

import (
	"context"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
type UserRepository interface {
	// Create inserts a new user. Returns domain.ErrUserExists when the email
	// is already registered (unique index).
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	// FindByIDs returns the users matching ids, keyed by id. Missing ids are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.User, error)
	ListByRole(ctx context.Context, role string) ([]*domain.User, error)
}
