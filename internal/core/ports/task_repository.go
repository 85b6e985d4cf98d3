package ports

import (
	"context"
	"time"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
)

// TaskRepository defines persistence operations for assigned tasks.
// Tasks are write-once: there is no update or delete.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) (*domain.Task, error)
	List(ctx context.Context) ([]*domain.Task, error)
	ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error)
	// ListByAssigneeInRange returns the assignee's tasks dated within
	// [from, to), used for weekly planning aggregates.
	ListByAssigneeInRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Task, error)
	// FindByIDs returns the tasks matching ids, keyed by id. Missing ids are
	// simply absent from the result.
	FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Task, error)
}
