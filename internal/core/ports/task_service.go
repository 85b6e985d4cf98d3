package ports

import (
	"context"
	"time"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
)

// AssignTaskInput carries all data needed to assign a task to an associate.
// CreatedBy is the acting manager, resolved from the caller's token.
type AssignTaskInput struct {
	Description    string
	EstimatedHours float64
	Date           time.Time
	AssignedTo     string
	CreatedBy      string
}

// TaskDetail is the manager-facing view of a task with its assignee resolved.
type TaskDetail struct {
	Task          domain.Task
	AssigneeName  string
	AssigneeEmail string
}

// TaskService defines use-case operations for the task registry.
type TaskService interface {
	Assign(ctx context.Context, input AssignTaskInput) (*domain.Task, error)
	// ListAll returns every task with assignee references resolved (manager).
	ListAll(ctx context.Context) ([]TaskDetail, error)
	// ListMine returns the caller's own tasks (associate).
	ListMine(ctx context.Context, userID string) ([]*domain.Task, error)
}
