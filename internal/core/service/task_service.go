package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

// TaskService implements the task registry use cases.
type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, logger: logger}
}

// Assign creates a new task for an associate. The assignee must exist and
// hold the associate role.
func (s *TaskService) Assign(ctx context.Context, input ports.AssignTaskInput) (*domain.Task, error) {
	assignee, err := s.users.FindByID(ctx, input.AssignedTo)
	if err != nil {
		return nil, fmt.Errorf("assign task: %w", err)
	}
	if assignee.Role != domain.RoleAssociate {
		return nil, fmt.Errorf("assign task: assignee is not an associate: %w", domain.ErrInvalidRole)
	}

	task := &domain.Task{
		Description:    input.Description,
		EstimatedHours: input.EstimatedHours,
		Date:           input.Date.UTC(),
		AssignedTo:     input.AssignedTo,
		CreatedBy:      input.CreatedBy,
		CreatedAt:      time.Now().UTC(),
	}

	created, err := s.tasks.Create(ctx, task)
	if err != nil {
		s.logger.Error().Err(err).Str("assigned_to", input.AssignedTo).Msg("failed to create task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", created.ID).
		Str("assigned_to", created.AssignedTo).
		Float64("estimated_hours", created.EstimatedHours).
		Msg("task assigned")

	return created, nil
}

// ListAll returns every task with assignee references resolved.
func (s *TaskService) ListAll(ctx context.Context) ([]ports.TaskDetail, error) {
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, len(tasks))
	for _, t := range tasks {
		ids = append(ids, t.AssignedTo)
	}
	users, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	details := make([]ports.TaskDetail, 0, len(tasks))
	for _, t := range tasks {
		d := ports.TaskDetail{Task: *t}
		if u, ok := users[t.AssignedTo]; ok {
			d.AssigneeName = u.Name
			d.AssigneeEmail = u.Email
		}
		details = append(details, d)
	}
	return details, nil
}

// ListMine returns the tasks assigned to the calling associate.
func (s *TaskService) ListMine(ctx context.Context, userID string) ([]*domain.Task, error) {
	return s.tasks.ListByAssignee(ctx, userID)
}
