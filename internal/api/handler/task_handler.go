package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vishwesh2904/timesheet-system/internal/api/metrics"
	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

// TaskHandler handles HTTP requests for the task registry.
type TaskHandler struct {
	service ports.TaskService
}

func NewTaskHandler(service ports.TaskService) *TaskHandler {
	return &TaskHandler{service: service}
}

// Assign handles POST /api/tasks/assign (manager only).
//
// @Summary      Assign a task to an associate
// @Tags         tasks
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignTaskRequest  true  "Task details"
// @Success      201   {object}  assignTaskResponse
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/tasks/assign [post]
func (h *TaskHandler) Assign(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	var req assignTaskRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	date, err := parseDate(req.Date)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be a valid calendar date")
	}

	task, err := h.service.Assign(c.Request().Context(), ports.AssignTaskInput{
		Description:    req.Description,
		EstimatedHours: req.EstimatedHours,
		Date:           date,
		AssignedTo:     req.AssignedTo,
		CreatedBy:      userID,
	})
	if err != nil {
		return err
	}

	metrics.TasksAssignedTotal.Inc()
	return c.JSON(http.StatusCreated, assignTaskResponse{
		Message: "task assigned successfully",
		Task:    toTaskResponse(task),
	})
}

// All handles GET /api/tasks/all (manager only).
//
// @Summary      List every task with assignees resolved
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  listTasksResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/tasks/all [get]
func (h *TaskHandler) All(c echo.Context) error {
	details, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}

	tasks := make([]taskDetailResponse, 0, len(details))
	for _, d := range details {
		tasks = append(tasks, toTaskDetailResponse(d))
	}
	return c.JSON(http.StatusOK, listTasksResponse{Tasks: tasks})
}

// My handles GET /api/tasks/my (associate only).
//
// @Summary      List the caller's own tasks
// @Tags         tasks
// @Produce      json
// @Security     BearerAuth
// @Success      200   {object}  listMyTasksResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/tasks/my [get]
func (h *TaskHandler) My(c echo.Context) error {
	userID, _, err := ctxClaims(c)
	if err != nil {
		return err
	}

	mine, err := h.service.ListMine(c.Request().Context(), userID)
	if err != nil {
		return err
	}

	tasks := make([]taskResponse, 0, len(mine))
	for _, t := range mine {
		tasks = append(tasks, toTaskResponse(t))
	}
	return c.JSON(http.StatusOK, listMyTasksResponse{Tasks: tasks})
}

func toTaskResponse(t *domain.Task) taskResponse {
	return taskResponse{
		ID:             t.ID,
		Description:    t.Description,
		EstimatedHours: t.EstimatedHours,
		Date:           t.Date.UTC(),
		AssignedTo:     t.AssignedTo,
		CreatedBy:      t.CreatedBy,
		CreatedAt:      t.CreatedAt.UTC(),
	}
}

func toTaskDetailResponse(d ports.TaskDetail) taskDetailResponse {
	return taskDetailResponse{
		taskResponse:  toTaskResponse(&d.Task),
		AssigneeName:  d.AssigneeName,
		AssigneeEmail: d.AssigneeEmail,
	}
}
