package handler

import "time"

type assignTaskRequest struct {
	Description    string  `json:"description"     validate:"required"`
	EstimatedHours float64 `json:"estimated_hours" validate:"required,gt=0"`
	Date           string  `json:"date"            validate:"required"`
	AssignedTo     string  `json:"assigned_to"     validate:"required"`
}

type taskResponse struct {
	ID             string    `json:"id"`
	Description    string    `json:"description"`
	EstimatedHours float64   `json:"estimated_hours"`
	Date           time.Time `json:"date"`
	AssignedTo     string    `json:"assigned_to"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// taskDetailResponse is the manager view with the assignee resolved.
type taskDetailResponse struct {
	taskResponse
	AssigneeName  string `json:"assignee_name"`
	AssigneeEmail string `json:"assignee_email"`
}

type assignTaskResponse struct {
	Message string       `json:"message"`
	Task    taskResponse `json:"task"`
}

type listTasksResponse struct {
	Tasks []taskDetailResponse `json:"tasks"`
}

type listMyTasksResponse struct {
	Tasks []taskResponse `json:"tasks"`
}
