package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")

// Task is a unit of work a manager assigns to an associate. Tasks are never
// mutated after creation; associates log hours against them through
// timesheet entries.
type Task struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Description    string    `json:"description" bson:"description"`
	EstimatedHours float64   `json:"estimated_hours" bson:"estimated_hours"`
	Date           time.Time `json:"date" bson:"date"`
	AssignedTo     string    `json:"assigned_to" bson:"assigned_to"`
	CreatedBy      string    `json:"created_by" bson:"created_by"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
}
