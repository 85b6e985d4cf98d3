package domain

import (
	"errors"
	"fmt"
	"time"
)

// TimesheetStatus represents the lifecycle state of a weekly timesheet.
type TimesheetStatus string

const (
	StatusDraft     TimesheetStatus = "draft"
	StatusSubmitted TimesheetStatus = "submitted"
)

// validTransitions defines the allowed state machine transitions.
// Submitted is terminal: there is no way out of it.
var validTransitions = map[TimesheetStatus][]TimesheetStatus{
	StatusDraft: {StatusSubmitted},
}

var ErrTimesheetNotFound = errors.New("timesheet not found")
var ErrTimesheetSubmitted = errors.New("timesheet already submitted")
var ErrInvalidEntry = errors.New("invalid timesheet entry")

// MaxDailyHours caps actualHours on a single entry. Enforced here, at the
// engine boundary, and nowhere else.
const MaxDailyHours = 24

// CanTransitionTo reports whether a transition from current status to next is valid.
func (s TimesheetStatus) CanTransitionTo(next TimesheetStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Editable reports whether the timesheet may still be modified.
func (s TimesheetStatus) Editable() bool {
	return s == StatusDraft
}

// TimesheetEntry is one (task, date, hours) record within a weekly timesheet.
type TimesheetEntry struct {
	TaskID      string    `json:"task_id" bson:"task_id"`
	Date        time.Time `json:"date" bson:"date"`
	ActualHours float64   `json:"actual_hours" bson:"actual_hours"`
}

// Timesheet is the core aggregate root: one associate's logged hours for one
// reporting week. At most one timesheet exists per (user, week start) pair.
// Entries are replaced wholesale on every save; once submitted the document
// is immutable.
type Timesheet struct {
	ID        string           `json:"id" bson:"_id,omitempty"`
	UserID    string           `json:"user_id" bson:"user_id"`
	WeekStart time.Time        `json:"week_start" bson:"week_start"`
	Entries   []TimesheetEntry `json:"entries" bson:"entries"`
	Status    TimesheetStatus  `json:"status" bson:"status"`
	CreatedAt time.Time        `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time        `json:"updated_at" bson:"updated_at"`
}

// WeekOf normalises any instant to the canonical start of its reporting week:
// the ISO week convention, Monday 00:00:00 UTC.
func WeekOf(t time.Time) time.Time {
	t = t.UTC()
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	offset := int(day.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	return day.AddDate(0, 0, -offset)
}

// InWeek reports whether date falls within the seven days starting at weekStart.
func InWeek(date, weekStart time.Time) bool {
	d := date.UTC()
	return !d.Before(weekStart) && d.Before(weekStart.AddDate(0, 0, 7))
}

// ValidateEntry checks a single entry against the week it belongs to.
// Task existence is checked separately, against the task registry.
func ValidateEntry(e TimesheetEntry, weekStart time.Time) error {
	if e.TaskID == "" {
		return fmt.Errorf("%w: task id is required", ErrInvalidEntry)
	}
	if e.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidEntry)
	}
	if !InWeek(e.Date, weekStart) {
		return fmt.Errorf("%w: date %s is outside week starting %s",
			ErrInvalidEntry, e.Date.Format("2006-01-02"), weekStart.Format("2006-01-02"))
	}
	if e.ActualHours < 0 {
		return fmt.Errorf("%w: actual hours cannot be negative", ErrInvalidEntry)
	}
	if e.ActualHours > MaxDailyHours {
		return fmt.Errorf("%w: actual hours cannot exceed %d per day", ErrInvalidEntry, MaxDailyHours)
	}
	return nil
}
