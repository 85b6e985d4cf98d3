package ports

import (
	"context"
	"time"
)

// EntryInput is one validated (task, date, hours) record supplied on save.
type EntryInput struct {
	TaskID      string
	Date        time.Time
	ActualHours float64
}

// SaveTimesheetInput carries everything needed to create or replace a draft.
// UserID comes from the caller's resolved identity, never from the body.
type SaveTimesheetInput struct {
	UserID    string
	WeekStart time.Time
	Entries   []EntryInput
}

// SubmitTimesheetInput identifies the draft to transition to submitted.
type SubmitTimesheetInput struct {
	UserID    string
	WeekStart time.Time
}

// EntryView is an entry enriched with its task reference resolved.
type EntryView struct {
	TaskID          string
	TaskDescription string
	EstimatedHours  float64
	Date            time.Time
	ActualHours     float64
}

// TimesheetView is a timesheet with all derived aggregates attached. The
// aggregates are authoritative: clients render them as-is and never recompute
// from raw entries.
type TimesheetView struct {
	ID           string
	UserID       string
	WeekStart    time.Time
	Status       string
	Entries      []EntryView
	WeeklyTotal  float64
	DailyTotals  map[string]float64 // keyed by YYYY-MM-DD
	PlannedHours float64            // estimated hours of the week's assigned tasks
	Variance     float64
	Utilization  int
}

// TimesheetDetail is the manager-facing view with the owner resolved.
type TimesheetDetail struct {
	TimesheetView
	UserName  string
	UserEmail string
}

// TimesheetService defines the engine's use-case operations.
type TimesheetService interface {
	Save(ctx context.Context, input SaveTimesheetInput) (*TimesheetView, error)
	Submit(ctx context.Context, input SubmitTimesheetInput) (*TimesheetView, error)
	ListMine(ctx context.Context, userID string) ([]TimesheetView, error)
	// ListAll returns every timesheet with user and task references resolved.
	ListAll(ctx context.Context) ([]TimesheetDetail, error)
}
