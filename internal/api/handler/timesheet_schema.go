package handler

import (
	"fmt"
	"time"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Message string `json:"message"`
}

// --- Request types ---

type entryRequest struct {
	TaskID      string  `json:"task_id"      validate:"required"`
	Date        string  `json:"date"         validate:"required"`
	ActualHours float64 `json:"actual_hours" validate:"gte=0,lte=24"`
}

type saveTimesheetRequest struct {
	WeekStart string         `json:"week_start" validate:"required"`
	// required rejects a missing/null entries field; an explicit empty array
	// is a valid save that clears the draft.
	Entries   []entryRequest `json:"entries"    validate:"required,dive"`
}

type submitTimesheetRequest struct {
	WeekStart string `json:"week_start" validate:"required"`
}

// --- Response types ---

// Response-only types owned by the transport layer. These are intentionally
// separate from ports/domain types so the JSON contract is not coupled to
// internal service changes.

type entryResponse struct {
	TaskID          string    `json:"task_id"`
	TaskDescription string    `json:"task_description,omitempty"`
	EstimatedHours  float64   `json:"estimated_hours,omitempty"`
	Date            time.Time `json:"date"`
	ActualHours     float64   `json:"actual_hours"`
}

// timesheetResponse carries the sheet plus every derived aggregate. The
// aggregates are authoritative; clients render them as-is.
type timesheetResponse struct {
	ID           string             `json:"id"`
	UserID       string             `json:"user_id"`
	WeekStart    time.Time          `json:"week_start"`
	Status       string             `json:"status"`
	Entries      []entryResponse    `json:"entries"`
	WeeklyTotal  float64            `json:"weekly_total"`
	DailyTotals  map[string]float64 `json:"daily_totals"`
	PlannedHours float64            `json:"planned_hours"`
	Variance     float64            `json:"variance"`
	Utilization  int                `json:"utilization"`
}

// timesheetDetailResponse is the manager view with the owner resolved.
type timesheetDetailResponse struct {
	timesheetResponse
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
}

type saveTimesheetResponse struct {
	Message   string            `json:"message"`
	Timesheet timesheetResponse `json:"timesheet"`
}

type listTimesheetsResponse struct {
	Timesheets []timesheetResponse `json:"timesheets"`
}

type listAllTimesheetsResponse struct {
	Timesheets []timesheetDetailResponse `json:"timesheets"`
}

// parseDate accepts a plain calendar date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("invalid date: %q", s)
}
