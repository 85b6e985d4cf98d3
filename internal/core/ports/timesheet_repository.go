package ports

import (
	"context"
	"time"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
)

// TimesheetRepository defines persistence operations for weekly timesheets.
//
// The (user_id, week_start) pair is the natural key: implementations must
// back it with a unique index so the one-sheet-per-week invariant holds even
// under concurrent saves.
type TimesheetRepository interface {
	// SaveDraft atomically creates or replaces the draft for (userID,
	// weekStart) with the given entry set. The write must be a single
	// conditional upsert guarded by status=draft, never a read-then-write
	// pair. Returns domain.ErrTimesheetSubmitted when a submitted sheet
	// already occupies the week.
	SaveDraft(ctx context.Context, userID string, weekStart time.Time, entries []domain.TimesheetEntry) (*domain.Timesheet, error)

	// Submit transitions the draft for (userID, weekStart) to submitted,
	// leaving entries untouched. Returns domain.ErrTimesheetNotFound when no
	// sheet exists for the week and domain.ErrTimesheetSubmitted when it was
	// already submitted.
	Submit(ctx context.Context, userID string, weekStart time.Time) (*domain.Timesheet, error)

	FindByUserWeek(ctx context.Context, userID string, weekStart time.Time) (*domain.Timesheet, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Timesheet, error)
	ListAll(ctx context.Context) ([]*domain.Timesheet, error)
}
