package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

const dayKeyFormat = "2006-01-02"

// TimesheetService is the engine that owns the weekly timesheet lifecycle:
// draft saves, the single draft→submitted transition, and every derived
// aggregate the API exposes.
type TimesheetService struct {
	timesheets ports.TimesheetRepository
	tasks      ports.TaskRepository
	users      ports.UserRepository
	logger     zerolog.Logger
}

func NewTimesheetService(
	timesheets ports.TimesheetRepository,
	tasks ports.TaskRepository,
	users ports.UserRepository,
	logger zerolog.Logger,
) *TimesheetService {
	return &TimesheetService{timesheets: timesheets, tasks: tasks, users: users, logger: logger}
}

// Save validates the entry set and atomically creates or replaces the
// caller's draft for the week. Entries are replaced wholesale, never merged.
// Saving over a submitted week fails with domain.ErrTimesheetSubmitted and
// leaves the stored sheet untouched.
func (s *TimesheetService) Save(ctx context.Context, input ports.SaveTimesheetInput) (*ports.TimesheetView, error) {
	if input.WeekStart.IsZero() {
		return nil, fmt.Errorf("%w: week start is required", domain.ErrInvalidEntry)
	}
	weekStart := domain.WeekOf(input.WeekStart)

	entries := make([]domain.TimesheetEntry, 0, len(input.Entries))
	for _, in := range input.Entries {
		entries = append(entries, domain.TimesheetEntry{
			TaskID:      in.TaskID,
			Date:        in.Date.UTC(),
			ActualHours: in.ActualHours,
		})
	}

	// All validation happens before any write; a bad entry rejects the whole
	// save rather than partially applying.
	for _, e := range entries {
		if err := domain.ValidateEntry(e, weekStart); err != nil {
			return nil, err
		}
	}
	referenced, err := s.tasks.FindByIDs(ctx, entryTaskIDs(entries))
	if err != nil {
		return nil, err
	}
	for _, e := range entries {
		task, ok := referenced[e.TaskID]
		if !ok {
			return nil, fmt.Errorf("%w: unknown task %s", domain.ErrInvalidEntry, e.TaskID)
		}
		if task.AssignedTo != input.UserID {
			return nil, fmt.Errorf("%w: task %s is not assigned to you", domain.ErrInvalidEntry, e.TaskID)
		}
	}

	saved, err := s.timesheets.SaveDraft(ctx, input.UserID, weekStart, entries)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("user_id", input.UserID).
			Time("week_start", weekStart).
			Msg("timesheet save rejected")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", input.UserID).
		Time("week_start", weekStart).
		Int("entries", len(entries)).
		Msg("timesheet draft saved")

	return s.buildView(ctx, saved, referenced)
}

// Submit transitions the caller's draft for the week to submitted. The
// transition happens exactly once; a replay reports the conflict without
// touching stored state.
func (s *TimesheetService) Submit(ctx context.Context, input ports.SubmitTimesheetInput) (*ports.TimesheetView, error) {
	if input.WeekStart.IsZero() {
		return nil, fmt.Errorf("%w: week start is required", domain.ErrInvalidEntry)
	}
	weekStart := domain.WeekOf(input.WeekStart)

	submitted, err := s.timesheets.Submit(ctx, input.UserID, weekStart)
	if err != nil {
		s.logger.Warn().Err(err).
			Str("user_id", input.UserID).
			Time("week_start", weekStart).
			Msg("timesheet submit rejected")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", input.UserID).
		Time("week_start", weekStart).
		Float64("weekly_total", domain.WeeklyTotal(submitted.Entries)).
		Msg("timesheet submitted")

	return s.buildView(ctx, submitted, nil)
}

// ListMine returns the caller's timesheets with aggregates attached.
func (s *TimesheetService) ListMine(ctx context.Context, userID string) ([]ports.TimesheetView, error) {
	sheets, err := s.timesheets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	myTasks, err := s.tasks.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	taskIndex := indexTasks(myTasks)

	views := make([]ports.TimesheetView, 0, len(sheets))
	for _, ts := range sheets {
		views = append(views, toView(ts, taskIndex, plannedHours(myTasks, ts.WeekStart)))
	}
	return views, nil
}

// ListAll returns every timesheet with user and task references resolved.
func (s *TimesheetService) ListAll(ctx context.Context) ([]ports.TimesheetDetail, error) {
	sheets, err := s.timesheets.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	userIDs := make([]string, 0, len(sheets))
	for _, ts := range sheets {
		userIDs = append(userIDs, ts.UserID)
	}
	users, err := s.users.FindByIDs(ctx, userIDs)
	if err != nil {
		return nil, err
	}

	allTasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	taskIndex := indexTasks(allTasks)
	byAssignee := make(map[string][]*domain.Task)
	for _, t := range allTasks {
		byAssignee[t.AssignedTo] = append(byAssignee[t.AssignedTo], t)
	}

	details := make([]ports.TimesheetDetail, 0, len(sheets))
	for _, ts := range sheets {
		d := ports.TimesheetDetail{
			TimesheetView: toView(ts, taskIndex, plannedHours(byAssignee[ts.UserID], ts.WeekStart)),
		}
		if u, ok := users[ts.UserID]; ok {
			d.UserName = u.Name
			d.UserEmail = u.Email
		}
		details = append(details, d)
	}
	return details, nil
}

// buildView resolves the sheet's task references (reusing referenced when the
// caller already fetched them) and attaches the derived aggregates.
func (s *TimesheetService) buildView(ctx context.Context, ts *domain.Timesheet, referenced map[string]*domain.Task) (*ports.TimesheetView, error) {
	if referenced == nil {
		var err error
		referenced, err = s.tasks.FindByIDs(ctx, entryTaskIDs(ts.Entries))
		if err != nil {
			return nil, err
		}
	}

	weekTasks, err := s.tasks.ListByAssigneeInRange(ctx, ts.UserID, ts.WeekStart, ts.WeekStart.AddDate(0, 0, 7))
	if err != nil {
		return nil, err
	}

	var planned float64
	for _, t := range weekTasks {
		planned += t.EstimatedHours
	}

	view := toView(ts, referenced, planned)
	return &view, nil
}

func toView(ts *domain.Timesheet, tasks map[string]*domain.Task, planned float64) ports.TimesheetView {
	entries := make([]ports.EntryView, 0, len(ts.Entries))
	for _, e := range ts.Entries {
		ev := ports.EntryView{
			TaskID:      e.TaskID,
			Date:        e.Date,
			ActualHours: e.ActualHours,
		}
		if t, ok := tasks[e.TaskID]; ok {
			ev.TaskDescription = t.Description
			ev.EstimatedHours = t.EstimatedHours
		}
		entries = append(entries, ev)
	}

	total := domain.WeeklyTotal(ts.Entries)

	daily := make(map[string]float64, 7)
	for i := 0; i < 7; i++ {
		day := ts.WeekStart.AddDate(0, 0, i)
		daily[day.Format(dayKeyFormat)] = domain.DailyTotal(ts.Entries, day)
	}

	return ports.TimesheetView{
		ID:           ts.ID,
		UserID:       ts.UserID,
		WeekStart:    ts.WeekStart,
		Status:       string(ts.Status),
		Entries:      entries,
		WeeklyTotal:  total,
		DailyTotals:  daily,
		PlannedHours: planned,
		Variance:     domain.Variance(total, planned),
		Utilization:  domain.Utilization(total, planned),
	}
}

func entryTaskIDs(entries []domain.TimesheetEntry) []string {
	seen := make(map[string]struct{}, len(entries))
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if _, ok := seen[e.TaskID]; ok {
			continue
		}
		seen[e.TaskID] = struct{}{}
		ids = append(ids, e.TaskID)
	}
	return ids
}

func indexTasks(tasks []*domain.Task) map[string]*domain.Task {
	index := make(map[string]*domain.Task, len(tasks))
	for _, t := range tasks {
		index[t.ID] = t
	}
	return index
}

func plannedHours(tasks []*domain.Task, weekStart time.Time) float64 {
	var planned float64
	for _, t := range tasks {
		if domain.InWeek(t.Date, weekStart) {
			planned += t.EstimatedHours
		}
	}
	return planned
}
