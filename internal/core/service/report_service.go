package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

// ReportCache abstracts the short-TTL cache for the manager overview (Redis).
type ReportCache interface {
	GetOverview(ctx context.Context) (*ports.ManagerReport, error)
	SetOverview(ctx context.Context, report *ports.ManagerReport) error
}

type reportService struct {
	timesheets ports.TimesheetRepository
	tasks      ports.TaskRepository
	users      ports.UserRepository
	cache      ReportCache
	now        func() time.Time
	log        zerolog.Logger
}

// NewReportService returns a ReportService implementation. cache may be nil,
// in which case every overview is computed fresh.
func NewReportService(
	timesheets ports.TimesheetRepository,
	tasks ports.TaskRepository,
	users ports.UserRepository,
	cache ReportCache,
	log zerolog.Logger,
) ports.ReportService {
	return &reportService{
		timesheets: timesheets,
		tasks:      tasks,
		users:      users,
		cache:      cache,
		now:        time.Now,
		log:        log,
	}
}

// MyReport computes the associate's dashboard numbers for the current week.
func (s *reportService) MyReport(ctx context.Context, userID string) (*ports.AssociateReport, error) {
	myTasks, err := s.tasks.ListByAssignee(ctx, userID)
	if err != nil {
		return nil, err
	}
	sheets, err := s.timesheets.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	var allEntries []domain.TimesheetEntry
	for _, ts := range sheets {
		allEntries = append(allEntries, ts.Entries...)
	}

	logged := make(map[string]struct{}, len(allEntries))
	for _, e := range allEntries {
		logged[e.TaskID] = struct{}{}
	}
	completed := 0
	for _, t := range myTasks {
		if _, ok := logged[t.ID]; ok {
			completed++
		}
	}

	weekStart := domain.WeekOf(s.now())
	var weekTasks []domain.Task
	for _, t := range myTasks {
		if domain.InWeek(t.Date, weekStart) {
			weekTasks = append(weekTasks, *t)
		}
	}

	report := &ports.AssociateReport{
		TasksCompleted:   completed,
		TasksInProgress:  len(myTasks) - completed,
		HoursLogged:      domain.WeeklyTotal(allEntries),
		WeeklyCompletion: domain.WeeklyCompletion(weekTasks, allEntries),
		DailyTotals:      make(map[string]float64, 7),
	}
	for i := 0; i < 7; i++ {
		day := weekStart.AddDate(0, 0, i)
		report.DailyTotals[day.Format(dayKeyFormat)] = domain.DailyTotal(allEntries, day)
	}
	return report, nil
}

// Overview computes the manager dashboard across every associate, task, and
// timesheet. The result is served from cache when a fresh snapshot exists.
func (s *reportService) Overview(ctx context.Context) (*ports.ManagerReport, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetOverview(ctx); err != nil {
			s.log.Warn().Err(err).Msg("report cache read failed, computing fresh")
		} else if cached != nil {
			return cached, nil
		}
	}

	associates, err := s.users.ListByRole(ctx, domain.RoleAssociate)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.List(ctx)
	if err != nil {
		return nil, err
	}
	sheets, err := s.timesheets.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	var planned float64
	for _, t := range tasks {
		planned += t.EstimatedHours
	}
	var logged float64
	pending := 0
	for _, ts := range sheets {
		logged += domain.WeeklyTotal(ts.Entries)
		if ts.Status == domain.StatusDraft {
			pending++
		}
	}

	report := &ports.ManagerReport{
		TotalAssociates:   len(associates),
		TotalTasks:        len(tasks),
		TotalHoursPlanned: planned,
		TotalHoursLogged:  logged,
		Utilization:       domain.Utilization(logged, planned),
		Variance:          domain.Variance(logged, planned),
		PendingTimesheets: pending,
	}

	if s.cache != nil {
		if err := s.cache.SetOverview(ctx, report); err != nil {
			s.log.Warn().Err(err).Msg("failed to cache report overview")
		}
	}
	return report, nil
}
