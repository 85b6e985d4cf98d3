package ports

import "context"

// AssociateReport is the per-associate dashboard summary for the current week.
type AssociateReport struct {
	TasksCompleted   int                `json:"tasks_completed"`
	TasksInProgress  int                `json:"tasks_in_progress"`
	HoursLogged      float64            `json:"hours_logged"`
	WeeklyCompletion float64            `json:"weekly_completion"`
	DailyTotals      map[string]float64 `json:"daily_totals"`
}

// ManagerReport is the fleet-wide dashboard summary.
type ManagerReport struct {
	TotalAssociates   int     `json:"total_associates"`
	TotalTasks        int     `json:"total_tasks"`
	TotalHoursPlanned float64 `json:"total_hours_planned"`
	TotalHoursLogged  float64 `json:"total_hours_logged"`
	Utilization       int     `json:"utilization"`
	Variance          float64 `json:"variance"`
	PendingTimesheets int     `json:"pending_timesheets"`
}

// ReportService computes dashboard aggregates server-side so all clients see
// the same numbers.
type ReportService interface {
	MyReport(ctx context.Context, userID string) (*AssociateReport, error)
	Overview(ctx context.Context) (*ManagerReport, error)
}
