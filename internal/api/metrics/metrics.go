// Package metrics defines and registers all custom Prometheus metrics for the
// timesheet API. It is the single source of truth for metric names, labels,
// and help strings.
//
// Metrics register themselves with the default Prometheus registry via
// promauto; the /metrics endpoint exposes them.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "timesheet"

// ── Timesheet metrics ─────────────────────────────────────────────────────────

// SavesTotal counts successful draft saves.
var SavesTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "saves_total",
		Help:      "Total number of timesheet drafts saved.",
	},
)

// SubmitsTotal counts successful draft→submitted transitions.
var SubmitsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "submits_total",
		Help:      "Total number of timesheets submitted.",
	},
)

// ConflictsTotal counts operations rejected because the sheet was already
// submitted.
// Label:
//   - op: "save" or "submit"
var ConflictsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "conflicts_total",
		Help:      "Total number of edits rejected on submitted timesheets.",
	},
	[]string{"op"},
)

// WeeklyHoursAtSubmit observes the weekly total of each submitted timesheet.
var WeeklyHoursAtSubmit = promauto.NewHistogram(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "weekly_hours_at_submit",
		Help:      "Distribution of total logged hours per submitted week.",
		Buckets:   []float64{8, 16, 24, 32, 40, 48, 56, 64},
	},
)

// ── Task metrics ──────────────────────────────────────────────────────────────

// TasksAssignedTotal counts tasks created by managers.
var TasksAssignedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tasks_assigned_total",
		Help:      "Total number of tasks assigned to associates.",
	},
)

// ── Report metrics ────────────────────────────────────────────────────────────

// ReportCacheTotal counts manager overview cache lookups.
// Label:
//   - result: "hit" or "miss"
var ReportCacheTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "report_cache_total",
		Help:      "Total number of report cache lookups, labelled by result (hit/miss).",
	},
	[]string{"result"},
)
