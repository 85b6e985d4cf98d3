package domain

import (
	"math"
	"time"
)

// Pure aggregation functions over timesheet entries. These are the single
// authoritative implementation: API responses carry their results as derived
// read-only fields and clients never recompute them from raw entries.

// DailyTotal sums actual hours for entries logged on the given calendar day (UTC).
func DailyTotal(entries []TimesheetEntry, day time.Time) float64 {
	y, m, d := day.UTC().Date()
	var total float64
	for _, e := range entries {
		ey, em, ed := e.Date.UTC().Date()
		if ey == y && em == m && ed == d {
			total += e.ActualHours
		}
	}
	return total
}

// WeeklyTotal sums actual hours across all entries in the timesheet.
func WeeklyTotal(entries []TimesheetEntry) float64 {
	var total float64
	for _, e := range entries {
		total += e.ActualHours
	}
	return total
}

// TaskTotal sums actual hours for entries referencing the given task.
func TaskTotal(entries []TimesheetEntry, taskID string) float64 {
	var total float64
	for _, e := range entries {
		if e.TaskID == taskID {
			total += e.ActualHours
		}
	}
	return total
}

// Variance is actual minus estimated hours; positive means overrun.
func Variance(actualTotal, estimatedTotal float64) float64 {
	return actualTotal - estimatedTotal
}

// Utilization is actual hours as a rounded percentage of planned hours.
// Returns 0 when nothing was planned.
func Utilization(actualTotal, plannedTotal float64) int {
	if plannedTotal <= 0 {
		return 0
	}
	return int(math.Round(actualTotal * 100 / plannedTotal))
}

// WeeklyCompletion is the percentage of the week's tasks that have at least
// one logged entry. Returns 0 when the week has no tasks.
func WeeklyCompletion(tasks []Task, entries []TimesheetEntry) float64 {
	if len(tasks) == 0 {
		return 0
	}
	logged := make(map[string]struct{}, len(entries))
	for _, e := range entries {
		logged[e.TaskID] = struct{}{}
	}
	var done int
	for _, t := range tasks {
		if _, ok := logged[t.ID]; ok {
			done++
		}
	}
	return float64(done) / float64(len(tasks)) * 100
}
