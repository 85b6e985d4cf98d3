package handler

import (
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

// --- Request → Service input ---

func toSaveInput(req saveTimesheetRequest, userID string) (ports.SaveTimesheetInput, error) {
	weekStart, err := parseDate(req.WeekStart)
	if err != nil {
		return ports.SaveTimesheetInput{}, err
	}

	entries := make([]ports.EntryInput, 0, len(req.Entries))
	for _, e := range req.Entries {
		date, err := parseDate(e.Date)
		if err != nil {
			return ports.SaveTimesheetInput{}, err
		}
		entries = append(entries, ports.EntryInput{
			TaskID:      e.TaskID,
			Date:        date,
			ActualHours: e.ActualHours,
		})
	}

	return ports.SaveTimesheetInput{
		UserID:    userID,
		WeekStart: weekStart,
		Entries:   entries,
	}, nil
}

// --- Service result → HTTP response ---

func toTimesheetResponse(v *ports.TimesheetView) timesheetResponse {
	entries := make([]entryResponse, 0, len(v.Entries))
	for _, e := range v.Entries {
		entries = append(entries, entryResponse{
			TaskID:          e.TaskID,
			TaskDescription: e.TaskDescription,
			EstimatedHours:  e.EstimatedHours,
			Date:            e.Date.UTC(),
			ActualHours:     e.ActualHours,
		})
	}

	return timesheetResponse{
		ID:           v.ID,
		UserID:       v.UserID,
		WeekStart:    v.WeekStart.UTC(),
		Status:       v.Status,
		Entries:      entries,
		WeeklyTotal:  v.WeeklyTotal,
		DailyTotals:  v.DailyTotals,
		PlannedHours: v.PlannedHours,
		Variance:     v.Variance,
		Utilization:  v.Utilization,
	}
}

func toTimesheetDetailResponse(d ports.TimesheetDetail) timesheetDetailResponse {
	return timesheetDetailResponse{
		timesheetResponse: toTimesheetResponse(&d.TimesheetView),
		UserName:          d.UserName,
		UserEmail:         d.UserEmail,
	}
}
