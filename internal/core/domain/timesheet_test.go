package domain

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestStatus_CanTransitionTo(t *testing.T) {
	if !StatusDraft.CanTransitionTo(StatusSubmitted) {
		t.Fatalf("draft must be allowed to transition to submitted")
	}
	if StatusSubmitted.CanTransitionTo(StatusDraft) {
		t.Fatalf("submitted is terminal, transition back to draft must be invalid")
	}
	if StatusSubmitted.CanTransitionTo(StatusSubmitted) {
		t.Fatalf("submitted to submitted must be invalid")
	}
}

func TestStatus_Editable(t *testing.T) {
	if !StatusDraft.Editable() {
		t.Fatalf("draft must be editable")
	}
	if StatusSubmitted.Editable() {
		t.Fatalf("submitted must not be editable")
	}
}

func TestWeekOf_NormalisesToMonday(t *testing.T) {
	monday := date(2024, time.January, 1) // 2024-01-01 is a Monday

	cases := []struct {
		name string
		in   time.Time
	}{
		{"monday itself", monday},
		{"wednesday", date(2024, time.January, 3)},
		{"sunday", date(2024, time.January, 7)},
		{"mid-day timestamp", time.Date(2024, time.January, 4, 15, 30, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := WeekOf(tc.in)
			if !got.Equal(monday) {
				t.Fatalf("WeekOf(%v) = %v, want %v", tc.in, got, monday)
			}
		})
	}
}

func TestWeekOf_SundayBelongsToPrecedingMonday(t *testing.T) {
	// 2024-02-04 is a Sunday; its ISO week starts 2024-01-29.
	got := WeekOf(date(2024, time.February, 4))
	want := date(2024, time.January, 29)
	if !got.Equal(want) {
		t.Fatalf("WeekOf(sunday) = %v, want %v", got, want)
	}
}

func TestInWeek(t *testing.T) {
	weekStart := date(2024, time.January, 1)

	if !InWeek(weekStart, weekStart) {
		t.Fatalf("week start itself must be in week")
	}
	if !InWeek(date(2024, time.January, 7), weekStart) {
		t.Fatalf("sunday must be in week")
	}
	if InWeek(date(2024, time.January, 8), weekStart) {
		t.Fatalf("next monday must not be in week")
	}
	if InWeek(date(2023, time.December, 31), weekStart) {
		t.Fatalf("previous sunday must not be in week")
	}
}

func TestValidateEntry(t *testing.T) {
	weekStart := date(2024, time.January, 1)
	valid := TimesheetEntry{TaskID: "t1", Date: date(2024, time.January, 3), ActualHours: 8}

	if err := ValidateEntry(valid, weekStart); err != nil {
		t.Fatalf("valid entry rejected: %v", err)
	}

	cases := []struct {
		name  string
		entry TimesheetEntry
	}{
		{"missing task id", TimesheetEntry{Date: valid.Date, ActualHours: 8}},
		{"missing date", TimesheetEntry{TaskID: "t1", ActualHours: 8}},
		{"date outside week", TimesheetEntry{TaskID: "t1", Date: date(2024, time.January, 10), ActualHours: 8}},
		{"negative hours", TimesheetEntry{TaskID: "t1", Date: valid.Date, ActualHours: -1}},
		{"over the daily cap", TimesheetEntry{TaskID: "t1", Date: valid.Date, ActualHours: 25}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateEntry(tc.entry, weekStart)
			if err == nil {
				t.Fatalf("expected rejection")
			}
			if !errors.Is(err, ErrInvalidEntry) {
				t.Fatalf("expected ErrInvalidEntry, got %v", err)
			}
		})
	}
}

func TestValidateEntry_AllowsZeroHoursAndFullDay(t *testing.T) {
	weekStart := date(2024, time.January, 1)
	for _, hours := range []float64{0, 24} {
		entry := TimesheetEntry{TaskID: "t1", Date: weekStart, ActualHours: hours}
		if err := ValidateEntry(entry, weekStart); err != nil {
			t.Fatalf("hours=%v rejected: %v", hours, err)
		}
	}
}
