package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
	"github.com/vishwesh2904/timesheet-system/internal/core/ports"
)

type stubTimesheetService struct {
	saveFn     func(ctx context.Context, input ports.SaveTimesheetInput) (*ports.TimesheetView, error)
	submitFn   func(ctx context.Context, input ports.SubmitTimesheetInput) (*ports.TimesheetView, error)
	listMineFn func(ctx context.Context, userID string) ([]ports.TimesheetView, error)
	listAllFn  func(ctx context.Context) ([]ports.TimesheetDetail, error)
}

func (s *stubTimesheetService) Save(ctx context.Context, input ports.SaveTimesheetInput) (*ports.TimesheetView, error) {
	return s.saveFn(ctx, input)
}

func (s *stubTimesheetService) Submit(ctx context.Context, input ports.SubmitTimesheetInput) (*ports.TimesheetView, error) {
	return s.submitFn(ctx, input)
}

func (s *stubTimesheetService) ListMine(ctx context.Context, userID string) ([]ports.TimesheetView, error) {
	return s.listMineFn(ctx, userID)
}

func (s *stubTimesheetService) ListAll(ctx context.Context) ([]ports.TimesheetDetail, error) {
	return s.listAllFn(ctx)
}

func sampleView() *ports.TimesheetView {
	weekStart := time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC)
	return &ports.TimesheetView{
		ID:        "ts1",
		UserID:    "u1",
		WeekStart: weekStart,
		Status:    string(domain.StatusDraft),
		Entries: []ports.EntryView{
			{TaskID: "t1", TaskDescription: "Quarterly report", EstimatedHours: 8, Date: weekStart, ActualHours: 4},
		},
		WeeklyTotal:  4,
		DailyTotals:  map[string]float64{"2024-01-01": 4},
		PlannedHours: 8,
		Variance:     -4,
		Utilization:  50,
	}
}

func newTimesheetContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("user_id", "u1")
	c.Set("role", domain.RoleAssociate)
	return c, rec
}

func TestTimesheetHandler_Save(t *testing.T) {
	var captured ports.SaveTimesheetInput
	svc := &stubTimesheetService{
		saveFn: func(_ context.Context, input ports.SaveTimesheetInput) (*ports.TimesheetView, error) {
			captured = input
			return sampleView(), nil
		},
	}
	h := NewTimesheetHandler(svc)

	body := `{"week_start":"2024-01-01","entries":[{"task_id":"t1","date":"2024-01-01","actual_hours":4}]}`
	c, rec := newTimesheetContext(t, http.MethodPost, "/api/timesheets/save", body)

	if err := h.Save(c); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.UserID != "u1" {
		t.Fatalf("expected caller identity forwarded, got %q", captured.UserID)
	}
	if len(captured.Entries) != 1 || captured.Entries[0].TaskID != "t1" {
		t.Fatalf("entries not forwarded: %+v", captured.Entries)
	}

	var resp saveTimesheetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Timesheet.WeeklyTotal != 4 || resp.Timesheet.Utilization != 50 {
		t.Fatalf("aggregates missing from response: %+v", resp.Timesheet)
	}
}

func TestTimesheetHandler_Save_ValidationFailures(t *testing.T) {
	svc := &stubTimesheetService{
		saveFn: func(context.Context, ports.SaveTimesheetInput) (*ports.TimesheetView, error) {
			t.Fatal("service must not be called on invalid payload")
			return nil, nil
		},
	}
	h := NewTimesheetHandler(svc)

	cases := []struct {
		name string
		body string
	}{
		{"missing week_start", `{"entries":[]}`},
		{"missing entries field", `{"week_start":"2024-01-01"}`},
		{"hours over cap", `{"week_start":"2024-01-01","entries":[{"task_id":"t1","date":"2024-01-01","actual_hours":25}]}`},
		{"negative hours", `{"week_start":"2024-01-01","entries":[{"task_id":"t1","date":"2024-01-01","actual_hours":-1}]}`},
		{"bad date", `{"week_start":"yesterday","entries":[]}`},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := newTimesheetContext(t, http.MethodPost, "/api/timesheets/save", tc.body)
			err := h.Save(c)
			httpErr, ok := err.(*echo.HTTPError)
			if !ok {
				t.Fatalf("expected *echo.HTTPError, got %v", err)
			}
			if httpErr.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", httpErr.Code)
			}
		})
	}
}

func TestTimesheetHandler_Save_SubmittedConflict(t *testing.T) {
	svc := &stubTimesheetService{
		saveFn: func(context.Context, ports.SaveTimesheetInput) (*ports.TimesheetView, error) {
			return nil, domain.ErrTimesheetSubmitted
		},
	}
	h := NewTimesheetHandler(svc)

	body := `{"week_start":"2024-01-01","entries":[]}`
	c, _ := newTimesheetContext(t, http.MethodPost, "/api/timesheets/save", body)

	// The domain error propagates untouched; the central error handler maps
	// it to 409.
	if err := h.Save(c); !errors.Is(err, domain.ErrTimesheetSubmitted) {
		t.Fatalf("expected ErrTimesheetSubmitted, got %v", err)
	}
}

func TestTimesheetHandler_Save_MissingClaims(t *testing.T) {
	h := NewTimesheetHandler(&stubTimesheetService{})

	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(http.MethodPost, "/api/timesheets/save", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	c := e.NewContext(req, httptest.NewRecorder())

	err := h.Save(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without claims, got %v", err)
	}
}

func TestTimesheetHandler_Submit(t *testing.T) {
	view := sampleView()
	view.Status = string(domain.StatusSubmitted)
	var captured ports.SubmitTimesheetInput
	svc := &stubTimesheetService{
		submitFn: func(_ context.Context, input ports.SubmitTimesheetInput) (*ports.TimesheetView, error) {
			captured = input
			return view, nil
		},
	}
	h := NewTimesheetHandler(svc)

	c, rec := newTimesheetContext(t, http.MethodPost, "/api/timesheets/submit", `{"week_start":"2024-01-01"}`)
	if err := h.Submit(c); err != nil {
		t.Fatalf("submit failed: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if captured.UserID != "u1" {
		t.Fatalf("expected caller identity forwarded, got %q", captured.UserID)
	}

	var resp saveTimesheetResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Timesheet.Status != string(domain.StatusSubmitted) {
		t.Fatalf("expected submitted status, got %s", resp.Timesheet.Status)
	}
}

func TestTimesheetHandler_Submit_NotFound(t *testing.T) {
	svc := &stubTimesheetService{
		submitFn: func(context.Context, ports.SubmitTimesheetInput) (*ports.TimesheetView, error) {
			return nil, domain.ErrTimesheetNotFound
		},
	}
	h := NewTimesheetHandler(svc)

	c, _ := newTimesheetContext(t, http.MethodPost, "/api/timesheets/submit", `{"week_start":"2024-01-01"}`)
	if err := h.Submit(c); !errors.Is(err, domain.ErrTimesheetNotFound) {
		t.Fatalf("expected ErrTimesheetNotFound, got %v", err)
	}
}

func TestTimesheetHandler_My(t *testing.T) {
	svc := &stubTimesheetService{
		listMineFn: func(_ context.Context, userID string) ([]ports.TimesheetView, error) {
			if userID != "u1" {
				t.Fatalf("expected caller id, got %q", userID)
			}
			return []ports.TimesheetView{*sampleView()}, nil
		},
	}
	h := NewTimesheetHandler(svc)

	c, rec := newTimesheetContext(t, http.MethodGet, "/api/timesheets/my", "")
	if err := h.My(c); err != nil {
		t.Fatalf("my failed: %v", err)
	}
	var resp listTimesheetsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Timesheets) != 1 {
		t.Fatalf("expected 1 timesheet, got %d", len(resp.Timesheets))
	}
}

func TestTimesheetHandler_All(t *testing.T) {
	svc := &stubTimesheetService{
		listAllFn: func(context.Context) ([]ports.TimesheetDetail, error) {
			return []ports.TimesheetDetail{
				{TimesheetView: *sampleView(), UserName: "Asha", UserEmail: "asha@example.com"},
			}, nil
		},
	}
	h := NewTimesheetHandler(svc)

	c, rec := newTimesheetContext(t, http.MethodGet, "/api/timesheets/all", "")
	if err := h.All(c); err != nil {
		t.Fatalf("all failed: %v", err)
	}
	var resp listAllTimesheetsResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Timesheets) != 1 || resp.Timesheets[0].UserName != "Asha" {
		t.Fatalf("expected owner resolved, got %+v", resp.Timesheets)
	}
}
