package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory stub repositories, mirroring the Mongo implementations' contracts
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	byID    map[string]*domain.User
	nextID  int
	findErr error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{byID: make(map[string]*domain.User)}
}

func (r *stubUserRepo) add(name, email, role string) *domain.User {
	r.nextID++
	u := &domain.User{
		ID:    fmt.Sprintf("u%d", r.nextID),
		Name:  name,
		Email: email,
		Role:  role,
	}
	r.byID[u.ID] = u
	return u
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == user.Email {
			return nil, domain.ErrUserExists
		}
	}
	r.nextID++
	clone := *user
	clone.ID = fmt.Sprintf("u%d", r.nextID)
	r.byID[clone.ID] = &clone
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.byID {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.User, error) {
	result := make(map[string]*domain.User)
	for _, id := range ids {
		if u, ok := r.byID[id]; ok {
			clone := *u
			result[id] = &clone
		}
	}
	return result, nil
}

func (r *stubUserRepo) ListByRole(_ context.Context, role string) ([]*domain.User, error) {
	var users []*domain.User
	for _, u := range r.byID {
		if u.Role == role {
			clone := *u
			users = append(users, &clone)
		}
	}
	return users, nil
}

type stubTaskRepo struct {
	tasks  []*domain.Task
	nextID int
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{}
}

func (r *stubTaskRepo) add(assignedTo string, estimatedHours float64, taskDate time.Time) *domain.Task {
	r.nextID++
	t := &domain.Task{
		ID:             fmt.Sprintf("t%d", r.nextID),
		Description:    fmt.Sprintf("task %d", r.nextID),
		EstimatedHours: estimatedHours,
		Date:           taskDate,
		AssignedTo:     assignedTo,
	}
	r.tasks = append(r.tasks, t)
	return t
}

func (r *stubTaskRepo) Create(_ context.Context, task *domain.Task) (*domain.Task, error) {
	r.nextID++
	clone := *task
	clone.ID = fmt.Sprintf("t%d", r.nextID)
	r.tasks = append(r.tasks, &clone)
	copied := clone
	return &copied, nil
}

func (r *stubTaskRepo) List(_ context.Context) ([]*domain.Task, error) {
	out := make([]*domain.Task, 0, len(r.tasks))
	for _, t := range r.tasks {
		clone := *t
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubTaskRepo) ListByAssignee(_ context.Context, userID string) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.AssignedTo == userID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) ListByAssigneeInRange(_ context.Context, userID string, from, to time.Time) ([]*domain.Task, error) {
	var out []*domain.Task
	for _, t := range r.tasks {
		if t.AssignedTo == userID && !t.Date.Before(from) && t.Date.Before(to) {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTaskRepo) FindByIDs(_ context.Context, ids []string) (map[string]*domain.Task, error) {
	result := make(map[string]*domain.Task)
	for _, id := range ids {
		for _, t := range r.tasks {
			if t.ID == id {
				clone := *t
				result[id] = &clone
			}
		}
	}
	return result, nil
}

// stubTimesheetRepo enforces the same contract as the Mongo repository: a
// guarded upsert for SaveDraft and a conditional status flip for Submit.
type stubTimesheetRepo struct {
	sheets  map[string]*domain.Timesheet // keyed by userID|weekStart
	nextID  int
	saveErr error
}

func newStubTimesheetRepo() *stubTimesheetRepo {
	return &stubTimesheetRepo{sheets: make(map[string]*domain.Timesheet)}
}

func sheetKey(userID string, weekStart time.Time) string {
	return userID + "|" + weekStart.Format("2006-01-02")
}

func (r *stubTimesheetRepo) SaveDraft(_ context.Context, userID string, weekStart time.Time, entries []domain.TimesheetEntry) (*domain.Timesheet, error) {
	if r.saveErr != nil {
		return nil, r.saveErr
	}
	key := sheetKey(userID, weekStart)
	if existing, ok := r.sheets[key]; ok {
		if existing.Status == domain.StatusSubmitted {
			return nil, domain.ErrTimesheetSubmitted
		}
		existing.Entries = append([]domain.TimesheetEntry(nil), entries...)
		clone := *existing
		return &clone, nil
	}
	r.nextID++
	ts := &domain.Timesheet{
		ID:        fmt.Sprintf("ts%d", r.nextID),
		UserID:    userID,
		WeekStart: weekStart,
		Entries:   append([]domain.TimesheetEntry(nil), entries...),
		Status:    domain.StatusDraft,
	}
	r.sheets[key] = ts
	clone := *ts
	return &clone, nil
}

func (r *stubTimesheetRepo) Submit(_ context.Context, userID string, weekStart time.Time) (*domain.Timesheet, error) {
	ts, ok := r.sheets[sheetKey(userID, weekStart)]
	if !ok {
		return nil, domain.ErrTimesheetNotFound
	}
	if ts.Status == domain.StatusSubmitted {
		return nil, domain.ErrTimesheetSubmitted
	}
	ts.Status = domain.StatusSubmitted
	clone := *ts
	return &clone, nil
}

func (r *stubTimesheetRepo) FindByUserWeek(_ context.Context, userID string, weekStart time.Time) (*domain.Timesheet, error) {
	ts, ok := r.sheets[sheetKey(userID, weekStart)]
	if !ok {
		return nil, domain.ErrTimesheetNotFound
	}
	clone := *ts
	return &clone, nil
}

func (r *stubTimesheetRepo) ListByUser(_ context.Context, userID string) ([]*domain.Timesheet, error) {
	var out []*domain.Timesheet
	for _, ts := range r.sheets {
		if ts.UserID == userID {
			clone := *ts
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (r *stubTimesheetRepo) ListAll(_ context.Context) ([]*domain.Timesheet, error) {
	var out []*domain.Timesheet
	for _, ts := range r.sheets {
		clone := *ts
		out = append(out, &clone)
	}
	return out, nil
}
