package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
)

const collectionTimesheets = "timesheets"

type TimesheetRepository struct {
	col *mongo.Collection
}

func NewTimesheetRepository(db *mongo.Database) *TimesheetRepository {
	return &TimesheetRepository{col: db.Collection(collectionTimesheets)}
}

type entryDoc struct {
	TaskID      string    `bson:"task_id"`
	Date        time.Time `bson:"date"`
	ActualHours float64   `bson:"actual_hours"`
}

type timesheetDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	UserID    string             `bson:"user_id"`
	WeekStart time.Time          `bson:"week_start"`
	Entries   []entryDoc         `bson:"entries"`
	Status    string             `bson:"status"`
	CreatedAt time.Time          `bson:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at"`
}

func (d timesheetDoc) toDomain() *domain.Timesheet {
	entries := make([]domain.TimesheetEntry, 0, len(d.Entries))
	for _, e := range d.Entries {
		entries = append(entries, domain.TimesheetEntry{
			TaskID:      e.TaskID,
			Date:        e.Date,
			ActualHours: e.ActualHours,
		})
	}
	return &domain.Timesheet{
		ID:        d.ID.Hex(),
		UserID:    d.UserID,
		WeekStart: d.WeekStart,
		Entries:   entries,
		Status:    domain.TimesheetStatus(d.Status),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func toEntryDocs(entries []domain.TimesheetEntry) []entryDoc {
	docs := make([]entryDoc, 0, len(entries))
	for _, e := range entries {
		docs = append(docs, entryDoc{
			TaskID:      e.TaskID,
			Date:        e.Date,
			ActualHours: e.ActualHours,
		})
	}
	return docs
}

// SaveDraft creates or replaces the draft for (userID, weekStart) in a single
// conditional upsert. The filter carries status=draft, so an existing
// submitted sheet never matches; the upsert's insert attempt then collides
// with the unique (user_id, week_start) index and surfaces as
// domain.ErrTimesheetSubmitted. Status and entries are always written in the
// same update document, so the two can never disagree.
func (r *TimesheetRepository) SaveDraft(ctx context.Context, userID string, weekStart time.Time, entries []domain.TimesheetEntry) (*domain.Timesheet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	now := time.Now().UTC()
	filter := bson.M{
		"user_id":    userID,
		"week_start": weekStart,
		"status":     string(domain.StatusDraft),
	}
	update := bson.M{
		"$set":         bson.M{"entries": toEntryDocs(entries), "updated_at": now},
		"$setOnInsert": bson.M{"created_at": now},
	}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var doc timesheetDoc
	if err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrTimesheetSubmitted
		}
		return nil, fmt.Errorf("save timesheet: %w", err)
	}
	return doc.toDomain(), nil
}

// Submit flips the draft for (userID, weekStart) to submitted, entries
// untouched. The status guard in the filter makes the transition happen at
// most once even under concurrent submits.
func (r *TimesheetRepository) Submit(ctx context.Context, userID string, weekStart time.Time) (*domain.Timesheet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter := bson.M{
		"user_id":    userID,
		"week_start": weekStart,
		"status":     string(domain.StatusDraft),
	}
	update := bson.M{
		"$set": bson.M{
			"status":     string(domain.StatusSubmitted),
			"updated_at": time.Now().UTC(),
		},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var doc timesheetDoc
	err := r.col.FindOneAndUpdate(ctx, filter, update, opts).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("submit timesheet: %w", err)
	}

	// No draft matched: distinguish "never saved" from "already submitted".
	count, countErr := r.col.CountDocuments(ctx, bson.M{"user_id": userID, "week_start": weekStart})
	if countErr != nil {
		return nil, fmt.Errorf("submit timesheet: %w", countErr)
	}
	if count > 0 {
		return nil, domain.ErrTimesheetSubmitted
	}
	return nil, domain.ErrTimesheetNotFound
}

func (r *TimesheetRepository) FindByUserWeek(ctx context.Context, userID string, weekStart time.Time) (*domain.Timesheet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var doc timesheetDoc
	err := r.col.FindOne(ctx, bson.M{"user_id": userID, "week_start": weekStart}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrTimesheetNotFound
		}
		return nil, fmt.Errorf("find timesheet: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *TimesheetRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Timesheet, error) {
	return r.find(ctx, bson.M{"user_id": userID})
}

func (r *TimesheetRepository) ListAll(ctx context.Context) ([]*domain.Timesheet, error) {
	return r.find(ctx, bson.M{})
}

func (r *TimesheetRepository) find(ctx context.Context, filter bson.M) ([]*domain.Timesheet, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "week_start", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list timesheets: %w", err)
	}
	defer cursor.Close(ctx)

	var sheets []*domain.Timesheet
	for cursor.Next(ctx) {
		var doc timesheetDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode timesheet: %w", err)
		}
		sheets = append(sheets, doc.toDomain())
	}
	return sheets, cursor.Err()
}

// EnsureIndexes creates the unique (user_id, week_start) index that backs the
// one-timesheet-per-week invariant, plus the status index used by reports.
func (r *TimesheetRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "week_start", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
