package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishwesh2904/timesheet-system/internal/core/domain"
)

const collectionTasks = "tasks"

type TaskRepository struct {
	col *mongo.Collection
}

func NewTaskRepository(db *mongo.Database) *TaskRepository {
	return &TaskRepository{col: db.Collection(collectionTasks)}
}

type taskDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	Description    string             `bson:"description"`
	EstimatedHours float64            `bson:"estimated_hours"`
	Date           time.Time          `bson:"date"`
	AssignedTo     string             `bson:"assigned_to"`
	CreatedBy      string             `bson:"created_by"`
	CreatedAt      time.Time          `bson:"created_at"`
}

func (d taskDoc) toDomain() *domain.Task {
	return &domain.Task{
		ID:             d.ID.Hex(),
		Description:    d.Description,
		EstimatedHours: d.EstimatedHours,
		Date:           d.Date,
		AssignedTo:     d.AssignedTo,
		CreatedBy:      d.CreatedBy,
		CreatedAt:      d.CreatedAt,
	}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) (*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := taskDoc{
		Description:    task.Description,
		EstimatedHours: task.EstimatedHours,
		Date:           task.Date,
		AssignedTo:     task.AssignedTo,
		CreatedBy:      task.CreatedBy,
		CreatedAt:      task.CreatedAt,
	}

	res, err := r.col.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert task: %w", err)
	}

	created := *task
	created.ID = res.InsertedID.(primitive.ObjectID).Hex()
	return &created, nil
}

func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	return r.find(ctx, bson.M{})
}

func (r *TaskRepository) ListByAssignee(ctx context.Context, userID string) ([]*domain.Task, error) {
	return r.find(ctx, bson.M{"assigned_to": userID})
}

func (r *TaskRepository) ListByAssigneeInRange(ctx context.Context, userID string, from, to time.Time) ([]*domain.Task, error) {
	return r.find(ctx, bson.M{
		"assigned_to": userID,
		"date":        bson.M{"$gte": from, "$lt": to},
	})
}

// FindByIDs returns the tasks matching ids, keyed by hex id. Invalid or
// unknown ids are skipped; the caller decides whether a miss is an error.
func (r *TaskRepository) FindByIDs(ctx context.Context, ids []string) (map[string]*domain.Task, error) {
	result := make(map[string]*domain.Task, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	cursor, err := r.col.Find(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return nil, fmt.Errorf("find tasks: %w", err)
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var doc taskDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		t := doc.toDomain()
		result[t.ID] = t
	}
	return result, cursor.Err()
}

func (r *TaskRepository) find(ctx context.Context, filter bson.M) ([]*domain.Task, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := r.col.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "date", Value: -1}}))
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer cursor.Close(ctx)

	var tasks []*domain.Task
	for cursor.Next(ctx) {
		var doc taskDoc
		if err := cursor.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode task: %w", err)
		}
		tasks = append(tasks, doc.toDomain())
	}
	return tasks, cursor.Err()
}

// EnsureIndexes creates the query indexes on the tasks collection.
func (r *TaskRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "assigned_to", Value: 1}, {Key: "date", Value: 1}}},
		{Keys: bson.D{{Key: "created_by", Value: 1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
