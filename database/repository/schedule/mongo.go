// File: database/repository/schedule/mongo.go
package scheduleRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"classboard/models"
)

type mongoScheduleRepo struct {
	schedules *mongo.Collection
	items     *mongo.Collection
}

// NewMongoScheduleRepo constructs a MongoDB ScheduleRepository on db.
func NewMongoScheduleRepo(db *mongo.Database) ScheduleRepository {
	return &mongoScheduleRepo{
		schedules: db.Collection("schedules"),
		items:     db.Collection("schedule_items"),
	}
}

// itemOrder matches the ordering contract of ScheduleRepository listings.
var itemOrder = bson.D{
	{Key: "dayOfWeek", Value: 1},
	{Key: "startTime", Value: 1},
	{Key: "createdAt", Value: 1},
}

func notFound(kind, id string, err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return fmt.Errorf("%s %s: %w", kind, id, ErrNotFound)
	}
	return fmt.Errorf("failed to fetch %s %s: %w", kind, id, err)
}

func (r *mongoScheduleRepo) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	cursor, err := r.schedules.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedules: %w", err)
	}
	defer cursor.Close(ctx)

	schedules := make([]models.Schedule, 0)
	if err := cursor.All(ctx, &schedules); err != nil {
		return nil, fmt.Errorf("error decoding schedules: %w", err)
	}
	return schedules, nil
}

func (r *mongoScheduleRepo) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var schedule models.Schedule
	if err := r.schedules.FindOne(ctx, bson.M{"id": id}).Decode(&schedule); err != nil {
		return nil, notFound("schedule", id, err)
	}
	return &schedule, nil
}

func (r *mongoScheduleRepo) CreateSchedule(ctx context.Context, schedule *models.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if schedule.ID == "" {
		schedule.ID = uuid.New().String()
	}
	now := time.Now()
	if schedule.CreatedAt.IsZero() {
		schedule.CreatedAt = now
	}
	if schedule.UpdatedAt.IsZero() {
		schedule.UpdatedAt = now
	}
	if _, err := r.schedules.InsertOne(ctx, schedule); err != nil {
		return fmt.Errorf("failed to create schedule: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) UpdateSchedule(ctx context.Context, schedule *models.Schedule) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.schedules.UpdateOne(ctx, bson.M{"id": schedule.ID}, bson.M{"$set": schedule})
	if err != nil {
		return fmt.Errorf("failed to update schedule with id %s: %w", schedule.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule %s: %w", schedule.ID, ErrNotFound)
	}
	return nil
}

// DeleteSchedule removes the schedule, then its items. The two deletes are not
// transactional; a failure between them leaves orphaned items that no listing
// by schedule will return.
func (r *mongoScheduleRepo) DeleteSchedule(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.schedules.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("schedule %s: %w", id, ErrNotFound)
	}
	if _, err := r.items.DeleteMany(ctx, bson.M{"scheduleId": id}); err != nil {
		return fmt.Errorf("failed to delete items of schedule %s: %w", id, err)
	}
	return nil
}

func (r *mongoScheduleRepo) ListItems(ctx context.Context, scheduleID string) ([]models.ScheduleItem, error) {
	return r.findItems(ctx, bson.M{"scheduleId": scheduleID})
}

func (r *mongoScheduleRepo) ListAllItems(ctx context.Context) ([]models.ScheduleItem, error) {
	return r.findItems(ctx, bson.M{})
}

func (r *mongoScheduleRepo) findItems(ctx context.Context, filter bson.M) ([]models.ScheduleItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.items.Find(ctx, filter, options.Find().SetSort(itemOrder))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch schedule items: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.ScheduleItem, 0)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("error decoding schedule items: %w", err)
	}
	return items, nil
}

func (r *mongoScheduleRepo) GetItem(ctx context.Context, id string) (*models.ScheduleItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var item models.ScheduleItem
	if err := r.items.FindOne(ctx, bson.M{"id": id}).Decode(&item); err != nil {
		return nil, notFound("schedule item", id, err)
	}
	return &item, nil
}

func (r *mongoScheduleRepo) CreateItem(ctx context.Context, item *models.ScheduleItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	if item.CreatedAt.IsZero() {
		item.CreatedAt = time.Now()
	}
	if _, err := r.items.InsertOne(ctx, item); err != nil {
		return fmt.Errorf("failed to create schedule item: %w", err)
	}
	return nil
}

func (r *mongoScheduleRepo) UpdateItem(ctx context.Context, item *models.ScheduleItem) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Replace rather than $set so cleared optional fields are dropped too.
	res, err := r.items.ReplaceOne(ctx, bson.M{"id": item.ID}, item)
	if err != nil {
		return fmt.Errorf("failed to update schedule item with id %s: %w", item.ID, err)
	}
	if res.MatchedCount == 0 {
		return fmt.Errorf("schedule item %s: %w", item.ID, ErrNotFound)
	}
	return nil
}

func (r *mongoScheduleRepo) DeleteItem(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.items.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete schedule item with id %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return fmt.Errorf("schedule item %s: %w", id, ErrNotFound)
	}
	return nil
}
