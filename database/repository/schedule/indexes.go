// FILE: database/repository/schedule/indexes.go
package scheduleRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the indexes backing the repository's lookups and orderings.
func (r *mongoScheduleRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	_, err := r.schedules.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create schedule indexes: %w", err)
	}

	_, err = r.items.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_id"),
		},
		// Cascade deletes and per-schedule listings.
		{
			Keys:    bson.D{{Key: "scheduleId", Value: 1}, {Key: "dayOfWeek", Value: 1}, {Key: "startTime", Value: 1}},
			Options: options.Index().SetName("schedule_day_start_idx"),
		},
		// Week-wide listing order used by the dashboard.
		{
			Keys:    itemOrder,
			Options: options.Index().SetName("day_start_created_idx"),
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create schedule item indexes: %w", err)
	}
	return nil
}

// IndexEnsurer is implemented by repositories that manage their own indexes.
type IndexEnsurer interface {
	EnsureIndexes(ctx context.Context) error
}
