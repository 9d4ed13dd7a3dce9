package reminder

import (
	"context"
	"time"

	"classboard/models"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ItemGetter fetches a single item by ID.
type ItemGetter interface {
	GetItem(ctx context.Context, id string) (*models.ScheduleItem, error)
}

// AfterPlanner queues the reminder following a given instant.
type AfterPlanner interface {
	PlanAfter(ctx context.Context, from time.Time) error
}

// Matches reports whether item still starts at startsAt, i.e. the reminder
// was not made stale by an edit after it was queued.
func Matches(item models.ScheduleItem, startsAt time.Time) bool {
	return item.DayOfWeek == models.WeekdayOf(startsAt) && item.StartTime == models.ClockTimeOf(startsAt)
}

// NewHandler announces an upcoming activity and chains the next reminder.
func NewHandler(items ItemGetter, planner AfterPlanner, logger *zap.Logger) asynq.HandlerFunc {
	return func(ctx context.Context, task *asynq.Task) error {
		p, err := ParsePayload(task)
		if err != nil {
			logger.Error("dropping reminder", zap.Error(err))
			// Malformed payloads will never succeed; don't retry them.
			return asynq.SkipRetry
		}

		item, err := items.GetItem(ctx, p.ItemID)
		switch {
		case err != nil:
			logger.Info("skipping reminder for removed activity", zap.String("itemId", p.ItemID), zap.Error(err))
		case !Matches(*item, p.StartsAt):
			logger.Info("skipping stale reminder", zap.String("itemId", p.ItemID), zap.Time("startsAt", p.StartsAt))
		default:
			logger.Info("activity starting soon",
				zap.String("itemId", item.ID),
				zap.String("title", item.Title),
				zap.String("room", p.Room),
				zap.Time("startsAt", p.StartsAt),
			)
		}

		return planner.PlanAfter(ctx, p.StartsAt)
	}
}
