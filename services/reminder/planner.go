// Package reminder queues a notification shortly before the next activity starts.
package reminder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"classboard/models"
	"classboard/services/activity"
	"classboard/services/timeutil"

	"github.com/hibiken/asynq"
	"go.uber.org/zap"
)

// ItemSource lists every schedule item, ordered by start time within each day.
type ItemSource interface {
	ListAllItems(ctx context.Context) ([]models.ScheduleItem, error)
}

// Enqueuer is satisfied by *asynq.Client.
type Enqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

type Planner struct {
	Items  ItemSource
	Queue  Enqueuer
	Clock  timeutil.Clock
	Lead   time.Duration
	Logger *zap.Logger
}

// Plan queues a reminder for the next activity after now.
func (p *Planner) Plan(ctx context.Context) error {
	return p.PlanAfter(ctx, p.Clock.Now())
}

// PlanAfter queues a reminder for the next activity after the instant from.
// Reminders already queued for the same occurrence are left alone.
func (p *Planner) PlanAfter(ctx context.Context, from time.Time) error {
	items, err := p.Items.ListAllItems(ctx)
	if err != nil {
		return fmt.Errorf("failed to load items for reminders: %w", err)
	}
	payload, fireAt, ok := NextReminder(items, from, p.Clock.Now(), p.Lead)
	if !ok {
		p.Logger.Debug("no upcoming activity to remind about")
		return nil
	}

	task, opts, err := NewReminderTask(payload, fireAt)
	if err != nil {
		return err
	}
	_, err = p.Queue.EnqueueContext(ctx, task, opts...)
	if errors.Is(err, asynq.ErrTaskIDConflict) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to enqueue reminder for %s: %w", payload.ItemID, err)
	}
	p.Logger.Info("reminder queued",
		zap.String("itemId", payload.ItemID),
		zap.String("title", payload.Title),
		zap.Time("startsAt", payload.StartsAt),
		zap.Time("fireAt", fireAt),
	)
	return nil
}

// NextReminder picks the activity with the earliest occurrence strictly after
// from, ties going to input order, and when to announce it: lead before it
// starts, but never earlier than now. Back-to-back blocks each get a reminder,
// and a timetable with a single weekday wraps to the following week.
func NextReminder(items []models.ScheduleItem, from, now time.Time, lead time.Duration) (models.ReminderPayload, time.Time, bool) {
	var (
		next     *models.ScheduleItem
		startsAt time.Time
	)
	for i := range items {
		at := activity.StartsAt(items[i], from)
		if !at.After(from) {
			continue
		}
		if next == nil || at.Before(startsAt) {
			next, startsAt = &items[i], at
		}
	}
	if next == nil {
		return models.ReminderPayload{}, time.Time{}, false
	}
	fireAt := startsAt.Add(-lead)
	if fireAt.Before(now) {
		fireAt = now
	}

	payload := models.ReminderPayload{
		ItemID:     next.ID,
		ScheduleID: next.ScheduleID,
		Title:      next.Title,
		StartsAt:   startsAt,
	}
	if next.Room != nil {
		payload.Room = *next.Room
	}
	return payload, fireAt, true
}
