// File: database/repository/schedule/interface.go
package scheduleRepo

import (
	"context"
	"errors"

	"classboard/models"
)

// ErrNotFound is returned when a schedule or item does not exist.
var ErrNotFound = errors.New("record not found")

// ScheduleRepository stores schedules and their items. Item listings are
// ordered by day of week, then start time, then creation order.
type ScheduleRepository interface {
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	GetSchedule(ctx context.Context, id string) (*models.Schedule, error)
	CreateSchedule(ctx context.Context, schedule *models.Schedule) error
	// UpdateSchedule stores schedule as given; callers stamp UpdatedAt.
	UpdateSchedule(ctx context.Context, schedule *models.Schedule) error
	// DeleteSchedule removes the schedule and every item that belongs to it.
	DeleteSchedule(ctx context.Context, id string) error

	ListItems(ctx context.Context, scheduleID string) ([]models.ScheduleItem, error)
	ListAllItems(ctx context.Context) ([]models.ScheduleItem, error)
	GetItem(ctx context.Context, id string) (*models.ScheduleItem, error)
	CreateItem(ctx context.Context, item *models.ScheduleItem) error
	UpdateItem(ctx context.Context, item *models.ScheduleItem) error
	DeleteItem(ctx context.Context, id string) error
}
