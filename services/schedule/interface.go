package schedule

import (
	"context"
	"sync"
	"time"

	scheduleRepo "classboard/database/repository/schedule"
	"classboard/models"
	"classboard/services/timeutil"
)

type ScheduleService interface {
	// Schedules
	ListSchedules(ctx context.Context) ([]models.Schedule, error)
	GetSchedule(ctx context.Context, id string) (*models.Schedule, error)
	CreateSchedule(ctx context.Context, req models.CreateScheduleRequest) (*models.Schedule, error)
	UpdateSchedule(ctx context.Context, id string, req models.UpdateScheduleRequest) (*models.Schedule, error)
	DeleteSchedule(ctx context.Context, id string) error

	// Schedule items
	ListItems(ctx context.Context, scheduleID string) ([]models.ScheduleItem, error)
	ListAllItems(ctx context.Context) ([]models.ScheduleItem, error)
	GetItem(ctx context.Context, id string) (*models.ScheduleItem, error)
	CreateItem(ctx context.Context, req models.CreateScheduleItemRequest) (*models.ScheduleItem, error)
	UpdateItem(ctx context.Context, id string, req models.UpdateScheduleItemRequest) (*models.ScheduleItem, error)
	DeleteItem(ctx context.Context, id string) error

	// Dashboard builds the now/next snapshot, optionally for a single schedule.
	Dashboard(ctx context.Context, scheduleID string) (*models.DashboardSnapshot, error)
}

// Replanner is notified after item changes so pending reminders follow the new timetable.
type Replanner interface {
	Plan(ctx context.Context) error
}

// DefaultScheduleService is the production implementation. Cache and
// Reminders are optional.
type DefaultScheduleService struct {
	Repo      scheduleRepo.ScheduleRepository
	Cache     ItemCache
	Clock     timeutil.Clock
	Reminders Replanner

	// cacheGen counts invalidations so reads started before a write skip
	// their cache fill.
	cacheMu  sync.Mutex
	cacheGen uint64
}

func (s *DefaultScheduleService) now() time.Time {
	if s.Clock == nil {
		return time.Now()
	}
	return s.Clock.Now()
}
