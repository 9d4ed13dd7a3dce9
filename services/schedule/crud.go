package schedule

import (
	"context"
	"errors"
	"fmt"

	scheduleRepo "classboard/database/repository/schedule"
	"classboard/models"
	"classboard/utils"

	"go.uber.org/zap"
)

func (s *DefaultScheduleService) ListSchedules(ctx context.Context) ([]models.Schedule, error) {
	schedules, err := s.Repo.ListSchedules(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedules: %w", err)
	}
	return schedules, nil
}

func (s *DefaultScheduleService) GetSchedule(ctx context.Context, id string) (*models.Schedule, error) {
	schedule, err := s.Repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrScheduleNotFound)
	}
	return schedule, nil
}

func (s *DefaultScheduleService) CreateSchedule(ctx context.Context, req models.CreateScheduleRequest) (*models.Schedule, error) {
	schedule := &models.Schedule{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Color:       req.Color,
		IsActive:    true,
	}
	if req.IsActive != nil {
		schedule.IsActive = *req.IsActive
	}
	now := s.now()
	schedule.CreatedAt, schedule.UpdatedAt = now, now

	if err := s.Repo.CreateSchedule(ctx, schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	return schedule, nil
}

func (s *DefaultScheduleService) UpdateSchedule(ctx context.Context, id string, req models.UpdateScheduleRequest) (*models.Schedule, error) {
	schedule, err := s.GetSchedule(ctx, id)
	if err != nil {
		return nil, err
	}
	req.Apply(schedule)
	schedule.UpdatedAt = s.now()
	if err := s.Repo.UpdateSchedule(ctx, schedule); err != nil {
		return nil, mapNotFound(err, ErrScheduleNotFound)
	}
	return schedule, nil
}

func (s *DefaultScheduleService) DeleteSchedule(ctx context.Context, id string) error {
	if err := s.Repo.DeleteSchedule(ctx, id); err != nil {
		return mapNotFound(err, ErrScheduleNotFound)
	}
	s.itemsChanged(ctx)
	return nil
}

func (s *DefaultScheduleService) ListItems(ctx context.Context, scheduleID string) ([]models.ScheduleItem, error) {
	return s.cachedItems(ctx, scheduleID, func() ([]models.ScheduleItem, error) {
		return s.Repo.ListItems(ctx, scheduleID)
	})
}

func (s *DefaultScheduleService) ListAllItems(ctx context.Context) ([]models.ScheduleItem, error) {
	return s.cachedItems(ctx, "", func() ([]models.ScheduleItem, error) {
		return s.Repo.ListAllItems(ctx)
	})
}

func (s *DefaultScheduleService) GetItem(ctx context.Context, id string) (*models.ScheduleItem, error) {
	item, err := s.Repo.GetItem(ctx, id)
	if err != nil {
		return nil, mapNotFound(err, ErrItemNotFound)
	}
	return item, nil
}

func (s *DefaultScheduleService) CreateItem(ctx context.Context, req models.CreateScheduleItemRequest) (*models.ScheduleItem, error) {
	item := req.Item()
	if err := s.validateItem(ctx, &item, true); err != nil {
		return nil, err
	}
	item.CreatedAt = s.now()

	if err := s.Repo.CreateItem(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to create schedule item: %w", err)
	}
	s.itemsChanged(ctx)
	return &item, nil
}

func (s *DefaultScheduleService) UpdateItem(ctx context.Context, id string, req models.UpdateScheduleItemRequest) (*models.ScheduleItem, error) {
	item, err := s.GetItem(ctx, id)
	if err != nil {
		return nil, err
	}
	previousSchedule := item.ScheduleID
	req.Apply(item)
	if err := s.validateItem(ctx, item, item.ScheduleID != previousSchedule); err != nil {
		return nil, err
	}

	if err := s.Repo.UpdateItem(ctx, item); err != nil {
		return nil, mapNotFound(err, ErrItemNotFound)
	}
	s.itemsChanged(ctx)
	return item, nil
}

func (s *DefaultScheduleService) DeleteItem(ctx context.Context, id string) error {
	if err := s.Repo.DeleteItem(ctx, id); err != nil {
		return mapNotFound(err, ErrItemNotFound)
	}
	s.itemsChanged(ctx)
	return nil
}

// validateItem enforces what the binding layer cannot: a forward time range on
// one day and, when checkParent is set, an existing parent schedule.
func (s *DefaultScheduleService) validateItem(ctx context.Context, item *models.ScheduleItem, checkParent bool) error {
	if !item.DayOfWeek.Valid() {
		return newValidationError("dayOfWeek", "must be between 0 and 6, got %d", int(item.DayOfWeek))
	}
	if !item.StartTime.Valid() || !item.EndTime.Valid() {
		return newValidationError("startTime", "times must fall within a single day")
	}
	if item.EndTime <= item.StartTime {
		return newValidationError("endTime", "must be after startTime (%s), got %s", item.StartTime, item.EndTime)
	}
	if item.Duration <= 0 {
		return newValidationError("duration", "must be positive, got %d", item.Duration)
	}
	if !checkParent {
		return nil
	}
	if _, err := s.Repo.GetSchedule(ctx, item.ScheduleID); err != nil {
		if errors.Is(err, scheduleRepo.ErrNotFound) {
			return newValidationError("scheduleId", "schedule %s does not exist", item.ScheduleID)
		}
		return fmt.Errorf("failed to look up schedule %s: %w", item.ScheduleID, err)
	}
	return nil
}

// cachedItems reads through the cache. A listing loaded before a concurrent
// write is not stored, so a slow read cannot repopulate the cache with data
// the write just invalidated. This only covers writes made through this
// service instance; other processes sharing the cache rely on the TTL.
func (s *DefaultScheduleService) cachedItems(ctx context.Context, scheduleID string, load func() ([]models.ScheduleItem, error)) ([]models.ScheduleItem, error) {
	logger := utils.GetLogger()
	var gen uint64
	if s.Cache != nil {
		items, ok, err := s.Cache.Get(ctx, scheduleID)
		if err != nil {
			logger.Warn("item cache read failed", zap.String("scheduleId", scheduleID), zap.Error(err))
		} else if ok {
			return items, nil
		}
		gen = s.cacheGeneration()
	}

	items, err := load()
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule items: %w", err)
	}
	if s.Cache != nil {
		s.cacheMu.Lock()
		if s.cacheGen == gen {
			if err := s.Cache.Set(ctx, scheduleID, items); err != nil {
				logger.Warn("item cache write failed", zap.String("scheduleId", scheduleID), zap.Error(err))
			}
		}
		s.cacheMu.Unlock()
	}
	return items, nil
}

func (s *DefaultScheduleService) cacheGeneration() uint64 {
	s.cacheMu.Lock()
	defer s.cacheMu.Unlock()
	return s.cacheGen
}

// itemsChanged drops cached listings and replans reminders. Failures are
// logged only; the write itself already succeeded.
func (s *DefaultScheduleService) itemsChanged(ctx context.Context) {
	logger := utils.GetLogger()
	if s.Cache != nil {
		s.cacheMu.Lock()
		s.cacheGen++
		if err := s.Cache.Invalidate(ctx); err != nil {
			logger.Warn("item cache invalidation failed", zap.Error(err))
		}
		s.cacheMu.Unlock()
	}
	if s.Reminders != nil {
		if err := s.Reminders.Plan(ctx); err != nil {
			logger.Warn("reminder replanning failed", zap.Error(err))
		}
	}
}

func mapNotFound(err, target error) error {
	if errors.Is(err, scheduleRepo.ErrNotFound) {
		return fmt.Errorf("%w: %v", target, err)
	}
	return err
}
