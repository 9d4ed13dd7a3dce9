package schedule

import (
	"context"
	"time"

	"classboard/models"
	"classboard/services/activity"
	"classboard/services/timeutil"
)

// Dashboard reads the clock once and derives every field from that instant.
func (s *DefaultScheduleService) Dashboard(ctx context.Context, scheduleID string) (*models.DashboardSnapshot, error) {
	var (
		items []models.ScheduleItem
		err   error
	)
	if scheduleID != "" {
		if _, err := s.GetSchedule(ctx, scheduleID); err != nil {
			return nil, err
		}
		items, err = s.ListItems(ctx, scheduleID)
	} else {
		items, err = s.ListAllItems(ctx)
	}
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(items, s.now()), nil
}

// BuildSnapshot assembles the dashboard view of items at now.
func BuildSnapshot(items []models.ScheduleItem, now time.Time) *models.DashboardSnapshot {
	current := activity.CurrentActivity(items, now)
	next := activity.NextActivity(items, now)
	today, _ := timeutil.DayName(models.WeekdayOf(now))

	return &models.DashboardSnapshot{
		CurrentTime:     timeutil.CurrentTime(now),
		CurrentDate:     timeutil.CurrentDate(now),
		WeekRange:       timeutil.CurrentWeekRange(now),
		Today:           today,
		CurrentActivity: view(current),
		NextActivity:    view(next),
		TimeRemaining:   activity.TimeRemaining(current, now),
		TimeUntilNext:   activity.TimeUntil(next, now),
	}
}

func view(item *models.ScheduleItem) *models.ActivityView {
	if item == nil {
		return nil
	}
	day, err := timeutil.DayName(item.DayOfWeek)
	if err != nil {
		day = item.DayOfWeek.String()
	}
	return &models.ActivityView{
		ScheduleItem: *item,
		DayName:      day,
		StartLabel:   timeutil.FormatTime(item.StartTime),
		EndLabel:     timeutil.FormatTime(item.EndTime),
	}
}
