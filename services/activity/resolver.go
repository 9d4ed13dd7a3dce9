// Package activity answers "what is on now" and "what is on next" over a
// weekly set of schedule items. Every function is pure: the caller passes the
// evaluation instant, and a nil *models.ScheduleItem means no match.
package activity

import (
	"fmt"
	"slices"
	"time"

	"classboard/models"
)

const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
)

// CurrentActivity returns the first item, in input order, scheduled on now's
// weekday whose window contains now. Start is inclusive, end exclusive.
// Overlapping items resolve to whichever comes first in items.
func CurrentActivity(items []models.ScheduleItem, now time.Time) *models.ScheduleItem {
	day, clock := models.WeekdayOf(now), models.ClockTimeOf(now)
	for i := range items {
		it := &items[i]
		if it.DayOfWeek == day && it.StartTime <= clock && clock < it.EndTime {
			return it
		}
	}
	return nil
}

// NextActivity returns the soonest item after the current one (or after now
// when nothing is in progress). Later today wins; otherwise the earliest item
// of the first following day, looking at most six days ahead.
//
// Today's candidates must start strictly after the current activity's end, so
// a block starting exactly when the current one ends is not picked from today.
func NextActivity(items []models.ScheduleItem, now time.Time) *models.ScheduleItem {
	day, after := models.WeekdayOf(now), models.ClockTimeOf(now)
	if cur := CurrentActivity(items, now); cur != nil {
		after = cur.EndTime
	}

	if next := earliest(items, func(it *models.ScheduleItem) bool {
		return it.DayOfWeek == day && it.StartTime > after
	}); next != nil {
		return next
	}

	for offset := 1; offset < models.DaysPerWeek; offset++ {
		d := day.Add(offset)
		if next := earliest(items, func(it *models.ScheduleItem) bool {
			return it.DayOfWeek == d
		}); next != nil {
			return next
		}
	}
	return nil
}

// earliest returns the matching item with the smallest start time; ties keep input order.
func earliest(items []models.ScheduleItem, match func(*models.ScheduleItem) bool) *models.ScheduleItem {
	var candidates []*models.ScheduleItem
	for i := range items {
		if match(&items[i]) {
			candidates = append(candidates, &items[i])
		}
	}
	if len(candidates) == 0 {
		return nil
	}
	slices.SortStableFunc(candidates, func(a, b *models.ScheduleItem) int {
		return int(a.StartTime - b.StartTime)
	})
	return candidates[0]
}

// StartsAt returns the next instant item starts relative to now: today when
// its start is still ahead, otherwise on the next matching weekday (a week out
// when the weekday is today's).
func StartsAt(item models.ScheduleItem, now time.Time) time.Time {
	target := item.StartTime.On(now)
	today := models.WeekdayOf(now)
	if item.DayOfWeek != today || !target.After(now) {
		var daysUntil int
		if item.DayOfWeek > today {
			daysUntil = int(item.DayOfWeek - today)
		} else {
			daysUntil = models.DaysPerWeek - int(today-item.DayOfWeek)
		}
		target = target.AddDate(0, 0, daysUntil)
	}
	return target
}

// TimeUntil describes how long until item starts, using the coarsest unit:
// "in 12 minutes", "in 1 hour", "in 3 days". It returns "" for nil.
func TimeUntil(item *models.ScheduleItem, now time.Time) string {
	if item == nil {
		return ""
	}
	mins := wholeMinutes(StartsAt(*item, now).Sub(now))
	switch {
	case mins < minutesPerHour:
		return fmt.Sprintf("in %d minutes", mins)
	case mins < minutesPerDay:
		return "in " + plural(mins/minutesPerHour, "hour")
	default:
		return "in " + plural(mins/minutesPerDay, "day")
	}
}

// TimeRemaining describes how long until item ends today: "ending now",
// "25 min remaining" or "1h 5m remaining". It returns "" for nil.
func TimeRemaining(item *models.ScheduleItem, now time.Time) string {
	if item == nil {
		return ""
	}
	mins := wholeMinutes(item.EndTime.On(now).Sub(now))
	switch {
	case mins <= 0:
		return "ending now"
	case mins < minutesPerHour:
		return fmt.Sprintf("%d min remaining", mins)
	default:
		return fmt.Sprintf("%dh %dm remaining", mins/minutesPerHour, mins%minutesPerHour)
	}
}

// wholeMinutes floors d to minutes, rounding negative values down as well.
func wholeMinutes(d time.Duration) int {
	m := d / time.Minute
	if d < 0 && d%time.Minute != 0 {
		m--
	}
	return int(m)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
