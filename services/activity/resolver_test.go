package activity

import (
	"fmt"
	"testing"
	"time"

	"classboard/models"
)

// 2025-08-24 is a Sunday, so day d of that week is Aug 24+d.
func at(day models.Weekday, hhmm string) time.Time {
	c := models.MustClockTime(hhmm)
	return time.Date(2025, time.August, 24+int(day), c.Hour(), c.Minute(), 0, 0, time.Local)
}

func item(id string, day models.Weekday, start, end string) models.ScheduleItem {
	return models.ScheduleItem{
		ID:        id,
		Title:     id,
		DayOfWeek: day,
		StartTime: models.MustClockTime(start),
		EndTime:   models.MustClockTime(end),
	}
}

func id(it *models.ScheduleItem) string {
	if it == nil {
		return "<nil>"
	}
	return it.ID
}

func TestCurrentActivity(t *testing.T) {
	items := []models.ScheduleItem{
		item("a", models.Monday, "07:45", "08:44"),
		item("b", models.Monday, "08:44", "09:43"),
		item("c", models.Tuesday, "07:45", "08:44"),
	}
	tests := []struct {
		now  time.Time
		want string
	}{
		{at(models.Monday, "07:44"), "<nil>"},
		{at(models.Monday, "07:45"), "a"},
		{at(models.Monday, "08:00"), "a"},
		{at(models.Monday, "08:43"), "a"},
		{at(models.Monday, "08:44"), "b"},
		{at(models.Monday, "09:43"), "<nil>"},
		{at(models.Tuesday, "08:00"), "c"},
		{at(models.Wednesday, "08:00"), "<nil>"},
	}
	for _, tc := range tests {
		if got := id(CurrentActivity(items, tc.now)); got != tc.want {
			t.Errorf("CurrentActivity at %s = %s, want %s", tc.now.Format("Mon 15:04"), got, tc.want)
		}
	}
}

func TestCurrentActivityOverlapPrefersInputOrder(t *testing.T) {
	items := []models.ScheduleItem{
		item("late-listed-first", models.Monday, "09:00", "10:00"),
		item("early", models.Monday, "08:00", "11:00"),
	}
	if got := id(CurrentActivity(items, at(models.Monday, "09:30"))); got != "late-listed-first" {
		t.Errorf("CurrentActivity = %s, want late-listed-first", got)
	}
}

func TestNextActivityBackToBackBoundary(t *testing.T) {
	// b starts exactly when a ends, so it is not strictly after the current
	// activity and today's candidate set is empty; the search rolls to Tuesday.
	items := []models.ScheduleItem{
		item("a", models.Monday, "07:45", "08:44"),
		item("b", models.Monday, "08:44", "09:43"),
		item("tue", models.Tuesday, "07:45", "08:44"),
	}
	now := at(models.Monday, "08:00")
	if got := id(CurrentActivity(items, now)); got != "a" {
		t.Fatalf("current = %s, want a", got)
	}
	if got := id(NextActivity(items, now)); got != "tue" {
		t.Errorf("next = %s, want tue", got)
	}

	// Without anything later in the week, nothing qualifies.
	if got := id(NextActivity(items[:2], now)); got != "<nil>" {
		t.Errorf("next without tuesday = %s, want <nil>", got)
	}
}

func TestNextActivitySkipsItemsStartingDuringCurrent(t *testing.T) {
	items := []models.ScheduleItem{
		item("long", models.Monday, "08:00", "10:00"),
		item("overlap", models.Monday, "09:00", "09:30"),
		item("after", models.Monday, "10:05", "11:00"),
	}
	if got := id(NextActivity(items, at(models.Monday, "08:30"))); got != "after" {
		t.Errorf("next = %s, want after", got)
	}
}

func TestNextActivityWithoutCurrentUsesNow(t *testing.T) {
	items := []models.ScheduleItem{
		item("late", models.Monday, "13:45", "14:37"),
		item("lunch", models.Monday, "12:49", "13:40"),
		item("morning", models.Monday, "07:45", "08:44"),
	}
	tests := []struct {
		now  time.Time
		want string
	}{
		{at(models.Monday, "06:00"), "morning"},
		{at(models.Monday, "12:10"), "lunch"},
		{at(models.Monday, "13:42"), "late"},
		// 12:49 is the start of lunch: lunch is current, late is next.
		{at(models.Monday, "12:49"), "late"},
	}
	for _, tc := range tests {
		if got := id(NextActivity(items, tc.now)); got != tc.want {
			t.Errorf("NextActivity at %s = %s, want %s", tc.now.Format("15:04"), got, tc.want)
		}
	}
}

func TestNextActivityScansForwardDays(t *testing.T) {
	items := []models.ScheduleItem{
		item("fri-late", models.Friday, "13:00", "14:00"),
		item("fri-early", models.Friday, "07:45", "08:44"),
	}
	if got := id(NextActivity(items, at(models.Sunday, "10:00"))); got != "fri-early" {
		t.Errorf("next = %s, want fri-early", got)
	}

	// Saturday to Friday is six days ahead, the furthest the scan looks.
	if got := id(NextActivity(items, at(models.Saturday, "10:00"))); got != "fri-early" {
		t.Errorf("next from saturday = %s, want fri-early", got)
	}
}

func TestNextActivityEarliestDayWins(t *testing.T) {
	items := []models.ScheduleItem{
		item("thu", models.Thursday, "07:00", "08:00"),
		item("tue", models.Tuesday, "15:00", "16:00"),
		item("mon-past", models.Monday, "07:00", "08:00"),
	}
	if got := id(NextActivity(items, at(models.Monday, "18:00"))); got != "tue" {
		t.Errorf("next = %s, want tue", got)
	}
}

// The forward scan stops at six days, so today's finished items are not
// offered again as next week's occurrence.
func TestNextActivityOnlyPastItemsToday(t *testing.T) {
	items := []models.ScheduleItem{item("mon", models.Monday, "07:00", "08:00")}
	if got := id(NextActivity(items, at(models.Monday, "18:00"))); got != "<nil>" {
		t.Errorf("next = %s, want <nil>", got)
	}
}

func TestNextActivityNeverInPast(t *testing.T) {
	var items []models.ScheduleItem
	for d := models.Sunday; d <= models.Saturday; d++ {
		items = append(items,
			item(fmt.Sprintf("%d-1", d), d, "08:00", "09:00"),
			item(fmt.Sprintf("%d-2", d), d, "10:00", "11:00"),
		)
	}
	for d := models.Sunday; d <= models.Saturday; d++ {
		for _, hhmm := range []string{"00:00", "08:30", "09:30", "10:00", "23:59"} {
			now := at(d, hhmm)
			next := NextActivity(items, now)
			if next == nil {
				t.Fatalf("no next at %s", now)
			}
			starts := StartsAt(*next, now)
			if !starts.After(now) {
				t.Errorf("next at %s starts %s, not in the future", now, starts)
			}
		}
	}
}

func TestEmptyItems(t *testing.T) {
	now := at(models.Wednesday, "10:00")
	if CurrentActivity(nil, now) != nil {
		t.Error("CurrentActivity(nil) should be nil")
	}
	if NextActivity(nil, now) != nil {
		t.Error("NextActivity(nil) should be nil")
	}
	if got := TimeUntil(nil, now); got != "" {
		t.Errorf("TimeUntil(nil) = %q", got)
	}
	if got := TimeRemaining(nil, now); got != "" {
		t.Errorf("TimeRemaining(nil) = %q", got)
	}
}

func TestTimeUntil(t *testing.T) {
	mon0900 := item("x", models.Monday, "09:00", "10:00")
	wed0800 := item("y", models.Wednesday, "08:00", "09:00")
	sun0800 := item("z", models.Sunday, "08:00", "09:00")
	tests := []struct {
		name string
		it   models.ScheduleItem
		now  time.Time
		want string
	}{
		{"minutes", mon0900, at(models.Monday, "08:15"), "in 45 minutes"},
		{"one minute stays plural", mon0900, at(models.Monday, "08:59"), "in 1 minutes"},
		{"seconds floor down", mon0900, at(models.Monday, "08:15").Add(30 * time.Second), "in 44 minutes"},
		{"one hour", mon0900, at(models.Monday, "08:00"), "in 1 hour"},
		{"hours floor", mon0900, at(models.Monday, "06:01"), "in 2 hours"},
		{"next day under 24h is hours", wed0800, at(models.Tuesday, "09:00"), "in 23 hours"},
		{"one day", wed0800, at(models.Tuesday, "08:00"), "in 1 day"},
		{"days", wed0800, at(models.Monday, "07:00"), "in 2 days"},
		{"wraps the week", sun0800, at(models.Friday, "08:00"), "in 2 days"},
		{"same day already started is next week", mon0900, at(models.Monday, "09:00"), "in 7 days"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			it := tc.it
			if got := TimeUntil(&it, tc.now); got != tc.want {
				t.Errorf("TimeUntil = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestStartsAt(t *testing.T) {
	it := item("x", models.Monday, "09:00", "10:00")
	if got, want := StartsAt(it, at(models.Monday, "08:00")), at(models.Monday, "09:00"); !got.Equal(want) {
		t.Errorf("StartsAt later today = %v, want %v", got, want)
	}
	if got, want := StartsAt(it, at(models.Tuesday, "08:00")), at(models.Monday, "09:00").AddDate(0, 0, 7); !got.Equal(want) {
		t.Errorf("StartsAt next week = %v, want %v", got, want)
	}
}

func TestTimeRemaining(t *testing.T) {
	it := item("x", models.Monday, "08:00", "10:05")
	tests := []struct {
		now  time.Time
		want string
	}{
		{at(models.Monday, "08:00"), "2h 5m remaining"},
		{at(models.Monday, "09:00"), "1h 5m remaining"},
		{at(models.Monday, "09:05"), "1h 0m remaining"},
		{at(models.Monday, "09:06"), "59 min remaining"},
		{at(models.Monday, "10:04"), "1 min remaining"},
		{at(models.Monday, "10:04").Add(30 * time.Second), "ending now"},
		{at(models.Monday, "10:05"), "ending now"},
		{at(models.Monday, "11:00"), "ending now"},
	}
	for _, tc := range tests {
		if got := TimeRemaining(&it, tc.now); got != tc.want {
			t.Errorf("TimeRemaining at %s = %q, want %q", tc.now.Format("15:04:05"), got, tc.want)
		}
	}
}
