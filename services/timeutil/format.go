// Package timeutil renders clock and calendar values for the dashboard.
package timeutil

import (
	"errors"
	"fmt"
	"time"

	"classboard/models"
)

var ErrInvalidWeekday = errors.New("day of week must be between 0 and 6")

var dayNames = [models.DaysPerWeek]string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// CurrentTime formats now as "h:mm:ss AM/PM", e.g. "9:05:07 AM".
func CurrentTime(now time.Time) string {
	return now.Format("3:04:05 PM")
}

// CurrentDate formats now as "Monday, August 25, 2025".
func CurrentDate(now time.Time) string {
	return now.Format("Monday, January 2, 2006")
}

// CurrentWeekRange returns the Sunday-to-Saturday week containing now,
// e.g. "Aug 24-Aug 30, 2025". The year is that of the Saturday.
func CurrentWeekRange(now time.Time) string {
	start := now.AddDate(0, 0, -int(now.Weekday()))
	end := start.AddDate(0, 0, 6)
	return fmt.Sprintf("%s %d-%s %d, %d",
		start.Format("Jan"), start.Day(),
		end.Format("Jan"), end.Day(),
		end.Year(),
	)
}

// DayName maps 0..6 to "Sun".."Sat".
func DayName(day models.Weekday) (string, error) {
	if !day.Valid() {
		return "", fmt.Errorf("%w: got %d", ErrInvalidWeekday, int(day))
	}
	return dayNames[day], nil
}

// FormatTime renders a time of day in 12-hour form, e.g. "1:05 PM".
func FormatTime(t models.ClockTime) string {
	hour := t.Hour()
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	display := hour % 12
	if display == 0 {
		display = 12
	}
	return fmt.Sprintf("%d:%02d %s", display, t.Minute(), ampm)
}

// FormatTimeString parses a 24-hour "HH:MM" string and formats it like FormatTime.
func FormatTimeString(s string) (string, error) {
	t, err := models.ParseClockTime(s)
	if err != nil {
		return "", err
	}
	return FormatTime(t), nil
}
