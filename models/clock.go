package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Weekday is a day of the week, Sunday = 0 through Saturday = 6.
type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

// DaysPerWeek is the length of the weekly cycle.
const DaysPerWeek = 7

// Valid reports whether d is within 0..6.
func (d Weekday) Valid() bool {
	return d >= Sunday && d <= Saturday
}

// Add returns the weekday n days after d, wrapping around the week.
func (d Weekday) Add(n int) Weekday {
	return Weekday(((int(d)+n)%DaysPerWeek + DaysPerWeek) % DaysPerWeek)
}

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return time.Weekday(d).String()
}

// WeekdayOf returns the weekday of t in t's location.
func WeekdayOf(t time.Time) Weekday {
	return Weekday(t.Weekday())
}

// ClockTime is a wall-clock time of day stored as minutes since midnight.
// JSON uses the 24-hour "HH:MM" form; BSON stores the integer.
type ClockTime int

const minutesPerDay = 24 * 60

var ErrInvalidClockTime = errors.New("invalid time of day, expected HH:MM")

// NewClockTime builds a ClockTime from an hour (0-23) and minute (0-59).
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, fmt.Errorf("%w: %02d:%02d", ErrInvalidClockTime, hour, minute)
	}
	return ClockTime(hour*60 + minute), nil
}

// ParseClockTime parses a 24-hour "HH:MM" string.
func ParseClockTime(s string) (ClockTime, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClockTime, s)
	}
	return ClockTime(t.Hour()*60 + t.Minute()), nil
}

// MustClockTime is ParseClockTime for literals known to be valid.
func MustClockTime(s string) ClockTime {
	c, err := ParseClockTime(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ClockTimeOf returns the minute of the day of t, dropping seconds.
func ClockTimeOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func (c ClockTime) Valid() bool {
	return c >= 0 && c < minutesPerDay
}

func (c ClockTime) Hour() int   { return int(c) / 60 }
func (c ClockTime) Minute() int { return int(c) % 60 }

// String renders the zero-padded 24-hour form, e.g. "07:45".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

// On returns the instant at this time of day on the calendar date of day.
func (c ClockTime) On(day time.Time) time.Time {
	y, m, d := day.Date()
	return time.Date(y, m, d, c.Hour(), c.Minute(), 0, 0, day.Location())
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %d minutes", ErrInvalidClockTime, int(c))
	}
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidClockTime, string(data))
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
