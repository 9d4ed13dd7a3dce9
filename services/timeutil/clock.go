package timeutil

import "time"

// Clock supplies the current instant. Queries read it once and derive
// everything else from that value.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the host's local clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

func (c FixedClock) Now() time.Time { return time.Time(c) }

// ClockFunc adapts a function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time { return f() }
