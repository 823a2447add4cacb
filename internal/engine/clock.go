package engine

import "time"

// Clock abstracts time.Now() to allow deterministic testing.
// The Validator and the Calculator use it to determine "today".
type Clock interface {
	Now() time.Time
}

// RealClock implements Clock using the standard time package.
type RealClock struct{}

// Now returns the current local time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock always reports the same instant.
// The CLI uses it for --now and tests use it for reproducible results.
type FixedClock struct {
	Time time.Time
}

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time {
	return c.Time
}

func clockOrDefault(c Clock) Clock {
	if c == nil {
		return RealClock{}
	}
	return c
}
