// Package timeutil provides time-of-day arithmetic for the booking flow and
// a clock abstraction for testability.
package timeutil

import "time"

// Clock provides an abstraction over time.Now() for testability.
// The search validator compares the departure date against Now(), so tests
// inject a FixedClock to pin "today".
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock uses the actual system time.
type RealClock struct{}

// NewRealClock creates a new RealClock instance.
func NewRealClock() *RealClock {
	return &RealClock{}
}

// Now returns the current system time.
func (RealClock) Now() time.Time {
	return time.Now()
}

// FixedClock returns a controllable time for testing.
type FixedClock struct {
	current time.Time
}

// NewFixedClock creates a clock pinned to the given time.
func NewFixedClock(t time.Time) *FixedClock {
	return &FixedClock{current: t}
}

// Now returns the pinned time.
func (c *FixedClock) Now() time.Time {
	return c.current
}

// Set moves the clock to a specific time.
func (c *FixedClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the clock forward by the given duration.
func (c *FixedClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}

// Ensure interfaces are implemented.
var (
	_ Clock = (*RealClock)(nil)
	_ Clock = (*FixedClock)(nil)
)
