package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRealClockNow(t *testing.T) {
	clock := NewRealClock()

	before := time.Now()
	now := clock.Now()
	after := time.Now()

	assert.False(t, now.Before(before))
	assert.False(t, now.After(after))
}

func TestFixedClock(t *testing.T) {
	pinned := time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	clock := NewFixedClock(pinned)

	assert.Equal(t, pinned, clock.Now())

	clock.Advance(90 * time.Minute)
	assert.Equal(t, pinned.Add(90*time.Minute), clock.Now())

	other := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	clock.Set(other)
	assert.Equal(t, other, clock.Now())
}
