// Package clock abstracts wall time so delivery-slot expiry and coupon
// validity windows can be pinned in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// RealClock reads the system wall clock.
type RealClock struct{}

func NewRealClock() Clock {
	return RealClock{}
}

func (RealClock) Now() time.Time {
	return time.Now()
}

// MockClock reports a fixed instant until advanced.
type MockClock struct {
	now time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{now: t}
}

func (c *MockClock) Now() time.Time {
	return c.now
}

// Advance moves the reported instant forward, for tests that cross a slot
// window or coupon validity boundary.
func (c *MockClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
