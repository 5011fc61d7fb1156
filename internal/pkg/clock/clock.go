// Package clock abstracts the time source so promo expiry checks can be
// pinned to a fixed instant in tests.
package clock

import "time"

type Clock interface {
	Now() time.Time
}

// NewRealClock returns the wall-clock source used in production wiring.
func NewRealClock() Clock {
	return systemClock{}
}

type systemClock struct{}

func (systemClock) Now() time.Time {
	return time.Now()
}

// MockClock is a settable time source. It is not safe for concurrent use;
// tests drive it from a single goroutine.
type MockClock struct {
	current time.Time
}

func NewMockClock(t time.Time) *MockClock {
	return &MockClock{current: t}
}

func (c *MockClock) Now() time.Time {
	return c.current
}

// Set jumps the clock to an absolute instant.
func (c *MockClock) Set(t time.Time) {
	c.current = t
}

// Advance moves the clock forward (or backward, with a negative duration).
func (c *MockClock) Advance(d time.Duration) {
	c.current = c.current.Add(d)
}
