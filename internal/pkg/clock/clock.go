package clock

import "time"

// Clock supplies the current time to the application layer. Domain methods
// take time as an explicit parameter, so swapping in a FakeClock makes every
// timestamp in a test deterministic.
type Clock interface {
	Now() time.Time
}

// RealClock returns the real current time.
type RealClock struct{}

// Now returns the current time in UTC.
func (RealClock) Now() time.Time {
	return time.Now().UTC()
}

// FakeClock is a controllable clock for tests.
type FakeClock struct {
	now time.Time
}

// NewFake creates a FakeClock set to the given time (expected in UTC).
func NewFake(t time.Time) *FakeClock {
	return &FakeClock{now: t}
}

// Now returns the fake current time.
func (f *FakeClock) Now() time.Time {
	return f.now
}

// Advance moves the fake clock forward by duration d.
func (f *FakeClock) Advance(d time.Duration) {
	f.now = f.now.Add(d)
}
