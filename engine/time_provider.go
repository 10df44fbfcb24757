package engine

import "time"

// TimeProvider supplies monotonic timestamps for pointer samples
type TimeProvider interface {
	Now() time.Time
}

// MonotonicTimeProvider provides the real system time with monotonic clock readings
type MonotonicTimeProvider struct{}

// NewMonotonicTimeProvider creates a new monotonic time provider
func NewMonotonicTimeProvider() *MonotonicTimeProvider {
	return &MonotonicTimeProvider{}
}

// Now returns the current time with monotonic clock reading
func (p *MonotonicTimeProvider) Now() time.Time {
	return time.Now()
}

// VirtualClock is a TimeProvider that only moves when advanced
type VirtualClock struct {
	now time.Time
}

// NewVirtualClock creates a clock frozen at start
func NewVirtualClock(start time.Time) *VirtualClock {
	return &VirtualClock{now: start}
}

// Now returns the current virtual time
func (c *VirtualClock) Now() time.Time {
	return c.now
}

// Advance moves the clock forward by d
func (c *VirtualClock) Advance(d time.Duration) {
	c.now = c.now.Add(d)
}
