package core

import "time"

// Clock reports the time elapsed since it was started. The zero value is not
// usable; call NewClock.
type Clock struct {
	now   func() time.Time
	start time.Time
}

// NewClock returns a Clock started at the current time.
func NewClock() *Clock {
	return NewClockFunc(time.Now)
}

// NewClockFunc returns a Clock reading time from now. It is used by tests
// and hosts that provide their own timestamps.
func NewClockFunc(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now, start: now()}
}

// Elapsed returns the time since the clock started. It never goes backwards.
func (c *Clock) Elapsed() time.Duration {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d
}
