package simulation

import "time"

// Clock reports scene time in Unix seconds with paused spans removed, so
// motion continues from where it stopped when the loop resumes
type Clock struct {
	now         func() time.Time
	paused      bool
	pausedAt    time.Time
	pausedTotal time.Duration
}

// NewClock returns a running clock. A nil now uses time.Now.
func NewClock(now func() time.Time) *Clock {
	if now == nil {
		now = time.Now
	}
	return &Clock{now: now}
}

// Pause freezes scene time. Pausing a paused clock does nothing.
func (c *Clock) Pause() {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = c.now()
}

// Resume restarts scene time from where Pause left it
func (c *Clock) Resume() {
	if !c.paused {
		return
	}
	c.paused = false
	c.pausedTotal += c.now().Sub(c.pausedAt)
}

// Paused reports whether the clock is frozen
func (c *Clock) Paused() bool {
	return c.paused
}

// Seconds returns the current scene time
func (c *Clock) Seconds() float64 {
	t := c.now()
	if c.paused {
		t = c.pausedAt
	}
	return float64(t.Add(-c.pausedTotal).UnixNano()) * 1e-9
}

// Now returns the wall clock the scene clock is driven by
func (c *Clock) Now() time.Time {
	return c.now()
}
