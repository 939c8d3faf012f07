package game

import "time"

// RunClock counts simulated time since a run started. It only moves when the
// host advances it, so a run replays identically for identical tick inputs.
type RunClock struct {
	elapsed time.Duration
}

// Advance moves the clock forward by dt. Negative steps are ignored.
func (c *RunClock) Advance(dt time.Duration) {
	if dt > 0 {
		c.elapsed += dt
	}
}

// Elapsed returns the time since the run started.
func (c *RunClock) Elapsed() time.Duration {
	return c.elapsed
}

// Reset rewinds the clock to zero.
func (c *RunClock) Reset() {
	c.elapsed = 0
}
