package sim

import "time"

// Clock turns host loop timestamps into elapsed seconds per tick.
type Clock struct {
	last    time.Time
	started bool
}

// Delta returns the seconds since the previous call.
// The first call, and any call with a timestamp earlier than the last, returns 0.
func (c *Clock) Delta(now time.Time) float64 {
	if !c.started {
		c.started = true
		c.last = now
		return 0
	}

	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d.Seconds()
}

// Reset forgets the previous timestamp, e.g. after a pause.
func (c *Clock) Reset() {
	c.started = false
}
