package scene

import "time"

// Clock reports seconds elapsed since it was started.
type Clock struct {
	now   func() time.Time
	start time.Time
}

func NewClock() *Clock {
	c := &Clock{now: time.Now}
	c.Reset()
	return c
}

// Reset restarts the clock at zero.
func (c *Clock) Reset() { c.start = c.now() }

// Elapsed never decreases; a clock stepping backwards reads as zero elapsed.
func (c *Clock) Elapsed() float64 {
	d := c.now().Sub(c.start)
	if d < 0 {
		return 0
	}
	return d.Seconds()
}
