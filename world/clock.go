package world

import "fmt"

// FrameClock turns monotonic frame timestamps into tick lengths.
type FrameClock struct {
	last    float64
	started bool
}

// Tick returns the milliseconds since the previous timestamp. The first
// call returns 0. Timestamps must not go backwards.
func (c *FrameClock) Tick(nowMs float64) float64 {
	if !c.started {
		c.started = true
		c.last = nowMs
		return 0
	}
	if nowMs < c.last {
		panic(fmt.Sprintf("frame timestamp went backwards: %v after %v", nowMs, c.last))
	}
	dt := nowMs - c.last
	c.last = nowMs
	return dt
}
