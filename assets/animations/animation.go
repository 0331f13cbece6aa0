package animations

import "fmt"

// Animation walks a contiguous range of sprite sheet cells, spending
// FrameDuration milliseconds on each.
type Animation struct {
	First         int
	Last          int
	Repeat        bool    // wrap to First after Last, otherwise hold Last
	FrameDuration float64 // milliseconds per frame
	frame         int
	elapsed       float64
	finished      bool
}

// Update advances the animation by dt milliseconds. Several frames may be
// skipped in one call when dt spans more than one FrameDuration.
func (a *Animation) Update(dt float64) {
	if dt < 0 {
		panic(fmt.Sprintf("animation update with negative dt %v", dt))
	}
	if a.finished {
		return
	}

	a.elapsed += dt
	for a.elapsed >= a.FrameDuration {
		a.elapsed -= a.FrameDuration
		a.frame++
		if a.frame > a.Last {
			if !a.Repeat {
				// Hold on the last frame
				a.frame = a.Last
				a.finished = true
				a.elapsed = 0
				return
			}
			a.frame = a.First
		}
	}
}

func (a *Animation) Frame() int {
	return a.frame
}

// Elapsed is the time spent on the current frame so far.
func (a *Animation) Elapsed() float64 {
	return a.elapsed
}

// Finished reports whether a non-repeating animation reached its last frame.
func (a *Animation) Finished() bool {
	return a.finished
}

func (a *Animation) Restart() {
	a.frame = a.First
	a.elapsed = 0
	a.finished = false
}

func NewAnimation(first, last int, repeat bool, frameDuration float64) *Animation {
	if first < 0 || last < first {
		panic(fmt.Sprintf("invalid animation frame range [%d, %d]", first, last))
	}
	if frameDuration <= 0 {
		panic(fmt.Sprintf("invalid animation frame duration %v", frameDuration))
	}
	return &Animation{
		First:         first,
		Last:          last,
		Repeat:        repeat,
		FrameDuration: frameDuration,
		frame:         first,
	}
}
