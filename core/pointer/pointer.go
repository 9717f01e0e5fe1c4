// Package pointer tracks the latest pointer position in normalized device
// coordinates.
package pointer

import "gonum.org/v1/gonum/spatial/r2"

// Tracker holds the current pointer NDC, or Sentinel when no pointer is
// over the scene. The sentinel must sit outside every interaction radius.
type Tracker struct {
	Sentinel r2.Vec
	pos      r2.Vec
}

// New returns a tracker parked at sentinel.
func New(sentinel r2.Vec) *Tracker {
	return &Tracker{Sentinel: sentinel, pos: sentinel}
}

// Move records a pointer at client pixel (x, y) of a width×height viewport.
// x maps to [-1,1] left to right, y to [1,-1] top to bottom. A degenerate
// viewport is ignored.
func (t *Tracker) Move(x, y, width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	t.pos = r2.Vec{
		X: (x/width)*2 - 1,
		Y: -(y/height)*2 + 1,
	}
}

// Leave parks the pointer at the sentinel.
func (t *Tracker) Leave() { t.pos = t.Sentinel }

// NDC returns the current normalized coordinate.
func (t *Tracker) NDC() r2.Vec { return t.pos }

// Active reports whether a pointer is over the scene.
func (t *Tracker) Active() bool { return t.pos != t.Sentinel }
