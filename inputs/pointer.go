package inputs

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Normalize maps page coordinates on a w x h viewport to the shader's
// bottom-up device space: the top-left corner becomes (-1,1) and the
// bottom-right corner (1,-1). Coordinates outside the viewport are not
// clamped.
func Normalize(px, py, w, h float64) mgl32.Vec2 {
	return mgl32.Vec2{
		float32(2 * (px/w - 0.5)),
		float32(2 * (-py/h + 0.5)),
	}
}

// Tracker holds the last normalized pointer position.
type Tracker struct {
	pos  mgl32.Vec2
	seen bool
}

// Move records a pointer-move event. Events arriving before the viewport
// has a size are dropped.
func (t *Tracker) Move(px, py, w, h float64) {
	if w <= 0 || h <= 0 {
		return
	}
	t.pos = Normalize(px, py, w, h)
	t.seen = true
}

// Position returns the last normalized position and whether any event has
// been recorded yet.
func (t *Tracker) Position() (mgl32.Vec2, bool) {
	return t.pos, t.seen
}
