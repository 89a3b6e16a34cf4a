package viewport

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Metrics tracks the logical size of the drawable surface and the
// aspect-correction vector handed to the shader as "resolution".
type Metrics struct {
	Width  float64
	Height float64
	Aspect mgl32.Vec2
}

// New returns metrics for a w x h surface. A non-positive size leaves the
// aspect at (1,1) until the first valid Resize.
func New(w, h float64) Metrics {
	m := Metrics{Aspect: mgl32.Vec2{1, 1}}
	m.Resize(w, h)
	return m
}

// AspectCorrection scales the shorter axis so that one component is always
// 1 and the other is the ratio of the short side to the long side.
func AspectCorrection(w, h float64) mgl32.Vec2 {
	if w >= h {
		return mgl32.Vec2{1, float32(h / w)}
	}
	return mgl32.Vec2{float32(w / h), 1}
}

// Resize records a new surface size and recomputes the aspect correction.
// Degenerate sizes are ignored and reported with false.
func (m *Metrics) Resize(w, h float64) bool {
	if w <= 0 || h <= 0 {
		return false
	}
	m.Width = w
	m.Height = h
	m.Aspect = AspectCorrection(w, h)
	return true
}

// Ratio is width over height, or 1 before the first valid resize.
func (m Metrics) Ratio() float64 {
	if m.Width <= 0 || m.Height <= 0 {
		return 1
	}
	return m.Width / m.Height
}

// Valid reports whether the metrics describe a drawable surface.
func (m Metrics) Valid() bool {
	return m.Width > 0 && m.Height > 0
}
