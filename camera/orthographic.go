package camera

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Orthographic is a camera with a fixed square frustum centered on its
// line of sight. Aspect is tracked for callers but does not reshape the
// frustum: a unit plane at the origin always covers the whole viewport.
type Orthographic struct {
	Left, Right, Top, Bottom float32
	Near, Far                float32
	Zoom                     float32
	Aspect                   float32

	Position mgl32.Vec3
	Target   mgl32.Vec3
	Up       mgl32.Vec3

	projection mgl32.Mat4
}

// NewOrthographic builds a camera whose frustum spans frustumSize in both
// directions, placed at (0,0,2) looking at the origin.
func NewOrthographic(frustumSize float32) *Orthographic {
	c := &Orthographic{
		Left:     -frustumSize / 2,
		Right:    frustumSize / 2,
		Top:      frustumSize / 2,
		Bottom:   -frustumSize / 2,
		Near:     -1000,
		Far:      1000,
		Zoom:     1,
		Aspect:   1,
		Position: mgl32.Vec3{0, 0, 2},
		Up:       mgl32.Vec3{0, 1, 0},
	}
	c.UpdateProjectionMatrix()
	return c
}

// SetAspect records the viewport aspect ratio and refreshes the projection.
func (c *Orthographic) SetAspect(aspect float32) {
	if aspect <= 0 {
		return
	}
	c.Aspect = aspect
	c.UpdateProjectionMatrix()
}

// UpdateProjectionMatrix recomputes the projection after a change to the
// frustum or zoom.
func (c *Orthographic) UpdateProjectionMatrix() {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	cx := (c.Left + c.Right) / 2
	cy := (c.Top + c.Bottom) / 2
	dx := (c.Right - c.Left) / (2 * zoom)
	dy := (c.Top - c.Bottom) / (2 * zoom)
	c.projection = mgl32.Ortho(cx-dx, cx+dx, cy-dy, cy+dy, c.Near, c.Far)
}

// Projection returns the current projection matrix.
func (c *Orthographic) Projection() mgl32.Mat4 {
	return c.projection
}

// View returns the world-to-camera matrix.
func (c *Orthographic) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Target, c.Up)
}
