package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

const (
	minZoom    = 0.1
	maxZoom    = 10
	zoomScale  = 0.95
	polarLimit = 1e-3
)

// Orbit rotates a camera around its target on a sphere and zooms an
// orthographic frustum, driven by pointer drags and wheel steps.
type Orbit struct {
	camera *Orthographic

	radius float64
	theta  float64 // azimuth around +Y, 0 looks down -Z
	phi    float64 // polar angle from +Y

	dragging     bool
	lastX, lastY float64

	home struct {
		radius, theta, phi float64
		zoom               float32
	}
}

// NewOrbit attaches orbit controls to c, using c's current position as the
// home pose.
func NewOrbit(c *Orthographic) *Orbit {
	o := &Orbit{camera: c}
	offset := c.Position.Sub(c.Target)
	o.radius = float64(offset.Len())
	if o.radius > 0 {
		o.theta = math.Atan2(float64(offset.X()), float64(offset.Z()))
		o.phi = math.Acos(clamp(float64(offset.Y())/o.radius, -1, 1))
	}
	o.home.radius, o.home.theta, o.home.phi, o.home.zoom = o.radius, o.theta, o.phi, c.Zoom
	return o
}

// Begin starts a rotate drag at window position (x,y).
func (o *Orbit) Begin(x, y float64) {
	o.dragging = true
	o.lastX, o.lastY = x, y
}

// Move continues a drag; a full viewport height of movement is one turn.
// It reports whether a drag was in progress.
func (o *Orbit) Move(x, y, viewportHeight float64) bool {
	if !o.dragging {
		return false
	}
	if viewportHeight > 0 {
		o.Rotate(2*math.Pi*(x-o.lastX)/viewportHeight, 2*math.Pi*(y-o.lastY)/viewportHeight)
	}
	o.lastX, o.lastY = x, y
	return true
}

// End finishes a drag.
func (o *Orbit) End() {
	o.dragging = false
}

// Dragging reports whether a rotate drag is in progress.
func (o *Orbit) Dragging() bool {
	return o.dragging
}

// Rotate turns the camera left by dTheta and up by dPhi radians.
func (o *Orbit) Rotate(dTheta, dPhi float64) {
	o.theta -= dTheta
	o.phi = clamp(o.phi-dPhi, polarLimit, math.Pi-polarLimit)
	o.apply()
}

// Zoom applies wheel steps; positive steps zoom in.
func (o *Orbit) Zoom(steps float64) {
	z := float64(o.camera.Zoom) / math.Pow(zoomScale, steps)
	o.camera.Zoom = float32(clamp(z, minZoom, maxZoom))
	o.camera.UpdateProjectionMatrix()
}

// Reset returns the camera to the pose it had when the controls were
// attached.
func (o *Orbit) Reset() {
	o.radius, o.theta, o.phi = o.home.radius, o.home.theta, o.home.phi
	o.camera.Zoom = o.home.zoom
	o.camera.UpdateProjectionMatrix()
	o.apply()
}

func (o *Orbit) apply() {
	s := math.Sin(o.phi)
	offset := mgl32.Vec3{
		float32(o.radius * s * math.Sin(o.theta)),
		float32(o.radius * math.Cos(o.phi)),
		float32(o.radius * s * math.Cos(o.theta)),
	}
	o.camera.Position = o.camera.Target.Add(offset)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
