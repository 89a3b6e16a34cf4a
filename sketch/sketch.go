// Package sketch holds the animation core: the explicit state shared by the
// frame loop and the input handlers, the uniform store, and the loop
// itself. It has no GL dependency; drawing and presentation are reached
// through the Drawer, Surface and Host interfaces.
package sketch

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/shaderplane/camera"
	"github.com/richinsley/shaderplane/inputs"
	"github.com/richinsley/shaderplane/viewport"
)

// ProgressControl is the panel name of the progress slider.
const ProgressControl = "progress"

// Surface is the part of the renderer that follows the viewport size.
type Surface interface {
	SetPixelRatio(ratio float64)
	SetSize(width, height int)
}

// Settings holds the values edited through the control panel.
type Settings struct {
	Progress float64
}

// Frame is everything the renderer needs to draw one frame.
type Frame struct {
	Uniforms   Uniforms
	Projection mgl32.Mat4
	View       mgl32.Mat4
	Viewport   viewport.Metrics
	Panel      *inputs.Panel
}

// Sketch is the state the loop and the event handlers share.
type Sketch struct {
	Settings Settings
	Viewport viewport.Metrics
	Pointer  inputs.Tracker
	Panel    *inputs.Panel
	Camera   *camera.Orthographic
	Orbit    *camera.Orbit
	Uniforms *Store

	surface Surface
	cursorX float64
	cursorY float64
}

// New builds a sketch with an orthographic unit-frustum camera and a panel
// exposing the progress slider. surface may be nil.
func New(surface Surface) *Sketch {
	cam := camera.NewOrthographic(1)
	s := &Sketch{
		Viewport: viewport.New(0, 0),
		Panel:    inputs.NewPanel(),
		Camera:   cam,
		Orbit:    camera.NewOrbit(cam),
		Uniforms: NewStore(),
		surface:  surface,
	}
	s.Panel.AddControl(&s.Settings.Progress, ProgressControl, 0, 1, 0.01)
	return s
}

// SetProgress edits the progress value through its panel control, so the
// usual clamping and snapping apply.
func (s *Sketch) SetProgress(v float64) {
	s.Panel.Control(ProgressControl).Set(v)
}

// Handle dispatches one host event. Play/stop actions belong to the loop
// and are ignored here.
func (s *Sketch) Handle(ev Event) {
	switch e := ev.(type) {
	case ResizeEvent:
		s.Resize(e)
	case PointerMoveEvent:
		s.pointerMove(e)
	case PointerButtonEvent:
		s.pointerButton(e)
	case ScrollEvent:
		if !s.Panel.Contains(s.cursorX, s.cursorY) {
			s.Orbit.Zoom(e.DY)
		}
	case ActionEvent:
		s.action(e.Action)
	}
}

// Resize applies a new surface size to the renderer, camera, panel and the
// resolution uniform. Sizes with no area are ignored.
func (s *Sketch) Resize(e ResizeEvent) bool {
	if !s.Viewport.Resize(e.Width, e.Height) {
		return false
	}
	if s.surface != nil {
		if e.PixelRatio > 0 {
			s.surface.SetPixelRatio(e.PixelRatio)
		}
		s.surface.SetSize(int(math.Round(e.Width)), int(math.Round(e.Height)))
	}
	s.Camera.SetAspect(float32(s.Viewport.Ratio()))
	s.Panel.Layout(e.Width)
	s.Uniforms.SetResolution(s.Viewport.Aspect)
	return true
}

// Sync writes the per-frame values into the uniform store. A pointer that
// has never moved keeps the store's last value.
func (s *Sketch) Sync(elapsed float64) {
	s.Uniforms.SetTime(float32(elapsed))
	s.Uniforms.SetProgress(float32(s.Settings.Progress))
	if pos, ok := s.Pointer.Position(); ok {
		s.Uniforms.SetMouse(pos)
	}
}

// Frame snapshots the store and camera for drawing.
func (s *Sketch) Frame() Frame {
	return Frame{
		Uniforms:   s.Uniforms.Uniforms(),
		Projection: s.Camera.Projection(),
		View:       s.Camera.View(),
		Viewport:   s.Viewport,
		Panel:      s.Panel,
	}
}

func (s *Sketch) pointerMove(e PointerMoveEvent) {
	s.cursorX, s.cursorY = e.X, e.Y
	s.Pointer.Move(e.X, e.Y, s.Viewport.Width, s.Viewport.Height)
	if s.Panel.Drag(e.X, e.Y) {
		return
	}
	s.Orbit.Move(e.X, e.Y, s.Viewport.Height)
}

func (s *Sketch) pointerButton(e PointerButtonEvent) {
	s.cursorX, s.cursorY = e.X, e.Y
	if !e.Pressed {
		s.Panel.Release()
		s.Orbit.End()
		return
	}
	if s.Panel.Press(e.X, e.Y) {
		return
	}
	s.Orbit.Begin(e.X, e.Y)
}

func (s *Sketch) action(a Action) {
	switch a {
	case ActionProgressUp:
		s.Panel.Control(ProgressControl).Nudge(1)
	case ActionProgressDown:
		s.Panel.Control(ProgressControl).Nudge(-1)
	case ActionResetCamera:
		s.Orbit.Reset()
	case ActionTogglePanel:
		s.Panel.Hidden = !s.Panel.Hidden
	}
}
