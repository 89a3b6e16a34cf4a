package sketch

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Uniform names shared with the fragment shader.
const (
	UniformTime       = "time"
	UniformProgress   = "progress"
	UniformMouse      = "mouse"
	UniformResolution = "resolution"
	UniformUVRate1    = "uvRate1"
)

// UniformNames lists the scalar and vector uniforms the store provides.
var UniformNames = []string{
	UniformTime,
	UniformProgress,
	UniformMouse,
	UniformResolution,
	UniformUVRate1,
}

// Uniforms is one frame's worth of shader inputs.
type Uniforms struct {
	Time       float32
	Progress   float32
	Mouse      mgl32.Vec2
	Resolution mgl32.Vec2
	UVRate1    mgl32.Vec2
}

// Value looks a uniform up by its shader name. The result is a float32 or
// an mgl32.Vec2.
func (u Uniforms) Value(name string) (any, bool) {
	switch name {
	case UniformTime:
		return u.Time, true
	case UniformProgress:
		return u.Progress, true
	case UniformMouse:
		return u.Mouse, true
	case UniformResolution:
		return u.Resolution, true
	case UniformUVRate1:
		return u.UVRate1, true
	}
	return nil, false
}

// Store holds the current uniform values between frames.
type Store struct {
	current Uniforms
}

// NewStore returns a store with uvRate1 fixed at (1,1) and an uncorrected
// resolution.
func NewStore() *Store {
	return &Store{current: Uniforms{
		Resolution: mgl32.Vec2{1, 1},
		UVRate1:    mgl32.Vec2{1, 1},
	}}
}

// Uniforms returns a copy of the current values.
func (s *Store) Uniforms() Uniforms {
	return s.current
}

func (s *Store) SetTime(t float32) { s.current.Time = t }

func (s *Store) SetProgress(p float32) { s.current.Progress = p }

func (s *Store) SetMouse(m mgl32.Vec2) { s.current.Mouse = m }

func (s *Store) SetResolution(r mgl32.Vec2) { s.current.Resolution = r }

// Value looks a current uniform up by its shader name.
func (s *Store) Value(name string) (any, bool) { return s.current.Value(name) }
