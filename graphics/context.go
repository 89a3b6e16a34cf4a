package graphics

// Context defines the interface for an OpenGL context.
type Context interface {
	MakeCurrent()
	// GetFramebufferSize is the drawable size in pixels.
	GetFramebufferSize() (int, int)
	// GetSize is the window size in logical pixels.
	GetSize() (int, int)
}
