package glfwcontext

import (
	"log"
	"runtime"

	glfw "github.com/go-gl/glfw/v3.3/glfw"
	"github.com/richinsley/shaderplane/graphics"
	"github.com/richinsley/shaderplane/sketch"
)

const eventBuffer = 256

var (
	_ graphics.Context = (*Context)(nil)
	_ sketch.Host      = (*Context)(nil)
)

// Context owns a GLFW window and republishes its input as sketch events.
type Context struct {
	window *glfw.Window
	events chan sketch.Event
	// A map to store functions to be called on key presses.
	keyCallbacks map[glfw.Key]func()
	// keys whose callback also fires on auto-repeat
	repeatable map[glfw.Key]bool
}

// New creates a width x height window. A hidden window only provides a
// context for offscreen rendering.
func New(width, height int, title string, visible bool) (*Context, error) {
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 1)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.SRGBCapable, glfw.True)
	glfw.WindowHint(glfw.DepthBits, 24)

	if visible {
		glfw.WindowHint(glfw.Resizable, glfw.True)
		glfw.WindowHint(glfw.Visible, glfw.True)
	} else {
		glfw.WindowHint(glfw.Visible, glfw.False)
	}

	win, err := glfw.CreateWindow(width, height, title, nil, nil)
	if err != nil {
		return nil, err
	}

	c := &Context{
		window:       win,
		events:       make(chan sketch.Event, eventBuffer),
		keyCallbacks: make(map[glfw.Key]func()),
		repeatable:   make(map[glfw.Key]bool),
	}

	win.SetKeyCallback(c.glfwKeyCallback)
	win.SetCursorPosCallback(c.glfwCursorPosCallback)
	win.SetMouseButtonCallback(c.glfwMouseButtonCallback)
	win.SetScrollCallback(c.glfwScrollCallback)
	win.SetSizeCallback(func(*glfw.Window, int, int) { c.publishResize() })
	win.SetFramebufferSizeCallback(func(*glfw.Window, int, int) { c.publishResize() })

	c.bindAction(glfw.KeySpace, sketch.ActionTogglePlay, false)
	c.bindAction(glfw.KeyRight, sketch.ActionProgressUp, true)
	c.bindAction(glfw.KeyUp, sketch.ActionProgressUp, true)
	c.bindAction(glfw.KeyLeft, sketch.ActionProgressDown, true)
	c.bindAction(glfw.KeyDown, sketch.ActionProgressDown, true)
	c.bindAction(glfw.KeyR, sketch.ActionResetCamera, false)
	c.bindAction(glfw.KeyH, sketch.ActionTogglePanel, false)

	// the initial size, before any callback fires
	c.publishResize()
	return c, nil
}

// RegisterKeyCallback allows the main application to register a function to be
// called when a specific key is pressed.
func (c *Context) RegisterKeyCallback(key glfw.Key, f func()) {
	c.keyCallbacks[key] = f
}

func (c *Context) bindAction(key glfw.Key, a sketch.Action, repeat bool) {
	c.RegisterKeyCallback(key, func() { c.publish(sketch.ActionEvent{Action: a}) })
	c.repeatable[key] = repeat
}

// publish queues ev without blocking the GLFW callback. Events beyond the
// buffer are dropped.
func (c *Context) publish(ev sketch.Event) {
	select {
	case c.events <- ev:
	default:
		log.Printf("Warning: event queue full, dropping %T", ev)
	}
}

func (c *Context) publishResize() {
	w, h := c.window.GetSize()
	if w <= 0 || h <= 0 {
		// minimized
		return
	}
	c.publish(sketch.ResizeEvent{Width: float64(w), Height: float64(h), PixelRatio: c.PixelRatio()})
}

func (c *Context) glfwKeyCallback(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	if key == glfw.KeyEscape && action == glfw.Press {
		w.SetShouldClose(true)
	}

	if action == glfw.Press || (action == glfw.Repeat && c.repeatable[key]) {
		if callback, ok := c.keyCallbacks[key]; ok {
			callback()
		}
	}
}

func (c *Context) glfwCursorPosCallback(w *glfw.Window, x, y float64) {
	c.publish(sketch.PointerMoveEvent{X: x, Y: y})
}

func (c *Context) glfwMouseButtonCallback(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
	if button != glfw.MouseButtonLeft {
		return
	}
	x, y := w.GetCursorPos()
	c.publish(sketch.PointerButtonEvent{X: x, Y: y, Pressed: action == glfw.Press})
}

func (c *Context) glfwScrollCallback(w *glfw.Window, xoff, yoff float64) {
	if yoff != 0 {
		c.publish(sketch.ScrollEvent{DY: yoff})
	}
}

// Events implements sketch.Host.
func (c *Context) Events() <-chan sketch.Event {
	return c.events
}

// NextFrame implements sketch.Host: it presents the frame and polls input.
func (c *Context) NextFrame() bool {
	c.EndFrame()
	return !c.window.ShouldClose()
}

// Wait implements sketch.Host: it sleeps until the window receives input.
func (c *Context) Wait() bool {
	glfw.WaitEvents()
	return !c.window.ShouldClose()
}

// Wake interrupts a pending Wait from any goroutine.
func Wake() {
	glfw.PostEmptyEvent()
}

// PixelRatio is the framebuffer size over the window size.
func (c *Context) PixelRatio() float64 {
	fbWidth, _ := c.window.GetFramebufferSize()
	winWidth, _ := c.window.GetSize()
	if winWidth <= 0 || fbWidth <= 0 {
		return 1
	}
	return float64(fbWidth) / float64(winWidth)
}

// MakeCurrent makes the context current for the calling goroutine.
func (c *Context) MakeCurrent() {
	c.window.MakeContextCurrent()
}

// Shutdown only destroys the window.
func (c *Context) Shutdown() {
	c.window.Destroy()
}

func (c *Context) EndFrame() {
	c.window.SwapBuffers()
	glfw.PollEvents()
}

func (c *Context) GetFramebufferSize() (int, int) {
	return c.window.GetFramebufferSize()
}

func (c *Context) GetSize() (int, int) {
	return c.window.GetSize()
}

// InitGraphics initializes the main graphics subsystem (GLFW). Must be called from the main thread.
func InitGraphics() error {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return err
	}
	log.Printf("GLFW Initialized")
	return nil
}

// TerminateGraphics shuts down the graphics subsystem. Must be called from the main thread.
func TerminateGraphics() {
	glfw.Terminate()
	log.Printf("GLFW Terminated")
}
