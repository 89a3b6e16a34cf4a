package renderer

import (
	"fmt"
	"log"
	"math"
	"strings"
	"sync"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/richinsley/shaderplane/graphics"
	"github.com/richinsley/shaderplane/sketch"
)

// Ensures gl.Init() is called only once per process.
var glInitOnce sync.Once

// Renderer draws the scene and the control panel into the window's
// framebuffer or an offscreen target.
type Renderer struct {
	context    graphics.Context
	scene      *Scene
	panel      *panelRenderer
	target     *OffscreenTarget
	width      int
	height     int
	pixelRatio float64
	clearHex   string
	clearAlpha float64
	clear      [4]float32
	outputSRGB bool
}

// NewRenderer makes ctx current, loads the GL entry points and prepares
// the panel overlay.
func NewRenderer(ctx graphics.Context) (*Renderer, error) {
	r := &Renderer{
		context:    ctx,
		pixelRatio: 1,
		outputSRGB: true,
	}

	if ctx != nil {
		r.context.MakeCurrent()
		r.width, r.height = ctx.GetSize()
	}

	var initErr error
	glInitOnce.Do(func() {
		initErr = gl.Init()
	})
	if initErr != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", initErr)
	}
	log.Printf("OpenGL %s (%s)", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	if err := r.SetClearColor(DefaultClearColor, 1); err != nil {
		return nil, err
	}

	var err error
	r.panel, err = newPanelRenderer()
	if err != nil {
		return nil, fmt.Errorf("failed to create panel renderer: %w", err)
	}
	return r, nil
}

// SetPixelRatio sets the ratio between drawing-buffer pixels and logical
// pixels.
func (r *Renderer) SetPixelRatio(ratio float64) {
	if ratio <= 0 {
		return
	}
	r.pixelRatio = ratio
}

// SetSize sets the logical output size.
func (r *Renderer) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width, r.height = width, height
}

// Size returns the logical output size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// DrawingBufferSize is the size in pixels of whatever is being drawn to.
func (r *Renderer) DrawingBufferSize() (int, int) {
	if r.target != nil {
		return r.target.width, r.target.height
	}
	if r.context != nil {
		return r.context.GetFramebufferSize()
	}
	return int(math.Round(float64(r.width) * r.pixelRatio)), int(math.Round(float64(r.height) * r.pixelRatio))
}

// SetClearColor parses hex (#rgb, #rrggbb, rrggbb or 0xrrggbb) as the
// background color.
func (r *Renderer) SetClearColor(hex string, alpha float64) error {
	c, err := clearValues(hex, alpha, r.outputSRGB)
	if err != nil {
		return err
	}
	r.clearHex, r.clearAlpha, r.clear = hex, alpha, c
	return nil
}

// SetOutputSRGB selects sRGB encoding of the output. The clear color is
// re-derived for the new encoding.
func (r *Renderer) SetOutputSRGB(enabled bool) {
	r.outputSRGB = enabled
	if c, err := clearValues(r.clearHex, r.clearAlpha, enabled); err == nil {
		r.clear = c
	}
}

// SetRenderTarget redirects drawing to t; nil restores the window.
func (r *Renderer) SetRenderTarget(t *OffscreenTarget) {
	r.target = t
}

// Draw renders the active scene and the panel overlay for one frame.
func (r *Renderer) Draw(f sketch.Frame) {
	r.Render(r.scene, f)
	if f.Panel != nil && !f.Panel.Hidden {
		w, h := r.DrawingBufferSize()
		gl.Disable(gl.FRAMEBUFFER_SRGB)
		r.panel.draw(f.Panel, r.width, r.height, w, h)
	}
}

// Render draws scene with the camera matrices and uniforms in f.
func (r *Renderer) Render(scene *Scene, f sketch.Frame) {
	var fbo uint32
	if r.target != nil {
		fbo = r.target.fbo
	}
	gl.BindFramebuffer(gl.FRAMEBUFFER, fbo)

	if r.outputSRGB {
		gl.Enable(gl.FRAMEBUFFER_SRGB)
	} else {
		gl.Disable(gl.FRAMEBUFFER_SRGB)
	}

	w, h := r.DrawingBufferSize()
	gl.Viewport(0, 0, int32(w), int32(h))
	gl.ClearColor(r.clear[0], r.clear[1], r.clear[2], r.clear[3])
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

	if scene == nil {
		return
	}
	if scene.Material.DoubleSide {
		gl.Disable(gl.CULL_FACE)
	} else {
		gl.Enable(gl.CULL_FACE)
	}
	scene.Material.apply(f.Uniforms, f.Projection, f.View.Mul4(scene.Model))
	scene.Mesh.draw()
}

// Shutdown releases GL resources. The context itself is owned by the
// caller.
func (r *Renderer) Shutdown() {
	r.scene.Destroy()
	r.scene = nil
	if r.panel != nil {
		r.panel.destroy()
	}
}

func newProgram(vertexShaderSource, fragmentShaderSource string) (uint32, error) {
	vertexShader, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return 0, err
	}
	fragmentShader, err := compileShader(fragmentShaderSource, gl.FRAGMENT_SHADER)
	if err != nil {
		gl.DeleteShader(vertexShader)
		return 0, err
	}

	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)
	gl.DeleteShader(vertexShader)
	gl.DeleteShader(fragmentShader)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(logText))
		gl.DeleteProgram(program)
		return 0, fmt.Errorf("failed to link program: %v", logText)
	}
	return program, nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		logText := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(logText))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("failed to compile shader: %v", logText)
	}
	return shader, nil
}
