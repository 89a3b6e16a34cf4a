package renderer

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strconv"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/richinsley/shaderplane/inputs"
	"github.com/richinsley/shaderplane/shader"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	panelBackground = colorful.MustParseHex("#1a1a1a")
	panelTrack      = colorful.MustParseHex("#303030")
	panelFill       = colorful.MustParseHex("#2fa1d6")
	panelText       = colorful.MustParseHex("#eeeeee")
)

const panelTextInset = 6.0

// textImage is a rasterized string kept until the string changes.
type textImage struct {
	text    string
	texture uint32
	width   int
	height  int
}

// panelRenderer draws the slider panel as flat quads plus text quads on
// top of the scene.
type panelRenderer struct {
	program    uint32
	vao        uint32
	vbo        uint32
	projection int32
	color      int32
	textured   int32
	sampler    int32
	texts      map[string]*textImage
}

func newPanelRenderer() (*panelRenderer, error) {
	vs, fs := shader.GetPanelShaders()
	program, err := newProgram(vs, fs)
	if err != nil {
		return nil, err
	}
	p := &panelRenderer{
		program: program,
		texts:   make(map[string]*textImage),
	}
	p.projection = gl.GetUniformLocation(program, gl.Str("projection\x00"))
	p.color = gl.GetUniformLocation(program, gl.Str("u_color\x00"))
	p.textured = gl.GetUniformLocation(program, gl.Str("u_textured\x00"))
	p.sampler = gl.GetUniformLocation(program, gl.Str("u_texture\x00"))

	gl.GenVertexArrays(1, &p.vao)
	gl.GenBuffers(1, &p.vbo)
	gl.BindVertexArray(p.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, 6*4*4, nil, gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, 4*4, gl.PtrOffset(2*4))
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
	return p, nil
}

// draw renders panel in logical coordinates scaled onto a framebuffer of
// fbW x fbH pixels.
func (p *panelRenderer) draw(panel *inputs.Panel, logicalW, logicalH, fbW, fbH int) {
	if logicalW <= 0 || logicalH <= 0 {
		return
	}
	gl.Viewport(0, 0, int32(fbW), int32(fbH))
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)

	projection := mgl32.Ortho2D(0, float32(logicalW), float32(logicalH), 0)
	gl.UseProgram(p.program)
	gl.UniformMatrix4fv(p.projection, 1, false, &projection[0])
	gl.Uniform1i(p.sampler, 0)
	gl.BindVertexArray(p.vao)

	p.rect(panel.Bounds(), panelBackground, 1)
	for i, c := range panel.Controls() {
		label, slider := panel.Row(i)
		p.rect(slider, panelTrack, 1)
		fill := slider
		fill.W = slider.W * c.Fraction()
		p.rect(fill, panelFill, 1)

		p.text("label:"+c.Name, c.Name, label.X+panelTextInset, label.Y, label.H)
		p.text("value:"+c.Name, formatValue(c.Value(), c.Step), slider.X+panelTextInset, slider.Y, slider.H)
	}

	gl.BindVertexArray(0)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	gl.Disable(gl.BLEND)
}

func (p *panelRenderer) rect(r inputs.Rect, c colorful.Color, alpha float32) {
	if r.W <= 0 || r.H <= 0 {
		return
	}
	gl.Uniform1i(p.textured, 0)
	gl.Uniform4f(p.color, float32(c.R), float32(c.G), float32(c.B), alpha)
	p.quad(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

// text draws s left-aligned and vertically centered in a row starting at
// rowY with height rowH. key identifies the cache slot.
func (p *panelRenderer) text(key, s string, x, rowY, rowH float64) {
	t := p.texts[key]
	if t == nil {
		t = &textImage{}
		gl.GenTextures(1, &t.texture)
		p.texts[key] = t
	}
	if t.text != s || t.width == 0 {
		img := rasterizeText(s)
		t.text = s
		t.width, t.height = img.Rect.Dx(), img.Rect.Dy()
		gl.BindTexture(gl.TEXTURE_2D, t.texture)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.PixelStorei(gl.UNPACK_ALIGNMENT, 1)
		gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, int32(t.width), int32(t.height), 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	}

	y := rowY + math.Floor((rowH-float64(t.height))/2)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, t.texture)
	gl.Uniform1i(p.textured, 1)
	gl.Uniform4f(p.color, float32(panelText.R), float32(panelText.G), float32(panelText.B), 1)
	p.quad(float32(x), float32(y), float32(t.width), float32(t.height))
}

func (p *panelRenderer) quad(x, y, w, h float32) {
	vertices := []float32{
		x, y + h, 0, 1,
		x, y, 0, 0,
		x + w, y, 1, 0,
		x, y + h, 0, 1,
		x + w, y, 1, 0,
		x + w, y + h, 1, 1,
	}
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(vertices)*4, gl.Ptr(vertices))
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (p *panelRenderer) destroy() {
	for _, t := range p.texts {
		gl.DeleteTextures(1, &t.texture)
	}
	p.texts = nil
	gl.DeleteBuffers(1, &p.vbo)
	gl.DeleteVertexArrays(1, &p.vao)
	gl.DeleteProgram(p.program)
}

// rasterizeText draws s in white on a transparent image just large enough
// to hold it. Row 0 is the top of the text.
func rasterizeText(s string) *image.RGBA {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	if w < 1 {
		w = 1
	}
	h := face.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.Transparent, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
		Dot:  fixed.Point26_6{X: 0, Y: fixed.I(face.Ascent)},
	}
	d.DrawString(s)
	return img
}

// formatValue prints v with as many decimals as step carries.
func formatValue(v, step float64) string {
	decimals := 2
	if step > 0 {
		decimals = inputs.StepDecimals(step)
	}
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
