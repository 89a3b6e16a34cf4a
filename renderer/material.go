package renderer

import (
	"fmt"

	gl "github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/shaderplane/shader"
	"github.com/richinsley/shaderplane/sketch"
	xlate "github.com/richinsley/shaderplane/translator"
)

// ShaderMaterial is the compiled program for the plane and the locations
// of the uniforms it reads.
type ShaderMaterial struct {
	Program    uint32
	DoubleSide bool
	Matcap     *Texture

	projectionLoc int32
	modelViewLoc  int32
	timeLoc       int32
	progressLoc   int32
	mouseLoc      int32
	resolutionLoc int32
	uvRate1Loc    int32
	matcapLoc     int32
}

// NewShaderMaterial translates fragmentSource, links it against the
// plane vertex shader and resolves the uniform locations.
func NewShaderMaterial(fragmentSource string, matcap *Texture) (*ShaderMaterial, error) {
	frag, err := xlate.TranslateFragment(fragmentSource)
	if err != nil {
		return nil, err
	}

	vertexSource := shader.GenerateVertexShader(frag.MappedName(shader.DefaultUVVarying))
	program, err := newProgram(vertexSource, frag.Code)
	if err != nil {
		return nil, fmt.Errorf("failed to create shader program: %w", err)
	}

	m := &ShaderMaterial{
		Program:    program,
		DoubleSide: true,
		Matcap:     matcap,
	}
	gl.UseProgram(program)
	// the vertex stage is not translated, its names are as written
	m.projectionLoc = gl.GetUniformLocation(program, gl.Str("projectionMatrix\x00"))
	m.modelViewLoc = gl.GetUniformLocation(program, gl.Str("modelViewMatrix\x00"))
	m.timeLoc = uniformLocation(frag, program, sketch.UniformTime)
	m.progressLoc = uniformLocation(frag, program, sketch.UniformProgress)
	m.mouseLoc = uniformLocation(frag, program, sketch.UniformMouse)
	m.resolutionLoc = uniformLocation(frag, program, sketch.UniformResolution)
	m.uvRate1Loc = uniformLocation(frag, program, sketch.UniformUVRate1)
	m.matcapLoc = uniformLocation(frag, program, "matcap")
	gl.UseProgram(0)
	return m, nil
}

// uniformLocation looks name up under its translated name. Uniforms the
// compiler optimized out resolve to -1, which GL ignores on upload.
func uniformLocation(frag *xlate.Fragment, program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(frag.MappedName(name)+"\x00"))
}

func (m *ShaderMaterial) apply(u sketch.Uniforms, projection, modelView mgl32.Mat4) {
	gl.UseProgram(m.Program)
	gl.UniformMatrix4fv(m.projectionLoc, 1, false, &projection[0])
	gl.UniformMatrix4fv(m.modelViewLoc, 1, false, &modelView[0])
	gl.Uniform1f(m.timeLoc, u.Time)
	gl.Uniform1f(m.progressLoc, u.Progress)
	gl.Uniform2f(m.mouseLoc, u.Mouse.X(), u.Mouse.Y())
	gl.Uniform2f(m.resolutionLoc, u.Resolution.X(), u.Resolution.Y())
	gl.Uniform2f(m.uvRate1Loc, u.UVRate1.X(), u.UVRate1.Y())

	if m.Matcap != nil {
		gl.ActiveTexture(gl.TEXTURE0)
		m.Matcap.Bind()
		gl.Uniform1i(m.matcapLoc, 0)
	}
}

// Destroy deletes the program. The matcap is owned by the scene.
func (m *ShaderMaterial) Destroy() {
	gl.DeleteProgram(m.Program)
}
