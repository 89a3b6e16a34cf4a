package renderer

import (
	"fmt"
	"log"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/richinsley/shaderplane/options"
	"github.com/richinsley/shaderplane/shader"
)

// Scene is the single full-screen plane with its material.
type Scene struct {
	Title    string
	Mesh     *Mesh
	Material *ShaderMaterial
	Model    mgl32.Mat4
	matcap   *Texture
}

// Destroy releases all OpenGL resources used by the scene.
func (s *Scene) Destroy() {
	if s == nil {
		return
	}
	log.Printf("Destroying scene: %s", s.Title)
	if s.Material != nil {
		s.Material.Destroy()
	}
	if s.matcap != nil {
		s.matcap.Destroy()
	}
	if s.Mesh != nil {
		s.Mesh.Destroy()
	}
}

// LoadScene builds the plane, its matcap and its material, and makes it
// the scene drawn by Draw.
func (r *Renderer) LoadScene(opts *options.ShaderOptions) (*Scene, error) {
	scene := &Scene{
		Title: "plane",
		Model: mgl32.Ident4(),
	}

	matcapPath := ""
	if opts != nil && opts.Matcap != nil {
		matcapPath = *opts.Matcap
	}
	scene.matcap = LoadMatcap(matcapPath)

	material, err := NewShaderMaterial(shader.GetFragmentShader(), scene.matcap)
	if err != nil {
		scene.Destroy()
		return nil, fmt.Errorf("failed to create material: %w", err)
	}
	scene.Material = material
	scene.Mesh = NewMesh(PlaneGeometry(1, 1, 1, 1))

	r.scene.Destroy()
	r.scene = scene
	log.Printf("Successfully loaded scene: %s", scene.Title)
	return scene, nil
}
