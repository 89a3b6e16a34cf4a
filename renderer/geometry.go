package renderer

import (
	gl "github.com/go-gl/gl/v4.1-core/gl"
)

// Geometry is an indexed triangle list with per-vertex UVs.
type Geometry struct {
	Positions []float32 // x, y, z per vertex
	UVs       []float32 // u, v per vertex
	Indices   []uint32
}

// PlaneGeometry builds a width x height plane in the XY plane, centered
// on the origin, split into segX x segY quads. Vertices run row by row from
// the top-left corner; v is 1 on the top edge.
func PlaneGeometry(width, height float32, segX, segY int) Geometry {
	if segX < 1 {
		segX = 1
	}
	if segY < 1 {
		segY = 1
	}
	cols := segX + 1
	rows := segY + 1
	segW := width / float32(segX)
	segH := height / float32(segY)

	g := Geometry{
		Positions: make([]float32, 0, cols*rows*3),
		UVs:       make([]float32, 0, cols*rows*2),
		Indices:   make([]uint32, 0, segX*segY*6),
	}
	for iy := 0; iy < rows; iy++ {
		y := float32(iy)*segH - height/2
		for ix := 0; ix < cols; ix++ {
			x := float32(ix)*segW - width/2
			g.Positions = append(g.Positions, x, -y, 0)
			g.UVs = append(g.UVs, float32(ix)/float32(segX), 1-float32(iy)/float32(segY))
		}
	}
	for iy := 0; iy < segY; iy++ {
		for ix := 0; ix < segX; ix++ {
			a := uint32(ix + cols*iy)
			b := uint32(ix + cols*(iy+1))
			c := uint32(ix + 1 + cols*(iy+1))
			d := uint32(ix + 1 + cols*iy)
			g.Indices = append(g.Indices, a, b, d, b, c, d)
		}
	}
	return g
}

// VertexCount is the number of vertices.
func (g Geometry) VertexCount() int {
	return len(g.Positions) / 3
}

// Interleaved packs positions and UVs as x, y, z, u, v per vertex.
func (g Geometry) Interleaved() []float32 {
	n := g.VertexCount()
	out := make([]float32, 0, n*5)
	for i := 0; i < n; i++ {
		out = append(out, g.Positions[i*3:i*3+3]...)
		out = append(out, g.UVs[i*2:i*2+2]...)
	}
	return out
}

// Mesh is a Geometry uploaded to the GPU.
type Mesh struct {
	vao   uint32
	vbo   uint32
	ebo   uint32
	count int32
}

// NewMesh uploads g. Attribute 0 is the position, attribute 1 the UV.
func NewMesh(g Geometry) *Mesh {
	m := &Mesh{count: int32(len(g.Indices))}
	data := g.Interleaved()
	const stride = 5 * 4

	gl.GenVertexArrays(1, &m.vao)
	gl.GenBuffers(1, &m.vbo)
	gl.GenBuffers(1, &m.ebo)

	gl.BindVertexArray(m.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, m.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ELEMENT_ARRAY_BUFFER, m.ebo)
	gl.BufferData(gl.ELEMENT_ARRAY_BUFFER, len(g.Indices)*4, gl.Ptr(g.Indices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 3, gl.FLOAT, false, stride, gl.PtrOffset(0))
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointer(1, 2, gl.FLOAT, false, stride, gl.PtrOffset(3*4))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	return m
}

func (m *Mesh) draw() {
	gl.BindVertexArray(m.vao)
	gl.DrawElements(gl.TRIANGLES, m.count, gl.UNSIGNED_INT, gl.PtrOffset(0))
	gl.BindVertexArray(0)
}

// Destroy releases the buffers.
func (m *Mesh) Destroy() {
	gl.DeleteBuffers(1, &m.ebo)
	gl.DeleteBuffers(1, &m.vbo)
	gl.DeleteVertexArrays(1, &m.vao)
}
