package renderer

import (
	"reflect"
	"testing"
)

func TestUnitPlaneGeometry(t *testing.T) {
	g := PlaneGeometry(1, 1, 1, 1)
	wantPos := []float32{
		-0.5, 0.5, 0,
		0.5, 0.5, 0,
		-0.5, -0.5, 0,
		0.5, -0.5, 0,
	}
	wantUV := []float32{0, 1, 1, 1, 0, 0, 1, 0}
	wantIdx := []uint32{0, 2, 1, 2, 3, 1}

	if !reflect.DeepEqual(g.Positions, wantPos) {
		t.Fatalf("positions mismatch: %v", g.Positions)
	}
	if !reflect.DeepEqual(g.UVs, wantUV) {
		t.Fatalf("uvs mismatch: %v", g.UVs)
	}
	if !reflect.DeepEqual(g.Indices, wantIdx) {
		t.Fatalf("indices mismatch: %v", g.Indices)
	}
}

func TestPlaneGeometrySegments(t *testing.T) {
	g := PlaneGeometry(2, 4, 3, 2)
	if g.VertexCount() != 12 {
		t.Fatalf("vertex count mismatch: %d", g.VertexCount())
	}
	if len(g.Indices) != 3*2*6 {
		t.Fatalf("index count mismatch: %d", len(g.Indices))
	}
	for _, i := range g.Indices {
		if int(i) >= g.VertexCount() {
			t.Fatalf("index out of range: %d", i)
		}
	}
	// last vertex is the bottom-right corner
	n := g.VertexCount() - 1
	if g.Positions[n*3] != 1 || g.Positions[n*3+1] != -2 {
		t.Fatalf("bottom-right mismatch: %v", g.Positions[n*3:n*3+3])
	}
	if g.UVs[n*2] != 1 || g.UVs[n*2+1] != 0 {
		t.Fatalf("bottom-right uv mismatch: %v", g.UVs[n*2:n*2+2])
	}
}

func TestPlaneGeometryClampsSegments(t *testing.T) {
	g := PlaneGeometry(1, 1, 0, -3)
	if g.VertexCount() != 4 || len(g.Indices) != 6 {
		t.Fatalf("degenerate segments not clamped: %d verts %d idx", g.VertexCount(), len(g.Indices))
	}
}

func TestInterleaved(t *testing.T) {
	g := PlaneGeometry(1, 1, 1, 1)
	data := g.Interleaved()
	if len(data) != 4*5 {
		t.Fatalf("interleaved length mismatch: %d", len(data))
	}
	want := []float32{0.5, -0.5, 0, 1, 0}
	if !reflect.DeepEqual(data[15:20], want) {
		t.Fatalf("last vertex mismatch: %v", data[15:20])
	}
}
