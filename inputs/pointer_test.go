package inputs

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestNormalizeCorners(t *testing.T) {
	sizes := [][2]float64{{800, 600}, {600, 800}, {1, 1}, {1920, 1080}}
	for _, s := range sizes {
		w, h := s[0], s[1]
		if got := Normalize(w/2, h/2, w, h); !got.ApproxEqual(mgl32.Vec2{0, 0}) {
			t.Fatalf("center of %vx%v mismatch: %v", w, h, got)
		}
		if got := Normalize(0, 0, w, h); !got.ApproxEqual(mgl32.Vec2{-1, 1}) {
			t.Fatalf("top-left of %vx%v mismatch: %v", w, h, got)
		}
		if got := Normalize(w, h, w, h); !got.ApproxEqual(mgl32.Vec2{1, -1}) {
			t.Fatalf("bottom-right of %vx%v mismatch: %v", w, h, got)
		}
	}
}

func TestNormalizeIsNotClamped(t *testing.T) {
	got := Normalize(1200, -300, 800, 600)
	want := mgl32.Vec2{2, 2}
	if !got.ApproxEqual(want) {
		t.Fatalf("outside point mismatch: got %v want %v", got, want)
	}
}

func TestTrackerLastWriteWins(t *testing.T) {
	var tr Tracker
	if _, ok := tr.Position(); ok {
		t.Fatalf("fresh tracker reports a position")
	}
	tr.Move(0, 0, 800, 600)
	tr.Move(400, 300, 800, 600)
	pos, ok := tr.Position()
	if !ok || !pos.ApproxEqual(mgl32.Vec2{0, 0}) {
		t.Fatalf("last position mismatch: %v %v", pos, ok)
	}
}

func TestTrackerDropsEventsWithoutViewport(t *testing.T) {
	var tr Tracker
	tr.Move(100, 100, 800, 600)
	tr.Move(5, 5, 0, 600)
	pos, _ := tr.Position()
	want := Normalize(100, 100, 800, 600)
	if pos != want {
		t.Fatalf("degenerate viewport overwrote position: got %v want %v", pos, want)
	}
}
