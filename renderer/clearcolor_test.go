package renderer

import (
	"math"
	"testing"
)

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < 1e-3
}

func TestClearValuesFormats(t *testing.T) {
	for _, in := range []string{"#eeeeee", "eeeeee", "0xEEEEEE", " #eee "} {
		c, err := clearValues(in, 1, false)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", in, err)
		}
		want := float32(0xee) / 255
		if !near(c[0], want) || !near(c[1], want) || !near(c[2], want) || c[3] != 1 {
			t.Fatalf("%q: color mismatch: %v", in, c)
		}
	}
}

func TestClearValuesLinear(t *testing.T) {
	srgb, err := clearValues(DefaultClearColor, 1, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	lin, err := clearValues(DefaultClearColor, 1, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// #ee is ~0.855 linear
	if !near(lin[0], 0.855) {
		t.Fatalf("linear mismatch: got %v", lin[0])
	}
	if lin[0] >= srgb[0] {
		t.Fatalf("linearized value should be darker: %v vs %v", lin[0], srgb[0])
	}
}

func TestClearValuesEndpoints(t *testing.T) {
	black, _ := clearValues("#000000", 1, true)
	white, _ := clearValues("#ffffff", 1, true)
	if black[0] != 0 || !near(white[0], 1) {
		t.Fatalf("endpoints must survive linearization: %v %v", black, white)
	}
}

func TestClearValuesAlphaClamp(t *testing.T) {
	c, _ := clearValues("#ffffff", 2, false)
	if c[3] != 1 {
		t.Fatalf("alpha not clamped: %v", c[3])
	}
	c, _ = clearValues("#ffffff", -1, false)
	if c[3] != 0 {
		t.Fatalf("alpha not clamped: %v", c[3])
	}
}

func TestClearValuesInvalid(t *testing.T) {
	for _, in := range []string{"", "#12", "#gggggg", "blue"} {
		if _, err := clearValues(in, 1, false); err == nil {
			t.Fatalf("%q: expected error", in)
		}
	}
}
