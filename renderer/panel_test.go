package renderer

import "testing"

func TestFormatValue(t *testing.T) {
	cases := []struct {
		v, step float64
		want    string
	}{
		{0.42, 0.01, "0.42"},
		{0, 0.01, "0.00"},
		{1, 0.01, "1.00"},
		{0.5, 0.1, "0.5"},
		{3, 1, "3"},
		{0.125, 0.001, "0.125"},
		{0.333333, 0, "0.33"},
		{0.25, 0.25, "0.25"},
		{0.375, 0.125, "0.375"},
		{2.5, 2.5, "2.5"},
	}
	for _, c := range cases {
		if got := formatValue(c.v, c.step); got != c.want {
			t.Fatalf("formatValue(%v, %v) mismatch: got %q, want %q", c.v, c.step, got, c.want)
		}
	}
}

func TestRasterizeText(t *testing.T) {
	img := rasterizeText("progress")
	if img.Rect.Dx() != 7*len("progress") || img.Rect.Dy() != 13 {
		t.Fatalf("text image size mismatch: %v", img.Rect)
	}
	lit := 0
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 {
			lit++
		}
	}
	if lit == 0 {
		t.Fatalf("no glyph pixels drawn")
	}

	empty := rasterizeText("")
	if empty.Rect.Dx() != 1 {
		t.Fatalf("empty text should produce a 1px wide image: %v", empty.Rect)
	}
}
