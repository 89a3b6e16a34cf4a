package renderer

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// DefaultClearColor is the background behind the plane.
const DefaultClearColor = "#eeeeee"

// clearValues parses hex into glClearColor components. With linear set the
// color is converted out of sRGB, since the framebuffer re-encodes it.
func clearValues(hex string, alpha float64, linear bool) ([4]float32, error) {
	s := strings.TrimSpace(hex)
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s = rest
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return [4]float32{}, fmt.Errorf("invalid clear color %q: %w", hex, err)
	}
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	r, g, b := c.R, c.G, c.B
	if linear {
		r, g, b = c.LinearRgb()
	}
	return [4]float32{float32(r), float32(g), float32(b), float32(alpha)}, nil
}
