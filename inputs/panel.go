package inputs

import (
	"math"
	"strconv"
	"strings"
)

// Panel geometry in logical pixels, matching a default dat.GUI panel
// docked to the top-right corner.
const (
	PanelWidth     = 245.0
	PanelRowHeight = 27.0
	PanelMargin    = 15.0
	panelLabelFrac = 0.4
	panelPadding   = 4.0
)

// Rect is an axis-aligned rectangle in window coordinates (origin top-left).
type Rect struct {
	X, Y, W, H float64
}

// Contains reports whether (x,y) lies inside r.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// Control is a scalar slider bound to a float64 owned by the caller.
type Control struct {
	Name string
	Min  float64
	Max  float64
	Step float64

	target   *float64
	onChange func(float64)
}

// Value returns the bound value.
func (c *Control) Value() float64 {
	return *c.target
}

// Set clamps v to [Min,Max], snaps it to Step and writes it through to the
// bound value.
func (c *Control) Set(v float64) {
	if math.IsNaN(v) {
		return
	}
	if c.Step > 0 {
		v = c.Min + math.Round((v-c.Min)/c.Step)*c.Step
		// strip the float noise the snap introduces so 0.42 stays 0.42
		scale := math.Pow(10, float64(StepDecimals(c.Step)))
		v = math.Round(v*scale) / scale
	}
	v = math.Max(c.Min, math.Min(c.Max, v))
	if *c.target == v {
		return
	}
	*c.target = v
	if c.onChange != nil {
		c.onChange(v)
	}
}

// StepDecimals is the number of fraction digits in the shortest decimal
// form of step: 0.01 has 2, 0.125 has 3, 2.5 has 1.
func StepDecimals(step float64) int {
	s := strconv.FormatFloat(step, 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

// Nudge moves the value by n steps.
func (c *Control) Nudge(n int) {
	c.Set(c.Value() + float64(n)*c.Step)
}

// Fraction is the value's position within [Min,Max] in [0,1].
func (c *Control) Fraction() float64 {
	if c.Max <= c.Min {
		return 0
	}
	return (c.Value() - c.Min) / (c.Max - c.Min)
}

// OnChange registers a callback fired after every change of the value.
func (c *Control) OnChange(f func(float64)) *Control {
	c.onChange = f
	return c
}

// Panel is the on-screen list of controls. It only holds layout and
// interaction state; drawing is done by the renderer.
type Panel struct {
	controls []*Control
	bounds   Rect
	active   *Control
	Hidden   bool
}

// NewPanel returns an empty panel.
func NewPanel() *Panel {
	return &Panel{}
}

// AddControl binds target as a slider in [min,max] with the given step.
// The current target value is clamped into range immediately.
func (p *Panel) AddControl(target *float64, name string, min, max, step float64) *Control {
	c := &Control{Name: name, Min: min, Max: max, Step: step, target: target}
	c.Set(*target)
	p.controls = append(p.controls, c)
	p.bounds.H = float64(len(p.controls)) * PanelRowHeight
	return c
}

// Controls returns the bound controls in insertion order.
func (p *Panel) Controls() []*Control {
	return p.controls
}

// Control looks a control up by name.
func (p *Panel) Control(name string) *Control {
	for _, c := range p.controls {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// Layout docks the panel to the top-right corner of a viewport of the given
// logical width.
func (p *Panel) Layout(viewportWidth float64) {
	w := math.Min(PanelWidth, viewportWidth)
	p.bounds = Rect{
		X: math.Max(0, viewportWidth-w-PanelMargin),
		Y: 0,
		W: w,
		H: float64(len(p.controls)) * PanelRowHeight,
	}
}

// Bounds is the panel rectangle in window coordinates.
func (p *Panel) Bounds() Rect {
	return p.bounds
}

// Row returns the label and slider rectangles for control i.
func (p *Panel) Row(i int) (label, slider Rect) {
	y := p.bounds.Y + float64(i)*PanelRowHeight
	lw := p.bounds.W * panelLabelFrac
	label = Rect{X: p.bounds.X, Y: y, W: lw, H: PanelRowHeight}
	slider = Rect{
		X: p.bounds.X + lw,
		Y: y + panelPadding,
		W: p.bounds.W - lw - panelPadding,
		H: PanelRowHeight - 2*panelPadding,
	}
	return label, slider
}

// Contains reports whether (x,y) is over the panel.
func (p *Panel) Contains(x, y float64) bool {
	return !p.Hidden && p.bounds.Contains(x, y)
}

// Press starts a slider drag when (x,y) hits a slider. It reports whether
// the panel consumed the press.
func (p *Panel) Press(x, y float64) bool {
	if !p.Contains(x, y) {
		return false
	}
	for i, c := range p.controls {
		_, slider := p.Row(i)
		if slider.Contains(x, y) {
			p.active = c
			p.setFromX(c, slider, x)
			return true
		}
	}
	return true
}

// Drag updates the active slider. It reports whether a drag is in progress.
func (p *Panel) Drag(x, y float64) bool {
	if p.active == nil {
		return false
	}
	for i, c := range p.controls {
		if c == p.active {
			_, slider := p.Row(i)
			p.setFromX(c, slider, x)
		}
	}
	return true
}

// Release ends any slider drag.
func (p *Panel) Release() {
	p.active = nil
}

// Dragging reports whether a slider is being dragged.
func (p *Panel) Dragging() bool {
	return p.active != nil
}

func (p *Panel) setFromX(c *Control, slider Rect, x float64) {
	if slider.W <= 0 {
		return
	}
	f := math.Max(0, math.Min(1, (x-slider.X)/slider.W))
	c.Set(c.Min + f*(c.Max-c.Min))
}
