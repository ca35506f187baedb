package ggchart

import (
	"errors"
	"fmt"
)

// command is one call observed by mockPath.
type command struct {
	op    string
	point Point
	rect  Rect
	color Color
}

func (c command) String() string {
	switch c.op {
	case "move", "line":
		return fmt.Sprintf("%s(%g,%g)", c.op, c.point.X, c.point.Y)
	case "oval":
		return fmt.Sprintf("oval(%g,%g,%g,%g)", c.rect.X, c.rect.Y, c.rect.W, c.rect.H)
	default:
		return c.op
	}
}

// mockPath records every Renderer, ColorSetter and OvalFiller call.
type mockPath struct {
	cmds      []command
	lineWidth float64
	dash      []float64
	stroked   int
	strokeErr error
}

func (m *mockPath) MoveTo(p Point) { m.cmds = append(m.cmds, command{op: "move", point: p}) }
func (m *mockPath) LineTo(p Point) { m.cmds = append(m.cmds, command{op: "line", point: p}) }

func (m *mockPath) SetStrokeColor(c Color) {
	m.cmds = append(m.cmds, command{op: "stroke-color", color: c})
}

func (m *mockPath) SetFillColor(c Color) {
	m.cmds = append(m.cmds, command{op: "fill-color", color: c})
}

func (m *mockPath) FillOval(r Rect, c Color) {
	m.cmds = append(m.cmds, command{op: "oval", rect: r, color: c})
}

func (m *mockPath) SetLineWidth(w float64)     { m.lineWidth = w }
func (m *mockPath) SetDash(lengths ...float64) { m.dash = NewDash(lengths...) }

func (m *mockPath) Stroke() error {
	m.stroked++
	return m.strokeErr
}

// ops returns the op names of the recorded geometry calls, skipping
// color changes.
func (m *mockPath) ops() []string {
	var out []string
	for _, c := range m.cmds {
		if c.op == "move" || c.op == "line" || c.op == "oval" {
			out = append(out, c.String())
		}
	}
	return out
}

// lastStrokeColor returns the most recent stroke color set on the path.
func (m *mockPath) lastStrokeColor() (Color, bool) {
	for i := len(m.cmds) - 1; i >= 0; i-- {
		if m.cmds[i].op == "stroke-color" {
			return m.cmds[i].color, true
		}
	}
	return Color{}, false
}

// gradientCall captures a DrawLinearGradient call.
type gradientCall struct {
	start, end Point
	stops      []ColorStop
	bounds     Rect
}

// mockSurface hands out mockPaths and records gradients and labels.
type mockSurface struct {
	paths     []*mockPath
	gradients []gradientCall
	labels    []Label
	strokeErr error
}

func (s *mockSurface) NewPath() Path {
	p := &mockPath{strokeErr: s.strokeErr}
	s.paths = append(s.paths, p)
	return p
}

func (s *mockSurface) DrawLinearGradient(start, end Point, stops []ColorStop, bounds Rect) error {
	s.gradients = append(s.gradients, gradientCall{start: start, end: end, stops: stops, bounds: bounds})
	return nil
}

// labelSurface is a mockSurface that can also draw labels.
type labelSurface struct {
	mockSurface
}

func (s *labelSurface) DrawLabel(l Label) error {
	if l.Text == "" {
		return errEmptyLabel
	}
	s.labels = append(s.labels, l)
	return nil
}

var errEmptyLabel = errors.New("empty label")

var (
	_ Path        = (*mockPath)(nil)
	_ ColorSetter = (*mockPath)(nil)
	_ OvalFiller  = (*mockPath)(nil)
	_ Surface     = (*mockSurface)(nil)
	_ LabelDrawer = (*labelSurface)(nil)
)

// scenarioGraph is a 400×300 viewport with the default layout.
func scenarioGraph() *Graph {
	return NewGraph(WithSize(400, 300))
}

func almostEqual(a, b float64) bool {
	const eps = 1e-9
	d := a - b
	return d < eps && d > -eps
}
