// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

// Package svg binds ggchart to gonum's vector graphics canvas and writes
// SVG documents.
//
// gonum's vg places the origin at the bottom-left; the surface flips Y so
// chart code keeps using top-left pixel coordinates. One pixel maps to one
// point. Gradients are approximated by solid bands, and labels are not
// supported.
package svg

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/gogpu/gg"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/vgsvg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/backend"
)

func init() {
	backend.Register(backend.NameSVG, func(width, height int) backend.Target {
		return New(float64(width), float64(height))
	})
}

// GradientBands is the number of solid bands used to approximate a
// gradient.
const GradientBands = 64

// ErrUnsupportedGradient is returned for gradients that are neither
// vertical nor horizontal.
var ErrUnsupportedGradient = errors.New("svg: only axis-aligned gradients are supported")

// Surface is a ggchart.Surface painting into an SVG canvas.
//
// Surface is NOT safe for concurrent use.
type Surface struct {
	canvas        *vgsvg.Canvas
	width, height float64
}

var (
	_ ggchart.Surface = (*Surface)(nil)
	_ backend.Target  = (*Surface)(nil)
)

// New creates a Surface for a width×height pixel document.
func New(width, height float64) *Surface {
	return &Surface{
		canvas: vgsvg.New(vg.Points(width), vg.Points(height)),
		width:  width,
		height: height,
	}
}

// Size returns the document size in pixels.
func (s *Surface) Size() (width, height float64) {
	return s.width, s.height
}

// NewPath implements ggchart.Surface.
func (s *Surface) NewPath() ggchart.Path {
	return &Path{
		s:      s,
		stroke: ggchart.Black,
		fill:   ggchart.Black,
		width:  1,
	}
}

// DrawLinearGradient implements ggchart.Surface. Bands run across the
// gradient axis and take the color gg's gradient brush gives at each
// band center.
func (s *Surface) DrawLinearGradient(start, end ggchart.Point, stops []ggchart.ColorStop, bounds ggchart.Rect) error {
	var band func(i int) ggchart.Rect
	switch {
	case start.X == end.X && start.Y != end.Y:
		h := bounds.H / GradientBands
		band = func(i int) ggchart.Rect {
			return ggchart.Rect{X: bounds.X, Y: bounds.Y + float64(i)*h, W: bounds.W, H: h}
		}
	case start.Y == end.Y && start.X != end.X:
		w := bounds.W / GradientBands
		band = func(i int) ggchart.Rect {
			return ggchart.Rect{X: bounds.X + float64(i)*w, Y: bounds.Y, W: w, H: bounds.H}
		}
	default:
		return ErrUnsupportedGradient
	}

	brush := gg.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)
	for _, st := range stops {
		brush.AddColorStop(st.Offset, st.Color.ToRGBA())
	}
	for i := range GradientBands {
		b := band(i)
		c := b.Center()
		s.canvas.SetColor(ggchart.FromRGBA(brush.ColorAt(c.X, c.Y)))
		s.canvas.Fill(s.rect(b))
	}
	return nil
}

// rect returns a closed vg path for r, slightly overlapping its
// neighbours so anti-aliasing leaves no seams between bands.
func (s *Surface) rect(r ggchart.Rect) vg.Path {
	const overlap = 0.5
	var p vg.Path
	p.Move(s.pt(ggchart.Pt(r.X, r.Y)))
	p.Line(s.pt(ggchart.Pt(r.X+r.W+overlap, r.Y)))
	p.Line(s.pt(ggchart.Pt(r.X+r.W+overlap, r.Y+r.H+overlap)))
	p.Line(s.pt(ggchart.Pt(r.X, r.Y+r.H+overlap)))
	p.Close()
	return p
}

// pt converts a top-left pixel coordinate to vg's bottom-left space.
func (s *Surface) pt(p ggchart.Point) vg.Point {
	return vg.Point{X: vg.Points(p.X), Y: vg.Points(s.height - p.Y)}
}

// WriteTo writes the SVG document to w.
func (s *Surface) WriteTo(w io.Writer) (int64, error) {
	n, err := s.canvas.WriteTo(w)
	if err != nil {
		return n, fmt.Errorf("svg: write: %w", err)
	}
	return n, nil
}

// Save implements backend.Target by writing an SVG file.
func (s *Surface) Save(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("svg: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("svg: %w", cerr)
		}
	}()
	_, err = s.WriteTo(f)
	return err
}

// Path is a ggchart.Path collecting geometry into a vg.Path.
type Path struct {
	s    *Surface
	path vg.Path

	stroke ggchart.Color
	fill   ggchart.Color
	width  float64
	dash   []float64
}

var (
	_ ggchart.Path        = (*Path)(nil)
	_ ggchart.ColorSetter = (*Path)(nil)
	_ ggchart.OvalFiller  = (*Path)(nil)
)

// MoveTo implements ggchart.Renderer.
func (p *Path) MoveTo(pt ggchart.Point) { p.path.Move(p.s.pt(pt)) }

// LineTo implements ggchart.Renderer.
func (p *Path) LineTo(pt ggchart.Point) { p.path.Line(p.s.pt(pt)) }

// SetStrokeColor implements ggchart.ColorSetter.
func (p *Path) SetStrokeColor(c ggchart.Color) { p.stroke = c }

// SetFillColor implements ggchart.ColorSetter.
func (p *Path) SetFillColor(c ggchart.Color) { p.fill = c }

// SetLineWidth implements ggchart.Path.
func (p *Path) SetLineWidth(w float64) { p.width = w }

// SetDash implements ggchart.Path.
func (p *Path) SetDash(lengths ...float64) { p.dash = ggchart.NewDash(lengths...) }

// FillOval implements ggchart.OvalFiller. Ovals are drawn as circles of
// the smaller bounding dimension.
func (p *Path) FillOval(bounds ggchart.Rect, c ggchart.Color) {
	ctr := p.s.pt(bounds.Center())
	r := vg.Points(math.Min(bounds.W, bounds.H) / 2)

	var circle vg.Path
	circle.Move(vg.Point{X: ctr.X + r, Y: ctr.Y})
	circle.Arc(ctr, r, 0, 2*math.Pi)
	circle.Close()

	p.s.canvas.SetColor(c)
	p.s.canvas.Fill(circle)
}

// Stroke implements ggchart.Path.
func (p *Path) Stroke() error {
	c := p.s.canvas
	c.Push()
	defer c.Pop()

	var dashes []vg.Length
	for _, d := range p.dash {
		dashes = append(dashes, vg.Points(d))
	}
	c.SetColor(p.stroke)
	c.SetLineWidth(vg.Points(p.width))
	c.SetLineDash(dashes, 0)
	c.Stroke(p.path)
	return nil
}
