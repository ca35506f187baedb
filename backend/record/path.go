// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package record

import (
	"github.com/gogpu/gg"
	"github.com/gogpu/gg/recording"

	"github.com/gogpu/ggchart"
)

// Path is a ggchart.Path that buffers geometry and records it as a single
// stroke command.
type Path struct {
	rec  *recording.Recorder
	path *gg.Path

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
func (p *Path) MoveTo(pt ggchart.Point) { p.path.MoveTo(pt.X, pt.Y) }

// LineTo implements ggchart.Renderer.
func (p *Path) LineTo(pt ggchart.Point) { p.path.LineTo(pt.X, pt.Y) }

// SetStrokeColor implements ggchart.ColorSetter.
func (p *Path) SetStrokeColor(c ggchart.Color) { p.stroke = c }

// SetFillColor implements ggchart.ColorSetter.
func (p *Path) SetFillColor(c ggchart.Color) { p.fill = c }

// SetLineWidth implements ggchart.Path.
func (p *Path) SetLineWidth(w float64) { p.width = w }

// SetDash implements ggchart.Path.
func (p *Path) SetDash(lengths ...float64) { p.dash = ggchart.NewDash(lengths...) }

// FillOval implements ggchart.OvalFiller.
func (p *Path) FillOval(bounds ggchart.Rect, c ggchart.Color) {
	ctr := bounds.Center()
	p.rec.ClearPath()
	p.rec.SetFillRGBA(c.R, c.G, c.B, c.A)
	p.rec.DrawEllipse(ctr.X, ctr.Y, bounds.W/2, bounds.H/2)
	p.rec.Fill()
}

// Stroke implements ggchart.Path.
func (p *Path) Stroke() error {
	p.rec.ClearPath()
	for _, el := range p.path.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			p.rec.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			p.rec.LineTo(e.Point.X, e.Point.Y)
		}
	}
	p.rec.SetStrokeRGBA(p.stroke.R, p.stroke.G, p.stroke.B, p.stroke.A)
	p.rec.SetLineWidth(p.width)
	if len(p.dash) > 0 {
		p.rec.SetDash(p.dash...)
	}
	p.rec.Stroke()
	if len(p.dash) > 0 {
		p.rec.ClearDash()
	}
	return nil
}
