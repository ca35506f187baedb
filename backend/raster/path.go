// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"fmt"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
)

// Path is a ggchart.Path collecting geometry into a *gg.Path.
type Path struct {
	dc   *gg.Context
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
func (p *Path) MoveTo(pt ggchart.Point) {
	p.path.MoveTo(pt.X, pt.Y)
}

// LineTo implements ggchart.Renderer.
func (p *Path) LineTo(pt ggchart.Point) {
	p.path.LineTo(pt.X, pt.Y)
}

// SetStrokeColor implements ggchart.ColorSetter.
func (p *Path) SetStrokeColor(c ggchart.Color) { p.stroke = c }

// SetFillColor implements ggchart.ColorSetter.
func (p *Path) SetFillColor(c ggchart.Color) { p.fill = c }

// SetLineWidth implements ggchart.Path.
func (p *Path) SetLineWidth(w float64) { p.width = w }

// SetDash implements ggchart.Path.
func (p *Path) SetDash(lengths ...float64) {
	p.dash = ggchart.NewDash(lengths...)
}

// Elements returns the collected geometry.
func (p *Path) Elements() []gg.PathElement {
	return p.path.Elements()
}

// FillOval implements ggchart.OvalFiller. The oval is painted straight
// onto the context; the collected path is left alone, and any path the
// host left open on the context is discarded first.
func (p *Path) FillOval(bounds ggchart.Rect, c ggchart.Color) {
	ctr := bounds.Center()
	p.dc.ClearPath()
	p.dc.SetColor(c)
	p.dc.DrawEllipse(ctr.X, ctr.Y, bounds.W/2, bounds.H/2)
	if err := p.dc.Fill(); err != nil {
		ggchart.Logger().Warn("raster: fill oval", "err", err)
	}
}

// Stroke implements ggchart.Path. The context's dash pattern is cleared
// afterwards so later drawing by the host is unaffected.
func (p *Path) Stroke() error {
	p.dc.ClearPath()
	for _, el := range p.path.Elements() {
		switch e := el.(type) {
		case gg.MoveTo:
			p.dc.MoveTo(e.Point.X, e.Point.Y)
		case gg.LineTo:
			p.dc.LineTo(e.Point.X, e.Point.Y)
		}
	}
	p.dc.SetColor(p.stroke)
	p.dc.SetLineWidth(p.width)
	p.dc.SetDash(p.dash...)
	err := p.dc.Stroke()
	p.dc.ClearDash()
	if err != nil {
		return fmt.Errorf("raster: stroke: %w", err)
	}
	return nil
}
