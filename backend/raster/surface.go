// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package raster

import (
	"errors"
	"fmt"
	"image"
	"io"

	"github.com/gogpu/gg"

	"github.com/gogpu/ggchart"
	"github.com/gogpu/ggchart/backend"
	"github.com/gogpu/ggchart/internal/fonts"
)

func init() {
	backend.Register(backend.NameRaster, func(width, height int) backend.Target {
		return New(width, height)
	})
}

// ErrNilContext is returned by Wrap when given a nil context.
var ErrNilContext = errors.New("raster: nil context")

// Surface is a ggchart.Surface painting into a gg.Context.
type Surface struct {
	dc *gg.Context
}

var (
	_ ggchart.Surface     = (*Surface)(nil)
	_ ggchart.LabelDrawer = (*Surface)(nil)
	_ backend.Target      = (*Surface)(nil)
)

// New creates a Surface backed by a fresh width×height context.
func New(width, height int) *Surface {
	return &Surface{dc: gg.NewContext(width, height)}
}

// Wrap creates a Surface drawing into an existing context, for hosts that
// paint other content around the chart.
func Wrap(dc *gg.Context) (*Surface, error) {
	if dc == nil {
		return nil, ErrNilContext
	}
	return &Surface{dc: dc}, nil
}

// Context returns the underlying drawing context.
func (s *Surface) Context() *gg.Context {
	return s.dc
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	return s.dc.Width()
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	return s.dc.Height()
}

// NewPath implements ggchart.Surface.
func (s *Surface) NewPath() ggchart.Path {
	return &Path{
		dc:     s.dc,
		path:   gg.NewPath(),
		stroke: ggchart.Black,
		fill:   ggchart.Black,
		width:  1,
	}
}

// DrawLinearGradient implements ggchart.Surface.
func (s *Surface) DrawLinearGradient(start, end ggchart.Point, stops []ggchart.ColorStop, bounds ggchart.Rect) error {
	brush := gg.NewLinearGradientBrush(start.X, start.Y, end.X, end.Y)
	for _, st := range stops {
		brush.AddColorStop(st.Offset, st.Color.ToRGBA())
	}
	s.dc.ClearPath()
	s.dc.SetFillBrush(brush)
	s.dc.DrawRectangle(bounds.X, bounds.Y, bounds.W, bounds.H)
	if err := s.dc.Fill(); err != nil {
		return fmt.Errorf("raster: fill gradient: %w", err)
	}
	return nil
}

// DrawLabel implements ggchart.LabelDrawer. Text is vertically centered in
// the label frame and aligned horizontally per l.Align.
func (s *Surface) DrawLabel(l ggchart.Label) error {
	size := l.FontSize
	if size <= 0 {
		size = ggchart.LabelFontSize
	}
	face, err := fonts.Face(l.Bold, size)
	if err != nil {
		return fmt.Errorf("raster: label font: %w", err)
	}
	s.dc.SetFont(face)
	s.dc.SetColor(l.Color)

	x, y, ax := labelAnchor(l)
	s.dc.DrawStringAnchored(l.Text, x, y, ax, 0.5)
	return nil
}

// labelAnchor returns the anchor position and horizontal anchor factor
// for l's alignment.
func labelAnchor(l ggchart.Label) (x, y, ax float64) {
	c := l.Frame.Center()
	switch l.Align {
	case ggchart.AlignLeft:
		return l.Frame.X, c.Y, 0
	case ggchart.AlignRight:
		return l.Frame.X + l.Frame.W, c.Y, 1
	default:
		return c.X, c.Y, 0.5
	}
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// SavePNG writes the rendered image to a PNG file.
func (s *Surface) SavePNG(path string) error {
	return s.dc.SavePNG(path)
}

// Save implements backend.Target by writing a PNG file.
func (s *Surface) Save(path string) error {
	return s.SavePNG(path)
}

// EncodePNG writes the rendered image as PNG to w.
func (s *Surface) EncodePNG(w io.Writer) error {
	return s.dc.EncodePNG(w)
}
