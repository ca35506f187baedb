package ggchart

import (
	"errors"
	"fmt"
	"log/slog"
)

// markerDiameter is the size of start and end markers.
const markerDiameter = 7.0

// markerOffset is subtracted from the start marker's position on both
// axes. The end marker is anchored at its raw position.
const markerOffset = 5.0 / 2

// Chart draws chart elements for a Graph onto a Surface.
//
// Every operation reads the Graph's current layout and is otherwise
// stateless. Operations that take series validate all of their input
// before drawing anything, so a failed call leaves the surface untouched.
type Chart struct {
	graph   *Graph
	surface Surface
	opts    chartOptions
}

// NewChart binds g and s. The Graph is shared, not copied: resizing it
// between passes is picked up by the next operation.
func NewChart(g *Graph, s Surface, opts ...ChartOption) *Chart {
	o := defaultChartOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Chart{graph: g, surface: s, opts: o}
}

// Graph returns the bound graph.
func (c *Chart) Graph() *Graph {
	return c.graph
}

// Palette returns the palette used for multi-line drawing.
func (c *Chart) Palette() Palette {
	return c.opts.palette
}

// DrawDashLine draws a dashed line from start to end.
func (c *Chart) DrawDashLine(start, end Point, color Color) error {
	if c.surface == nil {
		return ErrNilSurface
	}
	path := c.surface.NewPath()
	NewDiagram(Line{Start: start, End: end, Color: color}).Draw(path)

	path.SetDash(c.opts.dash...)
	path.SetLineWidth(c.opts.lineWidth)
	Logger().Debug("ggchart: dash line", "start", start, "end", end)
	return path.Stroke()
}

// DrawGuides draws a dashed horizontal guide across the plot area for
// each logical value, in the graph's scale.
//
// All values are checked first; on failure nothing is drawn.
func (c *Chart) DrawGuides(values ...float64) error {
	if c.surface == nil {
		return ErrNilSurface
	}
	if err := c.graph.Validate(); err != nil {
		return err
	}
	for _, v := range values {
		if err := c.graph.ValidateValue(v); err != nil {
			Logger().Warn("ggchart: guide rejected", "value", v, "err", err)
			return fmt.Errorf("ggchart: guide %g: %w", v, err)
		}
	}
	left := c.graph.Margin
	right := c.graph.Width - c.graph.Margin
	for _, v := range values {
		y := c.graph.ValueY(c.graph.Scale.Transform(v))
		if err := c.DrawDashLine(Pt(left, y), Pt(right, y), c.opts.guideColor); err != nil {
			return err
		}
	}
	return nil
}

// DrawColoredMultiLines draws each series as a curve, coloring series i
// with the chart palette's i-th color. Later series are drawn on top.
//
// All series are validated first. On failure nothing is drawn and the
// returned *SeriesError names the offending series.
func (c *Chart) DrawColoredMultiLines(series ...Series) error {
	if c.surface == nil {
		return ErrNilSurface
	}
	curves := make([]Curve, len(series))
	for i, s := range series {
		points, err := c.mapSeries(i, s)
		if err != nil {
			return err
		}
		curves[i] = Curve{Corners: points, Color: c.opts.palette.At(i)}
	}
	for _, curve := range curves {
		if err := c.strokeCurve(curve); err != nil {
			return err
		}
	}
	return nil
}

// DrawColoredSingleLine draws one series as a curve in color.
func (c *Chart) DrawColoredSingleLine(s Series, color Color) error {
	if c.surface == nil {
		return ErrNilSurface
	}
	points, err := c.mapSeries(0, s)
	if err != nil {
		return err
	}
	return c.strokeCurve(Curve{Corners: points, Color: color})
}

// DrawCirclesStartEnd draws a marker at the start and at the end of a
// line. The start marker's origin is shifted up and left by 2.5px; the
// end marker's origin is end itself.
func (c *Chart) DrawCirclesStartEnd(start, end Point) error {
	if c.surface == nil {
		return ErrNilSurface
	}
	s := start.Sub(Pt(markerOffset, markerOffset))
	diagram := NewDiagram(
		Circle{Origin: s, Diameter: markerDiameter, Color: c.opts.markerColor},
		Circle{Origin: end, Diameter: markerDiameter, Color: c.opts.markerColor},
	)
	diagram.Draw(c.surface.NewPath())
	return nil
}

// GraphLineLabel returns a 50×18 label centered on center with white,
// centered, bold 12pt text. It draws nothing; see DrawLabel.
func (c *Chart) GraphLineLabel(center Point, text string) Label {
	return Label{
		Frame:    RectCentered(center, LabelWidth, LabelHeight),
		Text:     text,
		Color:    White,
		Align:    AlignCenter,
		FontSize: LabelFontSize,
		Bold:     true,
	}
}

// DrawLabel paints l if the surface can render text, and reports whether
// it did.
func (c *Chart) DrawLabel(l Label) (bool, error) {
	if c.surface == nil {
		return false, ErrNilSurface
	}
	ld, ok := c.surface.(LabelDrawer)
	if !ok {
		return false, nil
	}
	return true, ld.DrawLabel(l)
}

// DrawGradient paints a vertical gradient over the whole viewport, from
// start at the top to end at the bottom. Draw it before other content.
func (c *Chart) DrawGradient(start, end Color) error {
	if c.surface == nil {
		return ErrNilSurface
	}
	stops := []ColorStop{
		{Offset: 0, Color: start},
		{Offset: 1, Color: end},
	}
	bounds := Rect{W: c.graph.Width, H: c.graph.Height}
	return c.surface.DrawLinearGradient(Pt(0, 0), Pt(0, c.graph.Height), stops, bounds)
}

func (c *Chart) mapSeries(index int, s Series) ([]Point, error) {
	points, err := c.graph.MapSeries(s)
	if err != nil {
		var se *SeriesError
		if errors.As(err, &se) {
			se.Series = index
		}
		Logger().Warn("ggchart: series rejected", "series", index, "err", err)
		return nil, err
	}
	return points, nil
}

func (c *Chart) strokeCurve(curve Curve) error {
	path := c.surface.NewPath()
	NewDiagram(curve).Draw(path)
	path.SetLineWidth(c.opts.lineWidth)
	if err := path.Stroke(); err != nil {
		return fmt.Errorf("ggchart: stroke curve: %w", err)
	}
	Logger().Debug("ggchart: curve", slog.Int("points", len(curve.Corners)))
	return nil
}
