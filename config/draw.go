package config

import (
	"strconv"

	"github.com/gogpu/ggchart"
)

// labelLift is how far above the last point a value label is centered.
const labelLift = 14

// Draw renders the chart onto s: background gradient, guides, series,
// markers and labels, in that order.
//
// The whole chart is validated and mapped before the first paint call,
// so an invalid chart leaves s untouched.
func (c *Chart) Draw(s ggchart.Surface) error {
	if err := c.Validate(); err != nil {
		return err
	}
	g, err := c.Graph()
	if err != nil {
		return err
	}
	palette, err := c.seriesPalette()
	if err != nil {
		return err
	}
	series := c.Values()
	mapped := make([][]ggchart.Point, len(series))
	for i, values := range series {
		if mapped[i], err = g.MapSeries(values); err != nil {
			return err
		}
	}

	chart := ggchart.NewChart(g, s, ggchart.WithPalette(palette))
	log := ggchart.Logger()

	if top, bottom, ok := c.GradientColors(); ok {
		if err := chart.DrawGradient(top, bottom); err != nil {
			return err
		}
	}
	if len(c.Guides) > 0 {
		if err := chart.DrawGuides(c.Guides...); err != nil {
			return err
		}
	}
	if err := chart.DrawColoredMultiLines(series...); err != nil {
		return err
	}

	for i, points := range mapped {
		first, last := points[0], points[len(points)-1]
		if c.Markers {
			if err := chart.DrawCirclesStartEnd(first, last); err != nil {
				return err
			}
		}
		if c.Labels {
			values := series[i]
			text := strconv.FormatFloat(values[len(values)-1], 'g', 4, 64)
			label := chart.GraphLineLabel(last.Sub(ggchart.Pt(0, labelLift)), text)
			drawn, err := chart.DrawLabel(label)
			if err != nil {
				return err
			}
			if !drawn {
				log.Debug("config: surface cannot draw labels", "series", i)
			}
		}
	}
	return nil
}

// seriesPalette merges per-series color overrides into the palette so
// series i is drawn with its own color when one is set.
func (c *Chart) seriesPalette() (ggchart.Palette, error) {
	base, err := c.ColorPalette()
	if err != nil {
		return ggchart.Palette{}, err
	}
	overridden := false
	colors := make([]ggchart.Color, len(c.Series))
	for i, s := range c.Series {
		colors[i] = base.At(i)
		if s.Color == "" {
			continue
		}
		col, err := ggchart.ParseHex(s.Color)
		if err != nil {
			return ggchart.Palette{}, err
		}
		colors[i] = col
		overridden = true
	}
	if !overridden {
		return base, nil
	}
	return ggchart.NewPalette(colors...), nil
}
