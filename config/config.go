// Package config loads chart descriptions from YAML.
//
// A chart file describes the viewport, the graph layout and the series to
// draw:
//
//	width: 400
//	height: 300
//	layout:
//	  margin: 90
//	  top_border: 30
//	  bottom_border: 80
//	  max_value: 6
//	scale: log10
//	gradient: ["#fa7a52", "#f9d45c"]
//	guides: [10, 1000, 100000]
//	markers: true
//	labels: true
//	series:
//	  - name: requests
//	    values: [0.1, 2, 3.4, 1, 0.34]
//
// Missing fields take the defaults of ggchart.NewGraph.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gogpu/ggchart"
)

// ErrNoSeries is returned by Validate when a chart has no series.
var ErrNoSeries = errors.New("config: no series")

// Chart is the file form of a chart.
type Chart struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	Layout Layout `yaml:"layout"`
	Scale  string `yaml:"scale"`

	// Palette overrides the default series colors, as hex strings.
	Palette []string `yaml:"palette"`

	// Gradient holds the top and bottom background colors. Empty means
	// no background.
	Gradient []string `yaml:"gradient"`

	// Guides are logical values at which dashed guide lines are drawn.
	Guides []float64 `yaml:"guides"`

	// Markers draws circles at the first and last point of every series.
	Markers bool `yaml:"markers"`

	// Labels tags the last point of every series with its value.
	Labels bool `yaml:"labels"`

	Series []Series `yaml:"series"`
}

// Layout mirrors the Graph margin and border fields.
type Layout struct {
	Margin       *float64 `yaml:"margin"`
	TopBorder    *float64 `yaml:"top_border"`
	BottomBorder *float64 `yaml:"bottom_border"`
	MaxValue     *float64 `yaml:"max_value"`
}

// Series is one named data series.
type Series struct {
	Name   string    `yaml:"name"`
	Values []float64 `yaml:"values"`
	// Color overrides the palette color for this series.
	Color string `yaml:"color"`
}

// Default viewport size.
const (
	DefaultWidth  = 400
	DefaultHeight = 300
)

// Load reads and validates a chart file.
func Load(path string) (*Chart, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	c, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return c, nil
}

// Decode reads a chart from r, applies defaults and validates it.
func Decode(r io.Reader) (*Chart, error) {
	var c Chart
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Chart) applyDefaults() {
	if c.Width == 0 {
		c.Width = DefaultWidth
	}
	if c.Height == 0 {
		c.Height = DefaultHeight
	}
	if c.Scale == "" {
		c.Scale = ggchart.Log10Scale.String()
	}
}

// Validate checks colors, scale, series and the resulting layout.
func (c *Chart) Validate() error {
	var errs []error
	if len(c.Series) == 0 {
		errs = append(errs, ErrNoSeries)
	}
	if _, err := ParseScale(c.Scale); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.ColorPalette(); err != nil {
		errs = append(errs, err)
	}
	if len(c.Gradient) != 0 && len(c.Gradient) != 2 {
		errs = append(errs, fmt.Errorf("config: gradient needs 2 colors, got %d", len(c.Gradient)))
	}
	for _, h := range c.Gradient {
		if _, err := ggchart.ParseHex(h); err != nil {
			errs = append(errs, err)
		}
	}
	for i, s := range c.Series {
		if s.Color == "" {
			continue
		}
		if _, err := ggchart.ParseHex(s.Color); err != nil {
			errs = append(errs, fmt.Errorf("config: series %d: %w", i, err))
		}
	}
	if len(errs) == 0 {
		if g, err := c.Graph(); err == nil {
			errs = append(errs, g.Validate())
			errs = append(errs, c.validateValues(g)...)
		}
	}
	return errors.Join(errs...)
}

// validateValues checks series and guide values against the scale of g,
// so a chart that passes Validate never fails halfway through Draw.
func (c *Chart) validateValues(g *ggchart.Graph) []error {
	var errs []error
	for i, s := range c.Series {
		if err := g.ValidateSeries(s.Values); err != nil {
			var se *ggchart.SeriesError
			if errors.As(err, &se) {
				se.Series = i
			}
			errs = append(errs, fmt.Errorf("config: %w", err))
		}
	}
	for _, v := range c.Guides {
		if err := g.ValidateValue(v); err != nil {
			errs = append(errs, fmt.Errorf("config: guide %g: %w", v, err))
		}
	}
	return errs
}

// ParseScale maps a scale name to a ggchart.Scale.
func ParseScale(name string) (ggchart.Scale, error) {
	switch name {
	case "", "log10", "log":
		return ggchart.Log10Scale, nil
	case "linear":
		return ggchart.LinearScale, nil
	default:
		return 0, fmt.Errorf("config: unknown scale %q (must be log10 or linear)", name)
	}
}

// Graph builds the ggchart.Graph described by c.
func (c *Chart) Graph() (*ggchart.Graph, error) {
	scale, err := ParseScale(c.Scale)
	if err != nil {
		return nil, err
	}
	opts := []ggchart.GraphOption{
		ggchart.WithSize(c.Width, c.Height),
		ggchart.WithScale(scale),
	}
	if c.Layout.Margin != nil {
		opts = append(opts, ggchart.WithMargin(*c.Layout.Margin))
	}
	top, bottom := ggchart.DefaultTopBorder, ggchart.DefaultBottomBorder
	if c.Layout.TopBorder != nil {
		top = *c.Layout.TopBorder
	}
	if c.Layout.BottomBorder != nil {
		bottom = *c.Layout.BottomBorder
	}
	opts = append(opts, ggchart.WithBorders(top, bottom))
	if c.Layout.MaxValue != nil {
		opts = append(opts, ggchart.WithMaxValue(*c.Layout.MaxValue))
	}
	g := ggchart.NewGraph(opts...)
	return g, nil
}

// ColorPalette returns the configured palette, or the default one.
func (c *Chart) ColorPalette() (ggchart.Palette, error) {
	if len(c.Palette) == 0 {
		return ggchart.DefaultPalette, nil
	}
	colors := make([]ggchart.Color, len(c.Palette))
	for i, h := range c.Palette {
		col, err := ggchart.ParseHex(h)
		if err != nil {
			return ggchart.Palette{}, fmt.Errorf("config: palette entry %d: %w", i, err)
		}
		colors[i] = col
	}
	return ggchart.NewPalette(colors...), nil
}

// Values returns the series values in order.
func (c *Chart) Values() []ggchart.Series {
	out := make([]ggchart.Series, len(c.Series))
	for i, s := range c.Series {
		out[i] = ggchart.Series(s.Values)
	}
	return out
}

// GradientColors returns the background colors and whether a gradient
// is configured.
func (c *Chart) GradientColors() (top, bottom ggchart.Color, ok bool) {
	if len(c.Gradient) != 2 {
		return ggchart.Color{}, ggchart.Color{}, false
	}
	top, err := ggchart.ParseHex(c.Gradient[0])
	if err != nil {
		return ggchart.Color{}, ggchart.Color{}, false
	}
	bottom, err = ggchart.ParseHex(c.Gradient[1])
	if err != nil {
		return ggchart.Color{}, ggchart.Color{}, false
	}
	return top, bottom, true
}
