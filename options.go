package ggchart

// Default layout values.
const (
	DefaultMargin       = 90.0
	DefaultTopBorder    = 30.0
	DefaultBottomBorder = 80.0

	// DefaultMaxValue is log10(10^6): six decades on a log10 scale.
	DefaultMaxValue = 6.0
)

// GraphOption configures a Graph during creation.
//
// Example:
//
//	g := ggchart.NewGraph(
//	    ggchart.WithSize(800, 600),
//	    ggchart.WithMaxValue(3),
//	)
type GraphOption func(*Graph)

// WithSize sets the initial viewport size.
func WithSize(width, height float64) GraphOption {
	return func(g *Graph) {
		g.Width = width
		g.Height = height
	}
}

// WithMargin sets the left and right margin.
func WithMargin(margin float64) GraphOption {
	return func(g *Graph) {
		g.Margin = margin
	}
}

// WithBorders sets the top and bottom borders.
func WithBorders(top, bottom float64) GraphOption {
	return func(g *Graph) {
		g.TopBorder = top
		g.BottomBorder = bottom
	}
}

// WithMaxValue sets the value mapped to the top border, in scaled units.
func WithMaxValue(maxValue float64) GraphOption {
	return func(g *Graph) {
		g.MaxValue = maxValue
	}
}

// WithScale sets the value pre-transform.
func WithScale(s Scale) GraphOption {
	return func(g *Graph) {
		g.Scale = s
	}
}

// ChartOption configures a Chart during creation.
type ChartOption func(*chartOptions)

// chartOptions holds optional configuration for Chart creation.
type chartOptions struct {
	palette     Palette
	lineWidth   float64
	dash        []float64
	guideColor  Color
	markerColor Color
}

// defaultChartOptions returns the default chart options.
func defaultChartOptions() chartOptions {
	return chartOptions{
		palette:     DefaultPalette,
		lineWidth:   DefaultLineWidth,
		dash:        []float64{DefaultDashLength, DefaultDashLength},
		guideColor:  Color{R: 1, G: 1, B: 1, A: 0.6},
		markerColor: HexColor(ColorOne, 1),
	}
}

// WithPalette sets the palette used by DrawColoredMultiLines.
func WithPalette(p Palette) ChartOption {
	return func(o *chartOptions) {
		o.palette = p
	}
}

// WithLineWidth sets the stroke width of curves and dash lines.
func WithLineWidth(w float64) ChartOption {
	return func(o *chartOptions) {
		o.lineWidth = w
	}
}

// WithDash sets the on/off pattern of dash lines.
// Invalid patterns (empty or all zero) are ignored.
func WithDash(lengths ...float64) ChartOption {
	return func(o *chartOptions) {
		if d := NewDash(lengths...); d != nil {
			o.dash = d
		}
	}
}

// WithGuideColor sets the color of the guide lines drawn by DrawGuides.
func WithGuideColor(c Color) ChartOption {
	return func(o *chartOptions) {
		o.guideColor = c
	}
}

// WithMarkerColor sets the fill color of start and end markers.
func WithMarkerColor(c Color) ChartOption {
	return func(o *chartOptions) {
		o.markerColor = c
	}
}
