package ggchart

import (
	"fmt"
	"math"
)

// Series is an ordered sequence of logical values, one per column.
type Series []float64

// Scale is the pre-transform applied to logical values before they are
// mapped onto the Y axis.
type Scale int

const (
	// Log10Scale maps values through log10. MaxValue is then the ceiling
	// in decades: 6 means 10^6. Values must be > 0.
	Log10Scale Scale = iota

	// LinearScale maps values unchanged.
	LinearScale
)

// String returns the scale name.
func (s Scale) String() string {
	switch s {
	case Log10Scale:
		return "log10"
	case LinearScale:
		return "linear"
	default:
		return fmt.Sprintf("Scale(%d)", int(s))
	}
}

// Transform applies the scale to a logical value.
func (s Scale) Transform(v float64) float64 {
	if s == Log10Scale {
		return math.Log10(v)
	}
	return v
}

// Graph converts logical chart values into pixel coordinates for a
// viewport. It holds no data: the owning view sets Width and Height on
// every layout pass (see Resize) and keeps them fixed while drawing.
//
// The X axis spaces columns evenly between the side margins, with a 2px
// inset on each side. The Y axis maps [0, MaxValue] onto the band between
// TopBorder and Height-BottomBorder, flipped so larger values are higher.
type Graph struct {
	Width  float64
	Height float64

	Margin       float64
	TopBorder    float64
	BottomBorder float64
	MaxValue     float64

	Scale Scale
}

// columnInset is the extra horizontal padding inside each margin.
const columnInset = 2

// NewGraph creates a Graph with the default layout (margin 90, top
// border 30, bottom border 80, max value 6 on a log10 scale) and applies
// opts in order. Width and Height start at zero until WithSize or Resize.
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		Margin:       DefaultMargin,
		TopBorder:    DefaultTopBorder,
		BottomBorder: DefaultBottomBorder,
		MaxValue:     DefaultMaxValue,
		Scale:        Log10Scale,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Resize updates the viewport size. Call it before a draw pass, never
// during one.
func (g *Graph) Resize(width, height float64) {
	g.Width = width
	g.Height = height
}

// ColumnX returns the X pixel coordinate of column in a series of
// seriesLength values. Column 0 lands on Margin+2 and the last column on
// Width-Margin-2.
//
// seriesLength must be at least 2; with a single value the spacing
// divides by zero and the result is not finite.
func (g *Graph) ColumnX(seriesLength, column int) float64 {
	spacer := (g.Width - g.Margin*2 - columnInset*2) / float64(seriesLength-1)
	return float64(column)*spacer + g.Margin + columnInset
}

// ValueY returns the Y pixel coordinate of an already-scaled value.
// 0 maps to Height-BottomBorder and MaxValue to TopBorder.
// No scale transform is applied here; see Graph.Point.
func (g *Graph) ValueY(v float64) float64 {
	graphHeight := g.Height - g.TopBorder - g.BottomBorder
	y := v / g.MaxValue * graphHeight
	return graphHeight + g.TopBorder - y
}

// Point maps one logical value of a series to pixel space, applying the
// graph's scale.
func (g *Graph) Point(seriesLength, column int, value float64) Point {
	return Point{
		X: g.ColumnX(seriesLength, column),
		Y: g.ValueY(g.Scale.Transform(value)),
	}
}

// PlotHeight returns the height of the band values are drawn in.
func (g *Graph) PlotHeight() float64 {
	return g.Height - g.TopBorder - g.BottomBorder
}

// Validate reports whether the layout leaves room to plot.
func (g *Graph) Validate() error {
	switch {
	case !(g.MaxValue > 0):
		return fmt.Errorf("%w: max value %g must be positive", ErrInvalidLayout, g.MaxValue)
	case !(g.Width > g.Margin*2+columnInset*2):
		return fmt.Errorf("%w: width %g too small for margin %g", ErrInvalidLayout, g.Width, g.Margin)
	case !(g.PlotHeight() > 0):
		return fmt.Errorf("%w: height %g too small for borders %g+%g",
			ErrInvalidLayout, g.Height, g.TopBorder, g.BottomBorder)
	}
	return nil
}

// ValidateSeries checks that s can be mapped by this graph: at least two
// values, all finite, and all positive on a log10 scale. The returned
// error is a *SeriesError with Series set to 0; callers mapping several
// series overwrite it.
func (g *Graph) ValidateSeries(s Series) error {
	if len(s) < 2 {
		return &SeriesError{Column: -1, Err: ErrSeriesTooShort}
	}
	for i, v := range s {
		if err := g.ValidateValue(v); err != nil {
			return &SeriesError{Column: i, Value: v, Err: err}
		}
	}
	return nil
}

// ValidateValue checks that a single logical value maps to a finite
// pixel position: it must be finite, and positive on a log10 scale.
// It returns ErrNonFiniteValue or ErrNonPositiveValue.
func (g *Graph) ValidateValue(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return ErrNonFiniteValue
	}
	if g.Scale == Log10Scale && v <= 0 {
		return ErrNonPositiveValue
	}
	return nil
}

// MapSeries validates the layout and s, then maps every column of s to
// pixel space in order.
func (g *Graph) MapSeries(s Series) ([]Point, error) {
	if err := g.Validate(); err != nil {
		return nil, err
	}
	if err := g.ValidateSeries(s); err != nil {
		return nil, err
	}
	points := make([]Point, len(s))
	for column, v := range s {
		points[column] = g.Point(len(s), column, v)
	}
	return points, nil
}
