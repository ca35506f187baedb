package ggchart

import (
	"slices"

	"github.com/gogpu/gg"
)

// Stroke defaults used by Chart.
const (
	DefaultLineWidth  = 1.5
	DefaultDashLength = 5.0
)

// Path is a fresh path bound to a Surface. It collects geometry through
// the Renderer methods, then paints it when stroked.
type Path interface {
	Renderer

	// SetLineWidth sets the stroke width.
	SetLineWidth(w float64)

	// SetDash sets alternating dash/gap lengths. No arguments means a
	// solid line.
	SetDash(lengths ...float64)

	// Stroke paints the collected geometry with the stroke color last set
	// through ColorSetter, or black if none was set.
	Stroke() error
}

// Surface is the paint surface a Chart draws into.
//
// Implementations are not safe for concurrent use. Each draw pass gets its
// own surface, or at least exclusive use of it.
type Surface interface {
	// NewPath returns an empty path bound to the surface. Paths returned
	// by NewPath should also implement ColorSetter and OvalFiller.
	NewPath() Path

	// DrawLinearGradient fills bounds with a linear gradient running from
	// start to end.
	DrawLinearGradient(start, end Point, stops []ColorStop, bounds Rect) error
}

// LabelDrawer is implemented by surfaces that can render text labels.
type LabelDrawer interface {
	DrawLabel(l Label) error
}

// ColorStop is a color at a position along a gradient.
type ColorStop struct {
	Offset float64 // Position in gradient, 0.0 to 1.0
	Color  Color
}

// NewDash normalizes a dash pattern of alternating dash/gap lengths
// through gg.NewDash: negative lengths are made positive, and an
// odd-length pattern is repeated to even length ([5] becomes [5, 5]) so
// every backend receives the same array.
//
// Returns nil when no lengths are given or none is positive, meaning a
// solid line.
func NewDash(lengths ...float64) []float64 {
	d := gg.NewDash(lengths...)
	if d == nil {
		return nil
	}
	dash := slices.Clone(d.Array)
	if len(dash)%2 == 1 {
		dash = append(dash, dash...)
	}
	return dash
}
