package ggchart

import (
	"errors"
	"fmt"
)

// Sentinel errors for chart construction and drawing.
var (
	// ErrSeriesTooShort is returned when a series has fewer than two
	// values. Column spacing divides by len(series)-1.
	ErrSeriesTooShort = errors.New("ggchart: series needs at least two values")

	// ErrNonPositiveValue is returned when a logarithmic scale receives a
	// value <= 0, whose logarithm is undefined.
	ErrNonPositiveValue = errors.New("ggchart: non-positive value on logarithmic scale")

	// ErrNonFiniteValue is returned for NaN or infinite series values.
	ErrNonFiniteValue = errors.New("ggchart: non-finite value")

	// ErrInvalidLayout is returned when the graph layout leaves no room to
	// plot: zero max value, margins wider than the viewport, or borders
	// taller than it.
	ErrInvalidLayout = errors.New("ggchart: invalid graph layout")

	// ErrEmptyCurve is the precondition violation raised when a Curve with
	// no corners is drawn.
	ErrEmptyCurve = errors.New("ggchart: curve has no corners")

	// ErrNilSurface is returned by Chart operations when no surface is bound.
	ErrNilSurface = errors.New("ggchart: nil surface")
)

// SeriesError reports which series and column failed validation.
// Column is -1 when the error concerns the whole series.
type SeriesError struct {
	Series int
	Column int
	Value  float64
	Err    error
}

func (e *SeriesError) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("series %d: %v", e.Series, e.Err)
	}
	return fmt.Sprintf("series %d column %d (value %g): %v", e.Series, e.Column, e.Value, e.Err)
}

func (e *SeriesError) Unwrap() error {
	return e.Err
}
