package backend

import (
	"errors"

	"github.com/gogpu/ggchart"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested target is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrInvalidSize is returned for non-positive target dimensions.
	ErrInvalidSize = errors.New("backend: invalid size")
)

// Target names of the packages shipped with ggchart.
const (
	NameRaster = "raster"
	NameSVG    = "svg"
	NameRecord = "record"
)

// Target is a chart output: a surface to draw on and a way to persist
// the result.
//
// Targets are registered via Register() and created via New() or
// Default(). A Target serves one draw pass and is not safe for
// concurrent use.
type Target interface {
	ggchart.Surface

	// Save writes the drawing to path in the target's native format.
	Save(path string) error
}
