package ggchart

// Built-in series colors, in assignment order.
const (
	ColorOne   = 0xdd2d2d // red
	ColorTwo   = 0x31b033 // green
	ColorThree = 0x3331b0 // blue
	ColorFour  = 0xb031ae // purple
	ColorFive  = 0xfc6c2d // orange
)

// Palette is an ordered, immutable list of series colors. Lookups wrap
// around, so any number of series gets a deterministic color.
type Palette struct {
	colors []Color
}

// DefaultPalette holds the five built-in series colors.
var DefaultPalette = NewPalette(
	HexColor(ColorOne, 1),
	HexColor(ColorTwo, 1),
	HexColor(ColorThree, 1),
	HexColor(ColorFour, 1),
	HexColor(ColorFive, 1),
)

// NewPalette creates a palette from colors. The slice is copied.
// An empty palette falls back to DefaultPalette on lookup.
func NewPalette(colors ...Color) Palette {
	c := make([]Color, len(colors))
	copy(c, colors)
	return Palette{colors: c}
}

// At returns the color for series index i, cycling through the palette.
// Negative indices wrap as well.
func (p Palette) At(i int) Color {
	if len(p.colors) == 0 {
		return DefaultPalette.At(i)
	}
	n := len(p.colors)
	i %= n
	if i < 0 {
		i += n
	}
	return p.colors[i]
}

// Len returns the number of distinct colors.
func (p Palette) Len() int {
	return len(p.colors)
}

// ColorAt returns the default palette color for series index i.
func ColorAt(i int) Color {
	return DefaultPalette.At(i)
}
