package ggchart

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"

	"github.com/gogpu/gg"
)

// Color is an RGBA color with each component in [0, 1].
// Components are not premultiplied. Values are never mutated after
// construction.
type Color struct {
	R, G, B, A float64
}

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

// HexColor decomposes a 24-bit packed RGB integer (0xRRGGBB) into a
// Color. Alpha is passed through unclamped.
//
//	HexColor(0xfc0ace, 0.25)
func HexColor(hex int, alpha float64) Color {
	return Color{
		R: float64((hex>>16)&0xff) / 255,
		G: float64((hex>>8)&0xff) / 255,
		B: float64(hex&0xff) / 255,
		A: alpha,
	}
}

// ParseHex parses "#RGB", "#RRGGBB" or "#RRGGBBAA" (leading '#' optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(h) {
	case 3:
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	case 6, 8:
	default:
		return Color{}, fmt.Errorf("ggchart: invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("ggchart: invalid hex color %q: %w", s, err)
	}
	if len(h) == 8 {
		return HexColor(int(v>>8), float64(v&0xff)/255), nil
	}
	return HexColor(int(v), 1), nil
}

// RGBA implements color.Color. The result is alpha-premultiplied as the
// interface requires.
func (c Color) RGBA() (r, g, b, a uint32) {
	n := c.NRGBA()
	return color.NRGBA{R: n.R, G: n.G, B: n.B, A: n.A}.RGBA()
}

// NRGBA converts to an 8-bit non-premultiplied color, clamping out of
// range components.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: channel8(c.R), G: channel8(c.G), B: channel8(c.B), A: channel8(c.A)}
}

// ToRGBA converts to the gg color type used by the backends.
func (c Color) ToRGBA() gg.RGBA {
	return gg.RGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// FromRGBA converts a gg color.
func FromRGBA(c gg.RGBA) Color {
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats the color as "#rrggbb", or "#rrggbbaa" when not opaque.
func (c Color) Hex() string {
	n := c.NRGBA()
	if n.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", n.R, n.G, n.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", n.R, n.G, n.B, n.A)
}

func channel8(v float64) uint8 {
	return uint8(math.Round(max(0, min(1, v)) * 255))
}

// Common colors
var (
	Black       = Color{0, 0, 0, 1}
	White       = Color{1, 1, 1, 1}
	Transparent = Color{}
)
