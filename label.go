package ggchart

// Label geometry and style produced by Chart.GraphLineLabel.
const (
	LabelWidth    = 50.0
	LabelHeight   = 18.0
	LabelFontSize = 12.0
)

// TextAlign is the horizontal alignment of label text within its frame.
type TextAlign int

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// Label is a small text tag positioned in pixel space. It is a plain
// value: painting it is up to the host or a LabelDrawer surface.
type Label struct {
	Frame    Rect
	Text     string
	Color    Color
	Align    TextAlign
	FontSize float64
	Bold     bool
}

// Center returns the center of the label frame.
func (l Label) Center() Point {
	return l.Frame.Center()
}
