package ggchart

// Renderer is the pen a Drawable draws with.
//
// Implementations bind it to a real path builder; see the backend
// packages. A Renderer serves a single draw pass.
type Renderer interface {
	// MoveTo moves the pen to p without drawing anything.
	MoveTo(p Point)

	// LineTo draws a line from the pen's current position to p, updating
	// the pen position.
	LineTo(p Point)
}

// ColorSetter is implemented by renderers that track paint colors.
// Line and Curve set both colors after emitting their geometry, and the
// following stroke or fill uses them.
type ColorSetter interface {
	SetStrokeColor(c Color)
	SetFillColor(c Color)
}

// OvalFiller is implemented by renderers that can fill an oval directly
// on their paint surface, independent of the pen position.
type OvalFiller interface {
	FillOval(bounds Rect, c Color)
}

// Drawable is a shape that can issue drawing commands to a Renderer.
type Drawable interface {
	// Draw issues drawing commands to r to represent the shape.
	// A nil r is a no-op: it allows layout-only passes without a surface.
	Draw(r Renderer)
}

// Line is a straight segment.
type Line struct {
	Start Point
	End   Point
	Color Color
}

// Draw implements Drawable.
func (l Line) Draw(r Renderer) {
	if r == nil {
		return
	}
	r.MoveTo(l.Start)
	r.LineTo(l.End)
	setColors(r, l.Color)
}

// Circle is a filled disc inside the square with top-left corner Origin
// and side Diameter.
//
// Circles do not use the pen: Draw fills the oval directly through
// OvalFiller and leaves the pen where it was.
type Circle struct {
	Origin   Point
	Diameter float64
	Color    Color
}

// Bounds returns the square the circle is inscribed in.
func (c Circle) Bounds() Rect {
	return Rect{X: c.Origin.X, Y: c.Origin.Y, W: c.Diameter, H: c.Diameter}
}

// Draw implements Drawable.
func (c Circle) Draw(r Renderer) {
	if r == nil {
		return
	}
	if f, ok := r.(OvalFiller); ok {
		f.FillOval(c.Bounds(), c.Color)
	}
}

// Curve is a polyline through Corners.
type Curve struct {
	Corners []Point
	Color   Color
}

// Validate returns ErrEmptyCurve when the curve has no corners.
func (c Curve) Validate() error {
	if len(c.Corners) == 0 {
		return ErrEmptyCurve
	}
	return nil
}

// Draw implements Drawable. The pen moves to the first corner, then a
// LineTo is issued for every corner, the first included.
//
// Draw panics with ErrEmptyCurve if the curve has no corners: an empty
// curve is a caller bug that silent no-drawing would hide.
func (c Curve) Draw(r Renderer) {
	if r == nil {
		return
	}
	if err := c.Validate(); err != nil {
		panic(err)
	}
	r.MoveTo(c.Corners[0])
	for _, p := range c.Corners {
		r.LineTo(p)
	}
	setColors(r, c.Color)
}

// Diagram is an ordered group of Drawables. Elements are drawn in
// insertion order, so later elements cover earlier ones.
type Diagram struct {
	elements []Drawable
}

// NewDiagram creates a Diagram holding elems in order.
func NewDiagram(elems ...Drawable) *Diagram {
	d := &Diagram{elements: make([]Drawable, 0, len(elems))}
	d.elements = append(d.elements, elems...)
	return d
}

// Add appends other. Nothing is deduplicated or validated.
func (d *Diagram) Add(other Drawable) {
	d.elements = append(d.elements, other)
}

// Len returns the number of elements.
func (d *Diagram) Len() int {
	return len(d.elements)
}

// Elements returns the elements in draw order.
func (d *Diagram) Elements() []Drawable {
	return d.elements
}

// Draw implements Drawable. Every element receives the same renderer, so
// pen state carries over between elements.
func (d *Diagram) Draw(r Renderer) {
	if r == nil {
		return
	}
	for _, e := range d.elements {
		e.Draw(r)
	}
}

func setColors(r Renderer, c Color) {
	if cs, ok := r.(ColorSetter); ok {
		cs.SetStrokeColor(c)
		cs.SetFillColor(c)
	}
}
