package inkpad

import (
	"image/color"

	"github.com/google/uuid"
)

// Kind is the type of a drawable element.
type Kind int

// see Element
const (
	PointKind Kind = iota + 1
	PolylineKind
	PolyBezierKind
)

// Valid returns true for the kinds known to this package.
func (k Kind) Valid() bool {
	return k == PointKind || k == PolylineKind || k == PolyBezierKind
}

func (k Kind) String() string {
	switch k {
	case PointKind:
		return "point"
	case PolylineKind:
		return "polyline"
	case PolyBezierKind:
		return "polybezier"
	}
	return "unknown"
}

// Pen is the drawing context that is copied into every element when it is created.
type Pen struct {
	Width  float64
	Stroke color.RGBA
	Fill   color.RGBA
}

// DefaultPen is black on white with a width of 10.
var DefaultPen = Pen{
	Width:  10.0,
	Stroke: Black,
	Fill:   White,
}

// Canvas is the nominal extent and background of a document.
type Canvas struct {
	W, H       float64
	Background color.RGBA
}

// Element is a drawable primitive. Coords holds the coordinate pairs flattened as x0,y0,x1,y1,...
//
//   - PointKind: exactly one pair
//   - PolylineKind: a start pair, zero or more interior pairs and an end pair
//   - PolyBezierKind: a start pair followed by {control1, control2, end} for every cubic segment
type Element struct {
	ID     uuid.UUID
	Kind   Kind
	Coords []float64
	Stroke color.RGBA
	Fill   color.RGBA
	Width  float64
}

// Pairs returns the number of coordinate pairs.
func (e *Element) Pairs() int {
	return len(e.Coords) / 2
}

// Point returns the i-th coordinate pair.
func (e *Element) Point(i int) Point {
	return Point{e.Coords[2*i], e.Coords[2*i+1]}
}

// Copy returns a deep copy of the element.
func (e *Element) Copy() Element {
	f := *e
	f.Coords = append([]float64(nil), e.Coords...)
	return f
}

func (e *Element) setPen(pen Pen) {
	e.Width = pen.Width
	e.Stroke = pen.Stroke
	e.Fill = pen.Fill
}

func (e *Element) pen() Pen {
	return Pen{e.Width, e.Stroke, e.Fill}
}
