package fyne

import (
	"fyne.io/fyne/v2"
	fyneCanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/inkpad/renderers/rasterizer"
)

// Segments is the number of line segments per cubic Bézier for vector output.
var Segments = 16

// Content returns the document rasterized at the given resolution as a Fyne image that keeps its aspect ratio.
func Content(d *inkpad.Document, resolution inkpad.Resolution) (fyne.CanvasObject, error) {
	img, err := rasterizer.Draw(d, resolution)
	if err != nil {
		return nil, err
	}

	canvas := d.Canvas()
	obj := fyneCanvas.NewImageFromImage(img)
	obj.FillMode = fyneCanvas.ImageFillContain
	obj.SetMinSize(fyne.NewSize(float32(canvas.W), float32(canvas.H)))
	return obj, nil
}

// Fyne is a renderer that converts elements to Fyne canvas objects, with one line object per line segment. Coordinates are scaled by the given factor.
type Fyne struct {
	scale   float32
	objects []fyne.CanvasObject
}

// New returns a Fyne renderer.
func New(scale float64) *Fyne {
	return &Fyne{
		scale: float32(scale),
	}
}

// Container returns the document as vector objects in a container without layout.
func Container(d *inkpad.Document, scale float64) (*fyne.Container, error) {
	r := New(scale)
	if err := d.Render(r); err != nil {
		return nil, err
	}
	return container.NewWithoutLayout(r.Objects()...), nil
}

// Objects returns the rendered canvas objects in drawing order.
func (r *Fyne) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *Fyne) pos(p inkpad.Point) fyne.Position {
	return fyne.NewPos(float32(p.X)*r.scale, float32(p.Y)*r.scale)
}

// RenderBackground adds a rectangle covering the canvas.
func (r *Fyne) RenderBackground(canvas inkpad.Canvas) {
	rect := fyneCanvas.NewRectangle(canvas.Background)
	rect.Resize(fyne.NewSize(float32(canvas.W)*r.scale, float32(canvas.H)*r.scale))
	r.objects = append(r.objects, rect)
}

// RenderPoint adds a disc with the element's width as diameter.
func (r *Fyne) RenderPoint(e *inkpad.Element) {
	p := e.Point(0)
	radius := e.Width / 2.0
	circle := fyneCanvas.NewCircle(e.Stroke)
	circle.Position1 = r.pos(inkpad.Point{X: p.X - radius, Y: p.Y - radius})
	circle.Position2 = r.pos(inkpad.Point{X: p.X + radius, Y: p.Y + radius})
	r.objects = append(r.objects, circle)
}

// RenderPolyline adds a line for every segment.
func (r *Fyne) RenderPolyline(e *inkpad.Element) {
	for i := 1; i < e.Pairs(); i++ {
		r.line(e, e.Point(i-1), e.Point(i))
	}
}

// RenderPolyBezier adds lines approximating every cubic Bézier segment.
func (r *Fyne) RenderPolyBezier(e *inkpad.Element) {
	for i := 1; i+2 < e.Pairs(); i += 3 {
		p0, p1, p2, p3 := e.Point(i-1), e.Point(i), e.Point(i+1), e.Point(i+2)
		prev := p0
		for j := 1; j <= Segments; j++ {
			p := inkpad.CubicBezierPos(p0, p1, p2, p3, float64(j)/float64(Segments))
			r.line(e, prev, p)
			prev = p
		}
	}
}

func (r *Fyne) line(e *inkpad.Element, a, b inkpad.Point) {
	segment := fyneCanvas.NewLine(e.Stroke)
	segment.StrokeWidth = float32(e.Width) * r.scale
	segment.Position1 = r.pos(a)
	segment.Position2 = r.pos(b)
	r.objects = append(r.objects, segment)
}
