package inkpad

import (
	"bufio"
	"io"
	"os"
)

// Resolution is the number of pixels per canvas unit for raster output.
type Resolution float64

// DefaultResolution maps one canvas unit to one pixel.
const DefaultResolution = Resolution(1.0)

// Renderer is implemented by the output formats. The background is rendered once, followed by every element in document order.
type Renderer interface {
	RenderBackground(canvas Canvas)
	RenderPoint(e *Element)
	RenderPolyline(e *Element)
	RenderPolyBezier(e *Element)
}

// Writer writes a document in a specific file format.
type Writer func(w io.Writer, d *Document) error

// Render renders the canvas background and all elements to r, dispatching on the element kind.
func (d *Document) Render(r Renderer) error {
	_, es := d.list.snapshot()
	if err := checkKinds("render", "render", es); err != nil {
		return err
	}

	r.RenderBackground(d.canvas)
	for _, e := range es {
		switch e.Kind {
		case PointKind:
			r.RenderPoint(e)
		case PolylineKind:
			r.RenderPolyline(e)
		case PolyBezierKind:
			r.RenderPolyBezier(e)
		}
	}
	return nil
}

// Write writes the document to w using writer.
func (d *Document) Write(w io.Writer, writer Writer) error {
	return writer(w, d)
}

// WriteFile writes the document to a file using writer.
func (d *Document) WriteFile(filename string, writer Writer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(f)
	if err = writer(w, d); err != nil {
		f.Close()
		return err
	}
	if err = w.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
