package svg

import (
	"compress/gzip"
	"fmt"
	"io"

	"github.com/tdewolff/inkpad"
)

type Options struct {
	Compression int
}

var DefaultOptions = Options{}

// SVG is a scalable vector graphics renderer.
type SVG struct {
	w             io.Writer
	width, height float64
	opts          *Options
}

// New returns a scalable vector graphics (SVG) renderer with a view box of the given size in canvas units.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	if opts.Compression != 0 {
		if opts.Compression < gzip.HuffmanOnly || gzip.BestCompression < opts.Compression {
			opts.Compression = -1
		}
		w, _ = gzip.NewWriterLevel(w, opts.Compression)
	}

	fmt.Fprintf(w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg">`, dec(width), dec(height), dec(width), dec(height))
	return &SVG{
		w:      w,
		width:  width,
		height: height,
		opts:   opts,
	}
}

// Writer returns an inkpad.Writer that writes the document as SVG.
func Writer(opts *Options) inkpad.Writer {
	return func(w io.Writer, d *inkpad.Document) error {
		canvas := d.Canvas()
		svg := New(w, canvas.W, canvas.H, opts)
		if err := d.Render(svg); err != nil {
			return err
		}
		return svg.Close()
	}
}

// Close finishes and closes the SVG.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	if r.opts.Compression != 0 {
		if err2 := r.w.(*gzip.Writer).Close(); err == nil { // does not close underlying writer
			err = err2
		}
	}
	return err
}

// Size returns the size of the view box in canvas units.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// RenderBackground renders a rectangle covering the canvas.
func (r *SVG) RenderBackground(canvas inkpad.Canvas) {
	fmt.Fprintf(r.w, `<rect width="%v" height="%v" fill="`, num(canvas.W), num(canvas.H))
	writeColor(r.w, canvas.Background)
	if canvas.Background.A != 255 {
		fmt.Fprintf(r.w, `" fill-opacity="%v`, dec(float64(canvas.Background.A)/255.0))
	}
	fmt.Fprintf(r.w, `"/>`)
}

// RenderPoint renders a point as a disc with the element's width as diameter.
func (r *SVG) RenderPoint(e *inkpad.Element) {
	p := e.Point(0)
	fmt.Fprintf(r.w, `<circle cx="%v" cy="%v" r="%v" fill="`, num(p.X), num(p.Y), num(e.Width/2.0))
	writeColor(r.w, e.Stroke)
	if e.Stroke.A != 255 {
		fmt.Fprintf(r.w, `" fill-opacity="%v`, dec(float64(e.Stroke.A)/255.0))
	}
	fmt.Fprintf(r.w, `"/>`)
}

// RenderPolyline renders a polyline.
func (r *SVG) RenderPolyline(e *inkpad.Element) {
	fmt.Fprintf(r.w, `<polyline points="`)
	for i := 0; i < e.Pairs(); i++ {
		if i != 0 {
			fmt.Fprintf(r.w, " ")
		}
		p := e.Point(i)
		fmt.Fprintf(r.w, "%v,%v", num(p.X), num(p.Y))
	}
	r.writeStroke(e)
}

// RenderPolyBezier renders a poly-Bézier as a path of cubic Bézier segments.
func (r *SVG) RenderPolyBezier(e *inkpad.Element) {
	p := e.Point(0)
	fmt.Fprintf(r.w, `<path d="M%v %v`, num(p.X), num(p.Y))
	for i := 1; i+2 < e.Pairs(); i += 3 {
		c1, c2, end := e.Point(i), e.Point(i+1), e.Point(i+2)
		fmt.Fprintf(r.w, "C%v %v %v %v %v %v", num(c1.X), num(c1.Y), num(c2.X), num(c2.Y), num(end.X), num(end.Y))
	}
	r.writeStroke(e)
}

func (r *SVG) writeStroke(e *inkpad.Element) {
	fmt.Fprintf(r.w, `" style="fill:none;stroke:`)
	writeColor(r.w, e.Stroke)
	writeOpacity(r.w, "stroke", e.Stroke)
	fmt.Fprintf(r.w, ";stroke-width:%v", dec(e.Width))
	fmt.Fprintf(r.w, `;stroke-linecap:round;stroke-linejoin:round"/>`)
}
