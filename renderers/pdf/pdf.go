package pdf

import (
	"image/color"
	"io"
	"math"

	"github.com/jung-kurt/gofpdf"
	"github.com/tdewolff/inkpad"
)

type Options struct {
	Compress bool
	Unit     string // pt, mm, cm or in per canvas unit
}

var DefaultOptions = Options{
	Compress: true,
	Unit:     "pt",
}

// PDF is a portable document format renderer.
type PDF struct {
	w             io.Writer
	pdf           *gofpdf.Fpdf
	width, height float64
	alpha         float64
	opts          *Options
}

// New returns a portable document format (PDF) renderer with a single page of the given size in canvas units.
func New(w io.Writer, width, height float64, opts *Options) *PDF {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	// empty pages are not allowed
	size := gofpdf.SizeType{Wd: math.Max(width, 1.0), Ht: math.Max(height, 1.0)}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        opts.Unit,
		Size:           size,
	})
	pdf.SetCompression(opts.Compress)
	pdf.SetMargins(0.0, 0.0, 0.0)
	pdf.SetAutoPageBreak(false, 0.0)
	pdf.AddPageFormat("P", size)
	return &PDF{
		w:      w,
		pdf:    pdf,
		width:  width,
		height: height,
		alpha:  1.0,
		opts:   opts,
	}
}

// Writer returns an inkpad.Writer that writes the document as PDF.
func Writer(opts *Options) inkpad.Writer {
	return func(w io.Writer, d *inkpad.Document) error {
		canvas := d.Canvas()
		pdf := New(w, canvas.W, canvas.H, opts)
		if err := d.Render(pdf); err != nil {
			return err
		}
		return pdf.Close()
	}
}

// SetInfo sets the document's title, subject, keywords, author and creator.
func (r *PDF) SetInfo(title, subject, keywords, author, creator string) {
	r.pdf.SetTitle(title, true)
	r.pdf.SetSubject(subject, true)
	r.pdf.SetKeywords(keywords, true)
	r.pdf.SetAuthor(author, true)
	r.pdf.SetCreator(creator, true)
}

// Close writes the PDF to the underlying writer.
func (r *PDF) Close() error {
	return r.pdf.Output(r.w)
}

// Size returns the size of the page in canvas units.
func (r *PDF) Size() (float64, float64) {
	return r.width, r.height
}

func (r *PDF) setAlpha(col color.RGBA) {
	if alpha := float64(col.A) / 255.0; alpha != r.alpha {
		r.pdf.SetAlpha(alpha, "Normal")
		r.alpha = alpha
	}
}

// RenderBackground fills the page with the background color.
func (r *PDF) RenderBackground(canvas inkpad.Canvas) {
	col := canvas.Background
	r.setAlpha(col)
	r.pdf.SetFillColor(int(col.R), int(col.G), int(col.B))
	r.pdf.Rect(0.0, 0.0, r.width, r.height, "F")
}

// RenderPoint renders a point as a disc with the element's width as diameter.
func (r *PDF) RenderPoint(e *inkpad.Element) {
	p := e.Point(0)
	r.setAlpha(e.Stroke)
	r.pdf.SetFillColor(int(e.Stroke.R), int(e.Stroke.G), int(e.Stroke.B))
	r.pdf.Circle(p.X, p.Y, e.Width/2.0, "F")
}

// RenderPolyline renders a polyline.
func (r *PDF) RenderPolyline(e *inkpad.Element) {
	r.setStroke(e)
	p := e.Point(0)
	r.pdf.MoveTo(p.X, p.Y)
	for i := 1; i < e.Pairs(); i++ {
		p = e.Point(i)
		r.pdf.LineTo(p.X, p.Y)
	}
	r.pdf.DrawPath("D")
}

// RenderPolyBezier renders a poly-Bézier as a path of cubic Bézier segments.
func (r *PDF) RenderPolyBezier(e *inkpad.Element) {
	r.setStroke(e)
	p := e.Point(0)
	r.pdf.MoveTo(p.X, p.Y)
	for i := 1; i+2 < e.Pairs(); i += 3 {
		c1, c2, end := e.Point(i), e.Point(i+1), e.Point(i+2)
		r.pdf.CurveBezierCubicTo(c1.X, c1.Y, c2.X, c2.Y, end.X, end.Y)
	}
	r.pdf.DrawPath("D")
}

func (r *PDF) setStroke(e *inkpad.Element) {
	r.setAlpha(e.Stroke)
	r.pdf.SetDrawColor(int(e.Stroke.R), int(e.Stroke.G), int(e.Stroke.B))
	r.pdf.SetLineWidth(e.Width)
	r.pdf.SetLineCapStyle("round")
	r.pdf.SetLineJoinStyle("round")
}
