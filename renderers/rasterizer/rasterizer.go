package rasterizer

import (
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/srwiley/rasterx"
	"github.com/tdewolff/inkpad"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/tiff"
)

// PNGWriter writes the document as a PNG file.
func PNGWriter(resolution inkpad.Resolution) inkpad.Writer {
	return func(w io.Writer, d *inkpad.Document) error {
		img, err := Draw(d, resolution)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	}
}

// JPGWriter writes the document as a JPG file.
func JPGWriter(resolution inkpad.Resolution, opts *jpeg.Options) inkpad.Writer {
	return func(w io.Writer, d *inkpad.Document) error {
		img, err := Draw(d, resolution)
		if err != nil {
			return err
		}
		return jpeg.Encode(w, img, opts)
	}
}

// GIFWriter writes the document as a GIF file.
func GIFWriter(resolution inkpad.Resolution, opts *gif.Options) inkpad.Writer {
	return func(w io.Writer, d *inkpad.Document) error {
		img, err := Draw(d, resolution)
		if err != nil {
			return err
		}
		return gif.Encode(w, img, opts)
	}
}

// TIFFWriter writes the document as a TIFF file.
func TIFFWriter(resolution inkpad.Resolution, opts *tiff.Options) inkpad.Writer {
	return func(w io.Writer, d *inkpad.Document) error {
		img, err := Draw(d, resolution)
		if err != nil {
			return err
		}
		return tiff.Encode(w, img, opts)
	}
}

// Draw draws the document on a new image with given resolution (in pixels per canvas unit). Higher resolution will result in larger images.
func Draw(d *inkpad.Document, resolution inkpad.Resolution) (*image.RGBA, error) {
	canvas := d.Canvas()
	img := image.NewRGBA(image.Rect(0, 0, int(canvas.W*float64(resolution)+0.5), int(canvas.H*float64(resolution)+0.5)))
	ras := New(img, resolution)
	if err := d.Render(ras); err != nil {
		return nil, err
	}
	return img, nil
}

// Rasterizer is a rasterizing renderer.
type Rasterizer struct {
	img        draw.Image
	resolution inkpad.Resolution

	filler *rasterx.Filler
	dasher *rasterx.Dasher
}

// New returns a renderer that draws to a rasterized image.
func New(img draw.Image, resolution inkpad.Resolution) *Rasterizer {
	size := img.Bounds().Size()
	scanner := rasterx.NewScannerGV(size.X, size.Y, img, img.Bounds())
	return &Rasterizer{
		img:        img,
		resolution: resolution,
		filler:     rasterx.NewFiller(size.X, size.Y, scanner),
		dasher:     rasterx.NewDasher(size.X, size.Y, scanner),
	}
}

// Size returns the size of the image in canvas units.
func (r *Rasterizer) Size() (float64, float64) {
	size := r.img.Bounds().Size()
	return float64(size.X) / float64(r.resolution), float64(size.Y) / float64(r.resolution)
}

func (r *Rasterizer) point(p inkpad.Point) fixed.Point26_6 {
	return rasterx.ToFixedP(p.X*float64(r.resolution), p.Y*float64(r.resolution))
}

// RenderBackground fills the image with the background color.
func (r *Rasterizer) RenderBackground(canvas inkpad.Canvas) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(canvas.Background), image.Point{}, draw.Src)
}

// RenderPoint renders a point as a disc with the element's width as diameter.
func (r *Rasterizer) RenderPoint(e *inkpad.Element) {
	p := e.Point(0)
	res := float64(r.resolution)
	r.filler.Clear()
	r.filler.SetColor(e.Stroke)
	rasterx.AddCircle(p.X*res, p.Y*res, e.Width/2.0*res, r.filler)
	r.filler.Draw()
}

// RenderPolyline renders a polyline.
func (r *Rasterizer) RenderPolyline(e *inkpad.Element) {
	r.setStroke(e)
	r.dasher.Start(r.point(e.Point(0)))
	for i := 1; i < e.Pairs(); i++ {
		r.dasher.Line(r.point(e.Point(i)))
	}
	r.dasher.Stop(false)
	r.dasher.Draw()
}

// RenderPolyBezier renders a poly-Bézier as a path of cubic Bézier segments.
func (r *Rasterizer) RenderPolyBezier(e *inkpad.Element) {
	r.setStroke(e)
	r.dasher.Start(r.point(e.Point(0)))
	for i := 1; i+2 < e.Pairs(); i += 3 {
		r.dasher.CubeBezier(r.point(e.Point(i)), r.point(e.Point(i+1)), r.point(e.Point(i+2)))
	}
	r.dasher.Stop(false)
	r.dasher.Draw()
}

func (r *Rasterizer) setStroke(e *inkpad.Element) {
	width := fixed.Int26_6(math.Round(e.Width * float64(r.resolution) * 64.0))
	r.dasher.Clear()
	r.dasher.SetColor(e.Stroke)
	r.dasher.SetStroke(width, 4*64, rasterx.RoundCap, nil, rasterx.RoundGap, rasterx.Round, nil, 0)
}
