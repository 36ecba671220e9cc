package geojson

import (
	"io"

	"github.com/paulmach/orb"
	geo "github.com/paulmach/orb/geojson"
	"github.com/tdewolff/inkpad"
)

type Options struct {
	Segments int // line segments per cubic Bézier
}

var DefaultOptions = Options{
	Segments: 16,
}

// GeoJSON is a renderer that writes every element as a feature of a GeoJSON feature collection. Coordinates are written in canvas units.
type GeoJSON struct {
	w    io.Writer
	fc   *geo.FeatureCollection
	opts *Options
}

// New returns a GeoJSON renderer.
func New(w io.Writer, opts *Options) *GeoJSON {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}
	if opts.Segments < 1 {
		opts.Segments = 1
	}

	return &GeoJSON{
		w:    w,
		fc:   geo.NewFeatureCollection(),
		opts: opts,
	}
}

// Writer returns an inkpad.Writer that writes the document as GeoJSON.
func Writer(opts *Options) inkpad.Writer {
	return func(w io.Writer, d *inkpad.Document) error {
		r := New(w, opts)
		if err := d.Render(r); err != nil {
			return err
		}
		return r.Close()
	}
}

// FeatureCollection returns the features rendered so far.
func (r *GeoJSON) FeatureCollection() *geo.FeatureCollection {
	return r.fc
}

// Close writes the feature collection.
func (r *GeoJSON) Close() error {
	b, err := r.fc.MarshalJSON()
	if err != nil {
		return err
	}
	_, err = r.w.Write(b)
	return err
}

// RenderBackground stores the canvas extent and background as foreign members of the collection.
func (r *GeoJSON) RenderBackground(canvas inkpad.Canvas) {
	r.fc.ExtraMembers = geo.Properties{
		"canvas-width":  canvas.W,
		"canvas-height": canvas.H,
		"background":    inkpad.HexString(canvas.Background),
	}
}

// RenderPoint renders a point as a Point feature.
func (r *GeoJSON) RenderPoint(e *inkpad.Element) {
	p := e.Point(0)
	r.append(e, orb.Point{p.X, p.Y})
}

// RenderPolyline renders a polyline as a LineString feature.
func (r *GeoJSON) RenderPolyline(e *inkpad.Element) {
	ls := make(orb.LineString, 0, e.Pairs())
	for i := 0; i < e.Pairs(); i++ {
		p := e.Point(i)
		ls = append(ls, orb.Point{p.X, p.Y})
	}
	r.append(e, ls)
}

// RenderPolyBezier renders a poly-Bézier as a LineString feature by sampling every cubic segment.
func (r *GeoJSON) RenderPolyBezier(e *inkpad.Element) {
	p0 := e.Point(0)
	ls := orb.LineString{{p0.X, p0.Y}}
	for i := 1; i+2 < e.Pairs(); i += 3 {
		p1, p2, p3 := e.Point(i), e.Point(i+1), e.Point(i+2)
		for j := 1; j <= r.opts.Segments; j++ {
			p := inkpad.CubicBezierPos(p0, p1, p2, p3, float64(j)/float64(r.opts.Segments))
			ls = append(ls, orb.Point{p.X, p.Y})
		}
		ls[len(ls)-1] = orb.Point{p3.X, p3.Y}
		p0 = p3
	}
	r.append(e, ls)
}

func (r *GeoJSON) append(e *inkpad.Element, g orb.Geometry) {
	f := geo.NewFeature(g)
	f.ID = e.ID.String()
	f.Properties["kind"] = e.Kind.String()
	f.Properties["stroke"] = inkpad.HexString(e.Stroke)
	f.Properties["fill"] = inkpad.HexString(e.Fill)
	f.Properties["stroke-width"] = e.Width
	r.fc.Append(f)
}
