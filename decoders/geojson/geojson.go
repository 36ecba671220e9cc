// Package geojson decodes GeoJSON feature collections into documents.
package geojson

import (
	"io"

	"github.com/google/uuid"
	"github.com/paulmach/orb"
	geo "github.com/paulmach/orb/geojson"
	"github.com/tdewolff/inkpad"
)

// Read decodes a GeoJSON feature collection into d, which is cleared first. Point features become points, LineString and MultiLineString features become polylines. The pen of every element is restored from the stroke, fill and stroke-width properties and defaults to the document's pen. The canvas is taken from the canvas-width, canvas-height and background members of the collection, or else spans from the origin to the maximum coordinates.
func Read(r io.Reader, d *inkpad.Document) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	fc, err := geo.UnmarshalFeatureCollection(data)
	if err != nil {
		return inkpad.FormatError("geojson", "%v", err)
	}

	d.Clear()
	for i, f := range fc.Features {
		pen := readPen(f.Properties, d.Pen())
		id := uuid.Nil
		if s, ok := f.ID.(string); ok {
			if parsed, err := uuid.Parse(s); err == nil {
				id = parsed
			}
		}

		switch g := f.Geometry.(type) {
		case orb.Point:
			d.Insert(pen, inkpad.Element{ID: id, Kind: inkpad.PointKind, Coords: []float64{g[0], g[1]}}, inkpad.Handle{})
		case orb.LineString:
			if err := addLineString(d, pen, id, g); err != nil {
				return err
			}
		case orb.MultiLineString:
			for _, ls := range g {
				if err := addLineString(d, pen, uuid.Nil, ls); err != nil {
					return err
				}
			}
		default:
			kind := "null"
			if g != nil {
				kind = g.GeoJSONType()
			}
			return inkpad.FormatError("geojson", "feature %d: unsupported geometry %s", i, kind)
		}
	}

	canvas := inkpad.Canvas{Background: inkpad.White}
	if w, ok := fc.ExtraMembers["canvas-width"].(float64); ok {
		canvas.W = w
	}
	if h, ok := fc.ExtraMembers["canvas-height"].(float64); ok {
		canvas.H = h
	}
	if s, ok := fc.ExtraMembers["background"].(string); ok {
		if col, ok := inkpad.Hex(s); ok {
			canvas.Background = col
		}
	}
	if canvas.W == 0.0 && canvas.H == 0.0 {
		rect, err := d.Bounds()
		if err != nil {
			return err
		}
		canvas.W, canvas.H = rect.X1, rect.Y1
	}
	d.SetCanvas(canvas)
	inkpad.Logger().Debug("read geojson", "features", len(fc.Features), "elements", d.Len())
	return nil
}

func addLineString(d *inkpad.Document, pen inkpad.Pen, id uuid.UUID, ls orb.LineString) error {
	if len(ls) == 0 {
		return inkpad.FormatError("geojson", "empty line string")
	}

	coords := make([]float64, 0, 2*len(ls))
	for _, p := range ls {
		coords = append(coords, p[0], p[1])
	}
	kind := inkpad.PolylineKind
	if len(ls) == 1 {
		kind = inkpad.PointKind
	}
	d.Insert(pen, inkpad.Element{ID: id, Kind: kind, Coords: coords}, inkpad.Handle{})
	return nil
}

func readPen(props geo.Properties, pen inkpad.Pen) inkpad.Pen {
	if s, ok := props["stroke"].(string); ok {
		if col, ok := inkpad.Hex(s); ok {
			pen.Stroke = col
		}
	}
	if s, ok := props["fill"].(string); ok {
		if col, ok := inkpad.Hex(s); ok {
			pen.Fill = col
		}
	}
	if width, ok := props["stroke-width"].(float64); ok {
		pen.Width = width
	}
	return pen
}

