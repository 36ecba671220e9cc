package geojson

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"
	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/test"
)

func TestGeoJSON(t *testing.T) {
	d := inkpad.New(nil)
	d.SetCanvas(inkpad.Canvas{W: 20, H: 10, Background: inkpad.White})
	d.SetPen(inkpad.Pen{Width: 2, Stroke: inkpad.Red, Fill: inkpad.White})
	d.AddPoint(1, 2)
	d.AddPolyline([]float64{0, 0, 10, 5, 20, 0})
	d.AddPolyBezier([]float64{0, 0, 0, 10, 10, 10, 10, 0})

	r := New(&bytes.Buffer{}, &Options{Segments: 4})
	test.Error(t, d.Render(r))
	fc := r.FeatureCollection()
	test.T(t, len(fc.Features), 3)
	test.T(t, fc.ExtraMembers["canvas-width"], 20.0)
	test.T(t, fc.ExtraMembers["background"], "#ffffff")

	f := fc.Features[0]
	test.T(t, f.Geometry, orb.Geometry(orb.Point{1, 2}))
	test.T(t, f.ID, d.Elements()[0].ID.String())
	test.T(t, f.Properties["kind"], "point")
	test.T(t, f.Properties["stroke"], "#ff0000")
	test.T(t, f.Properties["stroke-width"], 2.0)

	test.T(t, fc.Features[1].Geometry, orb.Geometry(orb.LineString{{0, 0}, {10, 5}, {20, 0}}))

	ls := fc.Features[2].Geometry.(orb.LineString)
	test.T(t, len(ls), 5)
	test.T(t, ls[0], orb.Point{0, 0})
	test.T(t, ls[4], orb.Point{10, 0})
	test.Float(t, ls[2][0], 5.0)
	test.Float(t, ls[2][1], 7.5)
}

func TestGeoJSONWriter(t *testing.T) {
	d := inkpad.New(nil)
	d.AddPolyline([]float64{0, 0, 10, 5})

	buf := &bytes.Buffer{}
	test.Error(t, d.Write(buf, Writer(nil)))

	var v map[string]interface{}
	test.Error(t, json.Unmarshal(buf.Bytes(), &v))
	test.T(t, v["type"], "FeatureCollection")
	test.T(t, len(v["features"].([]interface{})), 1)
}
