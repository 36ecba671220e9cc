package geojson

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/tdewolff/inkpad"
	renderer "github.com/tdewolff/inkpad/renderers/geojson"
	"github.com/tdewolff/test"
)

func TestRead(t *testing.T) {
	d := inkpad.New(nil)
	err := Read(strings.NewReader(`{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[3,4]},"properties":{"stroke":"#00ff00","stroke-width":3}},
		{"type":"Feature","geometry":{"type":"LineString","coordinates":[[0,0],[10,5]]},"properties":{}},
		{"type":"Feature","geometry":{"type":"MultiLineString","coordinates":[[[1,1],[2,2]],[[7,7]]]},"properties":{"fill":"f00"}}
	]}`), d)
	test.Error(t, err)

	elements := d.Elements()
	test.T(t, len(elements), 4)
	test.T(t, elements[0].Kind, inkpad.PointKind)
	test.T(t, elements[0].Coords, []float64{3, 4})
	test.T(t, elements[0].Stroke, inkpad.Green)
	test.T(t, elements[0].Width, 3.0)
	test.T(t, elements[1].Kind, inkpad.PolylineKind)
	test.T(t, elements[1].Stroke, inkpad.Black)
	test.T(t, elements[1].Width, 10.0)
	test.T(t, elements[2].Coords, []float64{1, 1, 2, 2})
	test.T(t, elements[2].Fill, inkpad.Red)
	test.T(t, elements[3].Kind, inkpad.PointKind)
	test.T(t, d.Canvas(), inkpad.Canvas{W: 10, H: 7, Background: inkpad.White})
}

func TestReadRoundTrip(t *testing.T) {
	src := inkpad.New(nil)
	src.SetCanvas(inkpad.Canvas{W: 30, H: 40, Background: inkpad.Blue})
	src.SetPen(inkpad.Pen{Width: 2.5, Stroke: inkpad.Red, Fill: inkpad.Green})
	src.AddPoint(1, 2)
	src.AddPolyline([]float64{0, 0, 10.25, 5, 20, 0})

	buf := &bytes.Buffer{}
	test.Error(t, src.Write(buf, renderer.Writer(nil)))

	d := inkpad.New(nil)
	test.Error(t, Read(buf, d))
	test.T(t, d.Elements(), src.Elements())
	test.T(t, d.Canvas(), src.Canvas())
}

func TestReadErrors(t *testing.T) {
	d := inkpad.New(nil)
	test.That(t, errors.Is(Read(strings.NewReader(`{`), d), inkpad.ErrInvalidFormat))
	test.That(t, errors.Is(Read(strings.NewReader(`{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Polygon","coordinates":[[[0,0],[1,0],[1,1],[0,0]]]},"properties":{}}]}`), d), inkpad.ErrInvalidFormat))
}
