package svg

import (
	"bytes"
	"compress/gzip"
	"errors"
	"io"
	"testing"

	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/test"
)

func testDocument() *inkpad.Document {
	d := inkpad.New(nil)
	d.SetCanvas(inkpad.Canvas{W: 20, H: 10, Background: inkpad.White})
	d.SetPen(inkpad.Pen{Width: 2, Stroke: inkpad.Black, Fill: inkpad.White})
	d.AddPoint(1, 2)
	d.SetPen(inkpad.Pen{Width: 1, Stroke: inkpad.Red, Fill: inkpad.White})
	d.AddPolyline([]float64{0, 0, 10, 5})
	d.SetPen(inkpad.DefaultPen)
	d.AddPolyBezier([]float64{0, 0, 1, 2, 3, 4, 5, 6})
	return d
}

func TestSVG(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, testDocument().Write(buf, Writer(nil)))
	test.String(t, buf.String(), `<svg version="1.1" width="20" height="10" viewBox="0 0 20 10" xmlns="http://www.w3.org/2000/svg">`+
		`<rect width="20" height="10" fill="#ffffff"/>`+
		`<circle cx="1" cy="2" r="1" fill="#000000"/>`+
		`<polyline points="0,0 10,5" style="fill:none;stroke:#ff0000;stroke-width:1;stroke-linecap:round;stroke-linejoin:round"/>`+
		`<path d="M0 0C1 2 3 4 5 6" style="fill:none;stroke:#000000;stroke-width:10;stroke-linecap:round;stroke-linejoin:round"/>`+
		`</svg>`)
}

func TestSVGCompression(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, testDocument().Write(buf, Writer(&Options{Compression: 9})))

	r, err := gzip.NewReader(buf)
	test.Error(t, err)
	b, err := io.ReadAll(r)
	test.Error(t, err)
	test.That(t, bytes.HasPrefix(b, []byte("<svg ")))
	test.That(t, bytes.HasSuffix(b, []byte("</svg>")))
}

func TestSVGUnsupported(t *testing.T) {
	d := testDocument()
	d.Insert(inkpad.DefaultPen, inkpad.Element{Kind: inkpad.Kind(9), Coords: []float64{0, 0}}, inkpad.Handle{})

	buf := &bytes.Buffer{}
	err := d.Write(buf, Writer(nil))
	test.That(t, errors.Is(err, inkpad.ErrUnsupportedElementKind))
}
