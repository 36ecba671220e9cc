package rasterizer

import (
	"bytes"
	"errors"
	"image/color"
	"image/png"
	"testing"

	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/test"
)

func testDocument() *inkpad.Document {
	d := inkpad.New(nil)
	d.SetCanvas(inkpad.Canvas{W: 20, H: 10, Background: inkpad.White})
	d.SetPen(inkpad.Pen{Width: 2, Stroke: inkpad.Red, Fill: inkpad.White})
	d.AddPolyline([]float64{2, 5, 18, 5})
	d.SetPen(inkpad.Pen{Width: 4, Stroke: inkpad.Blue, Fill: inkpad.White})
	d.AddPoint(15, 2)
	return d
}

// near allows for anti-aliasing round-off on fully covered pixels
func near(a, b color.RGBA) bool {
	diff := func(x, y uint8) bool {
		d := int(x) - int(y)
		return -4 < d && d < 4
	}
	return diff(a.R, b.R) && diff(a.G, b.G) && diff(a.B, b.B) && diff(a.A, b.A)
}

func TestDraw(t *testing.T) {
	img, err := Draw(testDocument(), inkpad.DefaultResolution)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 20)
	test.T(t, img.Bounds().Dy(), 10)
	test.T(t, img.RGBAAt(10, 1), inkpad.White)
	test.That(t, near(img.RGBAAt(10, 4), inkpad.Red), img.RGBAAt(10, 4))
	test.That(t, near(img.RGBAAt(10, 5), inkpad.Red), img.RGBAAt(10, 5))
	test.That(t, near(img.RGBAAt(15, 2), inkpad.Blue), img.RGBAAt(15, 2))
	test.T(t, img.RGBAAt(5, 8), inkpad.White)
}

func TestDrawResolution(t *testing.T) {
	img, err := Draw(testDocument(), inkpad.Resolution(2.0))
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 40)
	test.T(t, img.Bounds().Dy(), 20)
	test.That(t, near(img.RGBAAt(20, 9), inkpad.Red), img.RGBAAt(20, 9))
	test.T(t, img.RGBAAt(20, 2), inkpad.White)
}

func TestPNGWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	test.Error(t, testDocument().Write(buf, PNGWriter(inkpad.DefaultResolution)))

	img, err := png.Decode(buf)
	test.Error(t, err)
	test.T(t, img.Bounds().Dx(), 20)
}

func TestDrawUnsupported(t *testing.T) {
	d := testDocument()
	d.Insert(inkpad.DefaultPen, inkpad.Element{Kind: inkpad.Kind(9), Coords: []float64{0, 0}}, inkpad.Handle{})
	_, err := Draw(d, inkpad.DefaultResolution)
	test.That(t, errors.Is(err, inkpad.ErrUnsupportedElementKind))
}
