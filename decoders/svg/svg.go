// Package svg decodes the subset of SVG written by the SVG renderer, as well as simple drawings from other programs.
package svg

import (
	"image/color"
	"io"
	"strings"

	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
)

type svgParser struct {
	z   *parse.Input
	d   *inkpad.Document
	err error

	canvas   inkpad.Canvas
	elements int
}

// Read decodes an SVG image into d, which is cleared first. Circles become points, lines and polylines become polylines and paths of lines and cubic Béziers become polylines or poly-Béziers. A rectangle at the origin covering the canvas and preceding all other shapes sets the background.
func Read(r io.Reader, d *inkpad.Document) error {
	z := parse.NewInput(r)
	defer z.Restore()

	d.Clear()
	l := xml.NewLexer(z)
	svg := svgParser{
		z:      z,
		d:      d,
		canvas: inkpad.Canvas{Background: inkpad.White},
	}
	inSVG := false
	for {
		tt, data := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return inkpad.FormatError("svg", "%v", l.Err())
			} else if svg.err != nil {
				return svg.err
			} else if !inSVG {
				return inkpad.FormatError("svg", "expected SVG tag")
			}
			if svg.canvas.W == 0.0 || svg.canvas.H == 0.0 {
				rect, err := d.Bounds()
				if err != nil {
					return err
				}
				svg.canvas.W, svg.canvas.H = rect.X1, rect.Y1
			}
			d.SetCanvas(svg.canvas)
			inkpad.Logger().Debug("read svg", "elements", d.Len())
			return nil
		case xml.StartTagToken:
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = string(val)
			}
			if style, ok := attrs["style"]; ok {
				for _, decl := range strings.Split(style, ";") {
					if key, val, ok := strings.Cut(decl, ":"); ok {
						attrs[strings.TrimSpace(key)] = strings.TrimSpace(val)
					}
				}
			}

			tag := string(data[1:])
			if !inSVG {
				if tag != "svg" {
					return inkpad.FormatError("svg", "expected SVG tag")
				}
				inSVG = true
				svg.parseViewport(attrs)
				continue
			}

			switch tag {
			case "rect":
				svg.parseRect(attrs)
			case "circle":
				svg.parseCircle(attrs)
			case "line":
				svg.parseLine(attrs)
			case "polyline", "polygon":
				svg.parsePolyline(attrs, tag == "polygon")
			case "path":
				svg.parsePath(attrs)
			}
			if svg.err != nil {
				return svg.err
			}
		}
	}
}

func (svg *svgParser) setError(msg string, args ...interface{}) {
	if svg.err == nil {
		svg.err = inkpad.FormatError("svg", "%v", parse.NewErrorLexer(svg.z, msg, args...))
	}
}

// parseNumber parses a number with an optional unit, which is ignored.
func (svg *svgParser) parseNumber(v string) float64 {
	v = strings.TrimSpace(v)
	if len(v) == 0 {
		return 0.0
	}
	num, n := strconv.ParseFloat([]byte(v))
	if n == 0 {
		svg.setError("bad number: %s", v)
		return 0.0
	}
	return num
}

func (svg *svgParser) parseNumbers(v string) []float64 {
	nums := []float64{}
	b := []byte(v)
	for i := skipCommaWhitespace(b); i < len(b); i += skipCommaWhitespace(b[i:]) {
		num, n := strconv.ParseFloat(b[i:])
		if n == 0 {
			svg.setError("bad number list at position %d: %s", i+1, v)
			return nil
		}
		nums = append(nums, num)
		i += n
	}
	return nums
}

func skipCommaWhitespace(b []byte) int {
	i := 0
	for i < len(b) && (b[i] == ' ' || b[i] == ',' || b[i] == '\n' || b[i] == '\r' || b[i] == '\t') {
		i++
	}
	return i
}

func (svg *svgParser) parseViewport(attrs map[string]string) {
	if viewBox, ok := attrs["viewBox"]; ok {
		vals := svg.parseNumbers(viewBox)
		if len(vals) != 4 {
			svg.setError("bad viewBox: %s", viewBox)
			return
		}
		svg.canvas.W, svg.canvas.H = vals[2], vals[3]
		return
	}
	svg.canvas.W = svg.parseNumber(attrs["width"])
	svg.canvas.H = svg.parseNumber(attrs["height"])
}

func (svg *svgParser) parseColor(v string) (color.RGBA, bool) {
	if v == "" || v == "none" {
		return color.RGBA{}, false
	}
	switch v {
	case "black":
		return inkpad.Black, true
	case "white":
		return inkpad.White, true
	case "red":
		return inkpad.Red, true
	case "lime":
		return inkpad.Green, true
	case "blue":
		return inkpad.Blue, true
	}
	col, ok := inkpad.Hex(v)
	if !ok {
		svg.setError("bad color: %s", v)
	}
	return col, ok
}

func (svg *svgParser) pen(attrs map[string]string) inkpad.Pen {
	pen := svg.d.Pen()
	if col, ok := svg.parseColor(attrs["stroke"]); ok {
		pen.Stroke = col
	}
	if col, ok := svg.parseColor(attrs["fill"]); ok {
		pen.Fill = col
	}
	if width, ok := attrs["stroke-width"]; ok {
		pen.Width = svg.parseNumber(width)
	}
	return pen
}

func (svg *svgParser) add(pen inkpad.Pen, kind inkpad.Kind, coords []float64) {
	svg.d.Insert(pen, inkpad.Element{Kind: kind, Coords: coords}, inkpad.Handle{})
	svg.elements++
}

func (svg *svgParser) parseRect(attrs map[string]string) {
	x, y := svg.parseNumber(attrs["x"]), svg.parseNumber(attrs["y"])
	w, h := svg.parseNumber(attrs["width"]), svg.parseNumber(attrs["height"])
	if svg.elements == 0 && x == 0.0 && y == 0.0 && w == svg.canvas.W && h == svg.canvas.H {
		if col, ok := svg.parseColor(attrs["fill"]); ok {
			svg.canvas.Background = col
		}
		return
	}
	svg.add(svg.pen(attrs), inkpad.PolylineKind, []float64{x, y, x + w, y, x + w, y + h, x, y + h, x, y})
}

func (svg *svgParser) parseCircle(attrs map[string]string) {
	cx, cy, r := svg.parseNumber(attrs["cx"]), svg.parseNumber(attrs["cy"]), svg.parseNumber(attrs["r"])
	pen := svg.d.Pen()
	pen.Width = 2.0 * r
	if col, ok := svg.parseColor(attrs["fill"]); ok {
		pen.Stroke = col
	}
	svg.add(pen, inkpad.PointKind, []float64{cx, cy})
}

func (svg *svgParser) parseLine(attrs map[string]string) {
	x1, y1 := svg.parseNumber(attrs["x1"]), svg.parseNumber(attrs["y1"])
	x2, y2 := svg.parseNumber(attrs["x2"]), svg.parseNumber(attrs["y2"])
	svg.add(svg.pen(attrs), inkpad.PolylineKind, []float64{x1, y1, x2, y2})
}

func (svg *svgParser) parsePolyline(attrs map[string]string, closed bool) {
	coords := svg.parseNumbers(attrs["points"])
	if coords == nil {
		return
	} else if len(coords)%2 != 0 || len(coords) < 2 {
		svg.setError("bad points: %s", attrs["points"])
		return
	}
	if closed {
		coords = append(coords, coords[0], coords[1])
	}
	kind := inkpad.PolylineKind
	if len(coords) == 2 {
		kind = inkpad.PointKind
	}
	svg.add(svg.pen(attrs), kind, coords)
}
