package svg

import (
	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/parse/v2/strconv"
)

var cmdLens = map[byte]int{
	'M': 2,
	'L': 2,
	'H': 1,
	'V': 1,
	'C': 6,
	'Z': 0,
}

// subpath collects one subpath both as a polyline and as a poly-Bézier, lines become cubic Béziers with their control points on the end points.
type subpath struct {
	poly   []float64
	cubic  []float64
	curved bool
}

func (p *subpath) moveTo(x, y float64) {
	p.poly = []float64{x, y}
	p.cubic = []float64{x, y}
	p.curved = false
}

func (p *subpath) lineTo(x0, y0, x, y float64) {
	p.poly = append(p.poly, x, y)
	p.cubic = append(p.cubic, x0, y0, x, y, x, y)
}

func (p *subpath) cubeTo(cx0, cy0, cx1, cy1, x, y float64) {
	p.cubic = append(p.cubic, cx0, cy0, cx1, cy1, x, y)
	p.curved = true
}

func (svg *svgParser) parsePath(attrs map[string]string) {
	pen := svg.pen(attrs)
	b := []byte(attrs["d"])

	p := subpath{}
	flush := func() {
		if p.curved {
			svg.add(pen, inkpad.PolyBezierKind, p.cubic)
		} else if 4 <= len(p.poly) {
			svg.add(pen, inkpad.PolylineKind, p.poly)
		}
		p = subpath{}
	}

	var x, y, x0, y0 float64 // current and subpath start
	var f [6]float64
	cmd := byte(0)
	i := skipCommaWhitespace(b)
	for i < len(b) {
		if c := b[i]; 'A' <= c && c <= 'Z' || 'a' <= c && c <= 'z' {
			cmd = c
			i++
			i += skipCommaWhitespace(b[i:])
		} else if cmd == 0 {
			svg.setError("bad path: expected command at position %d", i+1)
			return
		}

		CMD := cmd
		if 'a' <= cmd && cmd <= 'z' {
			CMD -= 'a' - 'A'
		}
		n, ok := cmdLens[CMD]
		if !ok {
			svg.setError("bad path: unsupported command '%c' at position %d", cmd, i)
			return
		}
		for j := 0; j < n; j++ {
			num, m := strconv.ParseFloat(b[i:])
			if m == 0 {
				svg.setError("bad path: sets of %d numbers should follow command '%c' at position %d", n, cmd, i+1)
				return
			}
			f[j] = num
			i += m
			i += skipCommaWhitespace(b[i:])
		}

		if CMD != 'M' && len(p.poly) == 0 {
			svg.setError("bad path: expected move command at position %d", i)
			return
		}

		rel := cmd != CMD
		dx, dy := 0.0, 0.0
		if rel {
			dx, dy = x, y
		}
		switch CMD {
		case 'M':
			flush()
			x, y = f[0]+dx, f[1]+dy
			x0, y0 = x, y
			p.moveTo(x, y)
			// implicit lines follow a move
			if rel {
				cmd = 'l'
			} else {
				cmd = 'L'
			}
		case 'L':
			p.lineTo(x, y, f[0]+dx, f[1]+dy)
			x, y = f[0]+dx, f[1]+dy
		case 'H':
			p.lineTo(x, y, f[0]+dx, y)
			x = f[0] + dx
		case 'V':
			p.lineTo(x, y, x, f[0]+dy)
			y = f[0] + dy
		case 'C':
			p.cubeTo(f[0]+dx, f[1]+dy, f[2]+dx, f[3]+dy, f[4]+dx, f[5]+dy)
			x, y = f[4]+dx, f[5]+dy
		case 'Z':
			if x != x0 || y != y0 {
				p.lineTo(x, y, x0, y0)
			}
			flush()
			x, y = x0, y0
			p.moveTo(x, y)
			cmd = 0
		}
	}
	flush()
}
