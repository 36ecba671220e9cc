package svg

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"io"
	"math"
	"strings"

	"github.com/tdewolff/minify/v2"
)

// Precision is the number of significant digits of written coordinates.
var Precision = 8

type num float64

func (f num) String() string {
	s := fmt.Sprintf("%.*g", Precision, f)
	if num(math.MaxInt32) < f || f < num(math.MinInt32) {
		if i := strings.IndexAny(s, ".eE"); i == -1 {
			s += ".0"
		}
	}
	return string(minify.Number([]byte(s), Precision))
}

type dec float64

func (f dec) String() string {
	s := fmt.Sprintf("%.*f", Precision, f)
	s = string(minify.Decimal([]byte(s), Precision))
	if dec(math.MaxInt32) < f || f < dec(math.MinInt32) {
		if i := strings.IndexByte(s, '.'); i == -1 {
			s += ".0"
		}
	}
	return s
}

func writeColor(w io.Writer, col color.RGBA) {
	buf := make([]byte, 7)
	buf[0] = '#'
	hex.Encode(buf[1:], []byte{col.R, col.G, col.B})
	w.Write(buf)
}

func writeOpacity(w io.Writer, name string, col color.RGBA) {
	if col.A != 255 {
		fmt.Fprintf(w, ";%s-opacity:%v", name, dec(float64(col.A)/255.0))
	}
}
