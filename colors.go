package inkpad

import (
	"encoding/hex"
	"image/color"
)

var (
	Black = color.RGBA{0, 0, 0, 255}
	White = color.RGBA{255, 255, 255, 255}
	Red   = color.RGBA{255, 0, 0, 255}
	Green = color.RGBA{0, 255, 0, 255}
	Blue  = color.RGBA{0, 0, 255, 255}
)

// RGB returns a color given by red, green, and blue ∈ [0,255].
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}

// Hex parses a CSS hexadecimal color such as e.g. #ff0000 or F00. Colors with alpha are returned alpha premultiplied. Invalid strings return false.
func Hex(s string) (color.RGBA, bool) {
	if 0 < len(s) && s[0] == '#' {
		s = s[1:]
	}
	h := make([]uint8, len(s))
	for i, c := range []byte(s) {
		if '0' <= c && c <= '9' {
			h[i] = c - '0'
		} else if 'a' <= c && c <= 'f' {
			h[i] = 10 + c - 'a'
		} else if 'A' <= c && c <= 'F' {
			h[i] = 10 + c - 'A'
		} else {
			return Black, false
		}
	}
	if len(s) == 3 {
		return color.RGBA{h[0]*16 + h[0], h[1]*16 + h[1], h[2]*16 + h[2], 0xff}, true
	} else if len(s) == 6 {
		return color.RGBA{h[0]*16 + h[1], h[2]*16 + h[3], h[4]*16 + h[5], 0xff}, true
	} else if len(s) == 8 {
		a := float64(h[6]*16+h[7]) / 255.0
		return color.RGBA{
			uint8(a*float64(h[0]*16+h[1]) + 0.5),
			uint8(a*float64(h[2]*16+h[3]) + 0.5),
			uint8(a*float64(h[4]*16+h[5]) + 0.5),
			h[6]*16 + h[7],
		}, true
	}
	return Black, false
}

// HexString formats a color as #rrggbb, or #rrggbbaa when it is not opaque.
func HexString(col color.RGBA) string {
	if col.A == 0xff {
		return "#" + hex.EncodeToString([]byte{col.R, col.G, col.B})
	}
	c := color.NRGBAModel.Convert(col).(color.NRGBA)
	return "#" + hex.EncodeToString([]byte{c.R, c.G, c.B, c.A})
}
