// Package top decodes the Waltop .top format written by Waltop and compatible digital notepads.
package top

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"

	"github.com/tdewolff/inkpad"
)

// Header is the file signature.
const Header = "WALTOP"

// Size of the notepad in digitizer units.
const (
	Width  = 8800
	Height = 12000
)

const reservedSize = 26
const recordSize = 6

// Pen is the pen used for all strokes.
var Pen = inkpad.Pen{
	Width:  10.0,
	Stroke: inkpad.Black,
	Fill:   inkpad.White,
}

// Sample is a single pen position.
type Sample struct {
	X, Y float64
	Down bool // pen stays down towards the next sample
}

func parseSample(b []byte) Sample {
	return Sample{
		X:    float64(binary.LittleEndian.Uint16(b[3:5])),
		Y:    Height - float64(binary.LittleEndian.Uint16(b[1:3])),
		Down: b[0] != 0,
	}
}

// Read decodes a .top file into d. The document is cleared first and its canvas and pen are set to those of the notepad. Every pair of consecutive samples within a stroke becomes a two-point polyline. A truncated record at the end is ignored.
func Read(r io.Reader, d *inkpad.Document) error {
	br := bufio.NewReader(r)
	header := make([]byte, len(Header)+reservedSize)
	if _, err := io.ReadFull(br, header); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return inkpad.FormatError("top", "header of top file seems damaged")
		}
		return err
	} else if !bytes.Equal(header[:len(Header)], []byte(Header)) {
		return inkpad.FormatError("top", "header of top file seems damaged")
	}

	d.Clear()
	d.SetPen(Pen)
	d.SetCanvas(inkpad.Canvas{W: Width, H: Height, Background: inkpad.White})

	var prev Sample
	first := true
	n, strokes := 0, 0
	record := make([]byte, recordSize)
	for {
		if _, err := io.ReadFull(br, record); err == io.EOF || err == io.ErrUnexpectedEOF {
			break
		} else if err != nil {
			return err
		}

		cur := parseSample(record)
		if first {
			first = false
			strokes++
		} else if prev.Down {
			d.AddPolyline([]float64{prev.X, prev.Y, cur.X, cur.Y})
		} else {
			strokes++
		}
		prev = cur
		n++
	}
	inkpad.Logger().Debug("read top", "samples", n, "strokes", strokes, "elements", d.Len())
	return nil
}
