package decoders

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/test"
)

func TestRead(t *testing.T) {
	dir := t.TempDir()

	top := []byte("WALTOP")
	top = append(top, make([]byte, 26)...)
	top = append(top, 1, 0x10, 0x27, 0x00, 0x00, 0, 1, 0x10, 0x27, 0x0a, 0x00, 0)

	var tests = []struct {
		filename string
		data     string
		n        int
	}{
		{"note.TOP", string(top), 1},
		{"drawing.svg", `<svg width="10" height="10"><line x1="0" y1="0" x2="5" y2="5" stroke="red"/></svg>`, 1},
		{"drawing.geojson", `{"type":"FeatureCollection","features":[{"type":"Feature","geometry":{"type":"Point","coordinates":[1,2]},"properties":{}}]}`, 1},
	}
	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			filename := filepath.Join(dir, tt.filename)
			test.Error(t, os.WriteFile(filename, []byte(tt.data), 0644))

			d := inkpad.New(nil)
			test.Error(t, Read(filename, d))
			test.T(t, d.Len(), tt.n)
		})
	}
}

func TestReadErrors(t *testing.T) {
	dir := t.TempDir()
	d := inkpad.New(nil)

	err := Read(filepath.Join(dir, "note.xyz"), d)
	test.That(t, errors.Is(err, inkpad.ErrInvalidParameter), "expected invalid parameter")

	err = Read(filepath.Join(dir, "missing.top"), d)
	test.That(t, errors.Is(err, os.ErrNotExist), "expected missing file")

	filename := filepath.Join(dir, "bad.top")
	test.Error(t, os.WriteFile(filename, []byte("NOTTOP"), 0644))
	err = Read(filename, d)
	test.That(t, errors.Is(err, inkpad.ErrInvalidFormat), "expected invalid format")
}
