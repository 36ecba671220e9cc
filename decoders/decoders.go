// Package decoders reads documents from files, where the input format is determined by the file extension.
package decoders

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/inkpad/decoders/geojson"
	"github.com/tdewolff/inkpad/decoders/svg"
	"github.com/tdewolff/inkpad/decoders/top"
)

// Reader decodes r into the document, replacing its contents.
type Reader func(io.Reader, *inkpad.Document) error

// Extensions lists the file extensions supported by Read.
var Extensions = []string{".top", ".svg", ".geojson", ".json"}

// ReaderFor returns the reader for the file extension of filename.
func ReaderFor(filename string) (Reader, error) {
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".top":
		return top.Read, nil
	case ".svg":
		return svg.Read, nil
	case ".geojson", ".json":
		return geojson.Read, nil
	default:
		return nil, &inkpad.Error{Component: "decoders", Op: "read", Msg: fmt.Sprintf("unknown file extension: %v", ext), Err: inkpad.ErrInvalidParameter}
	}
}

// Read reads filename into the document.
func Read(filename string, d *inkpad.Document) error {
	read, err := ReaderFor(filename)
	if err != nil {
		return err
	}

	f, err := os.Open(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := read(bufio.NewReader(f), d); err != nil {
		return err
	}
	inkpad.Logger().Info("read document", "filename", filename, "elements", d.Len(), "parameters", d.ParameterCount())
	return nil
}
