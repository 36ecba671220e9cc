package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"path/filepath"
	"strings"

	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/inkpad/renderers/geojson"
	"github.com/tdewolff/inkpad/renderers/pdf"
	"github.com/tdewolff/inkpad/renderers/rasterizer"
	"github.com/tdewolff/inkpad/renderers/svg"
	"golang.org/x/image/tiff"
)

// Options holds the options of all output formats. Write picks the ones that apply to the file extension.
type Options struct {
	inkpad.Resolution
	JPG     *jpeg.Options
	GIF     *gif.Options
	TIFF    *tiff.Options
	SVG     *svg.Options
	PDF     *pdf.Options
	GeoJSON *geojson.Options
}

// Extensions lists the file extensions supported by Write.
var Extensions = []string{".png", ".jpg", ".jpeg", ".gif", ".tif", ".tiff", ".svg", ".svgz", ".pdf", ".geojson", ".json"}

// Write writes the document to filename, where the output format is determined by the file extension. Options may be an inkpad.Resolution or the options type of any output format.
func Write(filename string, d *inkpad.Document, opts ...interface{}) error {
	writer, err := writerFor(filename, opts...)
	if err != nil {
		return err
	}
	return d.WriteFile(filename, writer)
}

func writerFor(filename string, opts ...interface{}) (inkpad.Writer, error) {
	options := Options{
		Resolution: inkpad.DefaultResolution,
	}
	for _, opt := range opts {
		switch o := opt.(type) {
		case inkpad.Resolution:
			options.Resolution = o
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		case *pdf.Options:
			options.PDF = o
		case *geojson.Options:
			options.GeoJSON = o
		default:
			return nil, &inkpad.Error{Component: "renderers", Op: "write", Msg: fmt.Sprintf("unknown option: %T(%v)", opt, opt), Err: inkpad.ErrInvalidParameter}
		}
	}

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return rasterizer.PNGWriter(options.Resolution), nil
	case ".jpg", ".jpeg":
		return rasterizer.JPGWriter(options.Resolution, options.JPG), nil
	case ".gif":
		return rasterizer.GIFWriter(options.Resolution, options.GIF), nil
	case ".tif", ".tiff":
		return rasterizer.TIFFWriter(options.Resolution, options.TIFF), nil
	case ".svg", ".svgz":
		if ext == ".svgz" {
			svgOptions := svg.DefaultOptions
			if options.SVG != nil {
				svgOptions = *options.SVG
			}
			if svgOptions.Compression == 0 {
				svgOptions.Compression = -1
			}
			options.SVG = &svgOptions
		}
		return svg.Writer(options.SVG), nil
	case ".pdf":
		return pdf.Writer(options.PDF), nil
	case ".geojson", ".json":
		return geojson.Writer(options.GeoJSON), nil
	default:
		return nil, &inkpad.Error{Component: "renderers", Op: "write", Msg: fmt.Sprintf("unknown file extension: %v", ext), Err: inkpad.ErrInvalidParameter}
	}
}
