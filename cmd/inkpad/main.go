package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/inkpad"
	"github.com/tdewolff/inkpad/decoders"
	"github.com/tdewolff/inkpad/renderers"
)

type Convert struct {
	Merge      bool    `short:"m" desc:"Merge polylines that continue each other"`
	Simplify   float64 `short:"s" default:"0" desc:"Simplify polylines within radius"`
	Smooth     float64 `default:"0" desc:"Smooth polylines into Béziers with tension"`
	Rotate     float64 `short:"r" default:"0" desc:"Rotate by degrees counter clockwise"`
	Crop       bool    `short:"c" desc:"Crop canvas to the elements"`
	Workers    int     `short:"w" default:"1" desc:"Number of parallel workers"`
	Resolution float64 `default:"1" desc:"Pixels per canvas unit for raster output"`
	Info       bool    `short:"i" desc:"Print document information"`
	Verbose    bool    `short:"v" desc:"Verbose logging"`
	Input      string  `index:"0" desc:"Input file (.top, .svg, .geojson)"`
	Output     string  `index:"1" default:"" desc:"Output file (.png, .jpg, .gif, .tiff, .svg, .svgz, .pdf, .geojson)"`
}

func main() {
	root := argp.NewCmd(&Convert{}, "Digital notepad drawing converter")
	root.Parse()
	root.PrintHelp()
}

func (cmd *Convert) Run() error {
	if cmd.Input == "" || cmd.Output == "" && !cmd.Info {
		return argp.ShowUsage
	}

	level := slog.LevelWarn
	if cmd.Verbose {
		level = slog.LevelDebug
	}
	inkpad.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	d := inkpad.New(&inkpad.Options{Workers: cmd.Workers})
	if err := decoders.Read(cmd.Input, d); err != nil {
		return err
	}

	if cmd.Merge {
		if err := d.MergePolylines(); err != nil {
			return err
		}
	}
	if cmd.Simplify != 0.0 {
		if err := d.SimplifyPolylines(cmd.Simplify); err != nil {
			return err
		}
	}
	if cmd.Smooth != 0.0 {
		if err := d.SmoothPolylines(cmd.Smooth); err != nil {
			return err
		}
	}
	if cmd.Rotate != 0.0 {
		if err := d.Rotate(cmd.Rotate); err != nil {
			return err
		}
	} else if cmd.Crop {
		if err := d.Autocrop(); err != nil {
			return err
		}
	}

	if cmd.Info {
		bounds, err := d.Bounds()
		if err != nil {
			return err
		}
		canvas := d.Canvas()
		fmt.Println("File name:", cmd.Input)
		fmt.Println("Elements:", d.Len())
		fmt.Println("Parameters:", d.ParameterCount())
		fmt.Printf("Canvas: %vx%v\n", canvas.W, canvas.H)
		fmt.Println("Bounds:", bounds)
	}

	if cmd.Output != "" {
		return renderers.Write(cmd.Output, d, inkpad.Resolution(cmd.Resolution))
	}
	return nil
}
