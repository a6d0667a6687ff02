// seehuhn.de/go/halftone - convert raster images into halftone vector art
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Halftone converts a raster image into an SVG halftone pattern.
//
// Usage:
//
//	halftone [options] input.png
//
// The SVG is written to standard output, or to the file given by -o.
// A PNG preview can be written with -png.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"io"
	"log/slog"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
	"golang.org/x/term"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/halftone"
	"seehuhn.de/go/halftone/layout"
	"seehuhn.de/go/halftone/raster"
	"seehuhn.de/go/halftone/sample"
	"seehuhn.de/go/halftone/svg"
)

type config struct {
	width       float64
	spacing     float64
	shape       string
	grid        string
	invert      bool
	cutPaths    bool
	contrast    float64
	hasContrast bool
	multiSample bool
	seed        uint64
	hasSeed     bool
	title       string
	noMetadata  bool
	pngFile     string
	dpi         float64
}

func main() {
	def := halftone.DefaultOptions()
	cfg := &config{}
	flag.Float64Var(&cfg.width, "width", def.OutputWidth, "output width in mm")
	flag.Float64Var(&cfg.spacing, "spacing", def.Spacing, "distance between samples in mm")
	flag.StringVar(&cfg.shape, "shape", "", "sample shape: circle, hex or diamond")
	flag.StringVar(&cfg.grid, "grid", "", "sample grid: rect, hex, diamond or poisson")
	flag.BoolVar(&cfg.invert, "invert", false, "invert the image and draw dark shapes on a light background")
	flag.BoolVar(&cfg.cutPaths, "cut-paths", false, "draw outlines only, for laser cutters")
	flag.Float64Var(&cfg.contrast, "contrast", 0, "contrast adjustment in percent (negative values reduce contrast)")
	flag.BoolVar(&cfg.multiSample, "multi-sample", true, "average five image samples per point")
	flag.Uint64Var(&cfg.seed, "seed", 0, "random seed for the poisson grid")
	flag.StringVar(&cfg.title, "title", "", "document title (default: input file name)")
	flag.BoolVar(&cfg.noMetadata, "no-metadata", false, "omit the XMP metadata")
	flag.StringVar(&cfg.pngFile, "png", "", "also write a PNG preview to this `file`")
	flag.Float64Var(&cfg.dpi, "dpi", raster.DefaultDPI, "resolution of the PNG preview")
	outFile := flag.String("o", "", "write the SVG to this `file` instead of standard output")
	verbose := flag.Bool("v", false, "log details to standard error")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "contrast":
			cfg.hasContrast = true
		case "seed":
			cfg.hasSeed = true
		}
	})

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] input.png\n", os.Args[0])
		flag.PrintDefaults()
		os.Exit(1)
	}
	inputFile := flag.Arg(0)
	if cfg.title == "" {
		base := filepath.Base(inputFile)
		cfg.title = strings.TrimSuffix(base, filepath.Ext(base))
	}

	if *verbose {
		logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
		halftone.SetLogger(logger)
	}

	err := run(inputFile, *outFile, cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "halftone: %v\n", err)
		os.Exit(1)
	}
}

func run(inputFile, outFile string, cfg *config) error {
	if outFile == "" && term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("refusing to write SVG to a terminal, use -o or redirect the output")
	}

	img, err := loadImage(inputFile)
	if err != nil {
		return err
	}

	// All configuration errors are reported here, before any output file
	// is created.
	res, err := generate(img, cfg)
	if err != nil {
		return err
	}

	if outFile == "" {
		err = writeSVG(os.Stdout, res, cfg)
	} else {
		err = writeSVGFile(outFile, res, cfg)
	}
	if err != nil {
		return err
	}

	if cfg.pngFile != "" {
		err = writePreview(cfg.pngFile, res, cfg)
		if err != nil {
			return err
		}
	}
	return nil
}

// writeSVGFile writes the SVG to a new file.  The file is removed if
// writing fails.
func writeSVGFile(fname string, res *halftone.Result, cfg *config) error {
	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = writeSVG(fd, res, cfg)
	closeErr := fd.Close()
	if err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(fname)
		return err
	}
	return nil
}

func loadImage(fname string) (image.Image, error) {
	fd, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	img, format, err := image.Decode(fd)
	if err != nil {
		return nil, fmt.Errorf("decoding %q: %w", fname, err)
	}
	b := img.Bounds()
	halftone.Logger().Debug("image loaded",
		"file", fname,
		"format", format,
		"size", [2]int{b.Dx(), b.Dy()})
	return img, nil
}

// generate validates the configuration and computes the halftone samples.
func generate(img image.Image, cfg *config) (*halftone.Result, error) {
	shape, grid, err := halftone.ShapeAndGrid(cfg.shape, cfg.grid)
	if err != nil {
		return nil, err
	}

	var contrast float64
	if cfg.hasContrast {
		contrast = cfg.contrast
	}
	src := sample.FromImageAdjusted(img, cfg.invert, contrast)

	opt := &halftone.Options{
		OutputWidth: cfg.width,
		Spacing:     cfg.spacing,
		Shape:       shape,
		Grid:        grid,
		MultiSample: cfg.multiSample,
	}
	if cfg.hasSeed {
		opt.Rand = rand.New(rand.NewPCG(cfg.seed, cfg.seed))
	}

	res, err := halftone.Generate(src, opt)
	if err != nil {
		return nil, err
	}
	logStats(res)
	return res, nil
}

func writeSVG(w io.Writer, res *halftone.Result, cfg *config) error {
	svgOpt := &svg.Options{Palette: paletteFor(cfg)}
	if !cfg.noMetadata {
		svgOpt.Metadata = svg.NewMetadata(res, cfg.title, time.Now())
	}
	err := svg.Write(w, res, svgOpt)
	if err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	return nil
}

func paletteFor(cfg *config) svg.Palette {
	switch {
	case cfg.cutPaths:
		return svg.CutPaths
	case cfg.invert:
		return svg.DarkOnLight
	default:
		return svg.LightOnDark
	}
}

func logStats(res *halftone.Result) {
	log := halftone.Logger()
	if !log.Enabled(context.Background(), slog.LevelDebug) {
		return
	}

	centers := make([]vec.Vec2, len(res.Samples))
	for i, s := range res.Samples {
		centers[i] = s.Center
	}
	st := layout.Measure(centers, res.Width(), res.Height())
	log.Debug("layout statistics",
		"count", st.Count,
		"density", st.Density,
		"min", st.MinDistance,
		"mean", st.MeanDistance,
		"stddev", st.StdDevDistance)
}

func writePreview(fname string, res *halftone.Result, cfg *config) error {
	img := raster.Render(res, &raster.Options{
		DPI:     cfg.dpi,
		Palette: paletteFor(cfg),
	})

	fd, err := os.Create(fname)
	if err != nil {
		return err
	}
	err = png.Encode(fd, img)
	if err != nil {
		fd.Close()
		return fmt.Errorf("encoding PNG: %w", err)
	}
	return fd.Close()
}
