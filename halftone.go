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

// Package halftone converts raster images into halftone patterns.
//
// A halftone pattern is a set of shapes (circles, hexagons or diamonds)
// whose size encodes the local intensity of the image.  The shapes are
// placed on a regular grid or on a Poisson-disk sample, see the
// [seehuhn.de/go/halftone/layout] package.  Intensities are measured using
// the [seehuhn.de/go/halftone/sample] package.
//
// The result of [Generate] is a list of [Sample] values in output
// coordinates, which can be written as SVG using the
// [seehuhn.de/go/halftone/svg] package, or previewed as a raster image
// using [seehuhn.de/go/halftone/raster].
package halftone

import (
	"fmt"
	"math"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/halftone/layout"
	"seehuhn.de/go/halftone/sample"
)

const (
	// MaxRadiusFraction is the radius of a full-intensity sample, relative
	// to the spacing.  Values below 0.5 leave a gap between neighbouring
	// shapes.
	MaxRadiusFraction = 0.45

	// MinRadius is the smallest radius of an emitted sample, in output
	// units.  Smaller samples would not be visible in print.
	MinRadius = 0.08

	// MaxSamples bounds the number of grid points for one conversion.
	// [Generate] rejects spacings which are too small for the output size.
	MaxSamples = 1 << 24
)

// Sample is a single halftone mark.
type Sample struct {
	Shape  Shape
	Center vec.Vec2
	Radius float64
}

// Result is the outcome of a halftone conversion.
type Result struct {
	// Bounds is the output area, in the coordinate system of the layout:
	// the origin is the top-left corner and y increases downwards.
	Bounds rect.Rect

	Shape   Shape
	Grid    layout.Kind
	Spacing float64

	Samples []Sample
}

// Width returns the width of the output area.
func (r *Result) Width() float64 {
	return r.Bounds.URx - r.Bounds.LLx
}

// Height returns the height of the output area.
func (r *Result) Height() float64 {
	return r.Bounds.URy - r.Bounds.LLy
}

// Intensity estimates the image intensity near a point.
// This is implemented by [*sample.Estimator].
type Intensity interface {
	Estimate(p vec.Vec2, radius float64) float64
}

// FromPoints turns layout points into samples.
//
// The radius of each sample is the estimated intensity times
// spacing*[MaxRadiusFraction].  Samples with a radius smaller than
// [MinRadius] are dropped.  The order of the points is preserved.
func FromPoints(points []vec.Vec2, est Intensity, shape Shape, spacing float64) []Sample {
	maxRadius := spacing * MaxRadiusFraction

	var res []Sample
	for _, p := range points {
		radius := est.Estimate(p, maxRadius) * maxRadius
		if !visible(radius) {
			continue
		}
		res = append(res, Sample{
			Shape:  shape,
			Center: p,
			Radius: radius,
		})
	}
	return res
}

func visible(radius float64) bool {
	return radius >= MinRadius
}

// Generate converts an image into halftone samples.
//
// If opt is nil, [DefaultOptions] is used.  An error is returned only if
// the options or the image are unusable.  Settings which do not leave room
// for any sample give an empty result.
func Generate(src sample.Source, opt *Options) (*Result, error) {
	if opt == nil {
		opt = DefaultOptions()
	}
	if err := opt.check(); err != nil {
		return nil, err
	}
	w, h := src.Width(), src.Height()
	if w <= 0 || h <= 0 {
		return nil, &ConfigError{
			Field: "image",
			Value: [2]int{w, h},
			Err:   ErrEmptyImage,
		}
	}

	width := opt.OutputWidth
	height := width * float64(h) / float64(w)
	ratio := width / float64(w)

	// Diamond grids and the Poisson background grid both use about
	// 2*width*height/spacing² slots.
	n := 2 * (width/opt.Spacing + 1) * (height/opt.Spacing + 1)
	if !(n <= MaxSamples) {
		return nil, &ConfigError{
			Field: "spacing",
			Value: opt.Spacing,
			Err: fmt.Errorf("%w: output %gx%g needs about %.3g grid points, limit is %d",
				ErrSpacing, width, height, n, MaxSamples),
		}
	}

	log := Logger()
	log.Debug("halftone geometry",
		"image", [2]int{w, h},
		"output", [2]float64{width, height},
		"ratio", ratio,
		"grid", opt.Grid.String(),
		"shape", opt.Shape.String(),
		"spacing", opt.Spacing)

	points := layout.Points(opt.Grid, width, height, opt.Spacing, opt.Rand)
	est := &sample.Estimator{
		Source:      src,
		Ratio:       ratio,
		MultiSample: opt.MultiSample,
	}
	samples := FromPoints(points, est, opt.Shape, opt.Spacing)

	log.Debug("halftone samples",
		"points", len(points),
		"kept", len(samples),
		"dropped", len(points)-len(samples))

	return &Result{
		Bounds:  rect.Rect{URx: width, URy: height},
		Shape:   opt.Shape,
		Grid:    opt.Grid,
		Spacing: opt.Spacing,
		Samples: samples,
	}, nil
}

func (opt *Options) check() error {
	if !(opt.Spacing > 0) || math.IsInf(opt.Spacing, 0) {
		return &ConfigError{Field: "spacing", Value: opt.Spacing, Err: ErrSpacing}
	}
	if !(opt.OutputWidth > 0) || math.IsInf(opt.OutputWidth, 0) {
		return &ConfigError{Field: "output width", Value: opt.OutputWidth, Err: ErrWidth}
	}
	if opt.Shape < Circle || opt.Shape > Diamond {
		return &ConfigError{Field: "shape", Value: opt.Shape, Err: ErrShape}
	}
	if opt.Grid < layout.KindRect || opt.Grid > layout.KindPoisson {
		return &ConfigError{Field: "grid", Value: opt.Grid, Err: ErrGrid}
	}
	return nil
}
