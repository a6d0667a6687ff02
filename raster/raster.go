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

// Package raster renders halftone samples into a greyscale image, for
// previewing the output without an SVG viewer.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/halftone"
	"seehuhn.de/go/halftone/svg"
)

// DefaultDPI is used when Options.DPI is not set.
const DefaultDPI = 150

const mmPerInch = 25.4

// Options controls the rendering.
type Options struct {
	// DPI is the image resolution.  Output units are taken to be
	// millimetres.
	DPI float64

	// Palette selects the colours.  Cut paths are previewed as
	// dark shapes on a light background.
	Palette svg.Palette
}

// Render rasterises the samples of res.
// If opt is nil, the default options are used.
func Render(res *halftone.Result, opt *Options) *image.Gray {
	dpi := float64(DefaultDPI)
	palette := svg.LightOnDark
	if opt != nil {
		if opt.DPI > 0 {
			dpi = opt.DPI
		}
		palette = opt.Palette
	}

	scale := dpi / mmPerInch
	ctm := matrix.Translate(-res.Bounds.LLx, -res.Bounds.LLy).
		Mul(matrix.Matrix{scale, 0, 0, scale, 0, 0})

	width := max(1, int(math.Ceil(res.Width()*scale)))
	height := max(1, int(math.Ceil(res.Height()*scale)))

	bg, fg := color.Gray{Y: 0}, color.Gray{Y: 255}
	if palette != svg.LightOnDark {
		bg, fg = fg, bg
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	if len(res.Samples) == 0 {
		return img
	}

	r := &renderer{
		raster: vector.NewRasterizer(width, height),
		ctm:    ctm,
	}
	for _, s := range res.Samples {
		r.addSample(s)
	}
	r.raster.Draw(img, img.Bounds(), image.NewUniform(fg), image.Point{})

	return img
}

// renderer accumulates sample outlines in device coordinates.
type renderer struct {
	raster *vector.Rasterizer
	ctm    matrix.Matrix
}

func (r *renderer) device(x, y float64) (float32, float32) {
	m := r.ctm
	return float32(m[0]*x + m[2]*y + m[4]), float32(m[1]*x + m[3]*y + m[5])
}

func (r *renderer) addSample(s halftone.Sample) {
	if s.Shape == halftone.Circle {
		r.circle(s.Center.X, s.Center.Y, s.Radius)
		return
	}

	corners := s.Corners()
	for i, p := range corners {
		x, y := r.device(p.X, p.Y)
		if i == 0 {
			r.raster.MoveTo(x, y)
		} else {
			r.raster.LineTo(x, y)
		}
	}
	r.raster.ClosePath()
}

// circle appends a full circle, approximated by four cubic Bézier arcs.
func (r *renderer) circle(cx, cy, radius float64) {
	const nSegment = 4
	dPhi := 2 * math.Pi / nSegment
	k := 4.0 / 3.0 * radius * math.Tan(dPhi/4)

	phi := 0.0
	x0 := cx + radius
	y0 := cy
	r.raster.MoveTo(r.device(x0, y0))
	for range nSegment {
		x1 := x0 - k*math.Sin(phi)
		y1 := y0 + k*math.Cos(phi)
		phi += dPhi
		x3 := cx + radius*math.Cos(phi)
		y3 := cy + radius*math.Sin(phi)
		x2 := x3 + k*math.Sin(phi)
		y2 := y3 - k*math.Cos(phi)

		dx1, dy1 := r.device(x1, y1)
		dx2, dy2 := r.device(x2, y2)
		dx3, dy3 := r.device(x3, y3)
		r.raster.CubeTo(dx1, dy1, dx2, dy2, dx3, dy3)
		x0, y0 = x3, y3
	}
	r.raster.ClosePath()
}
