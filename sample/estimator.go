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

package sample

import "seehuhn.de/go/geom/vec"

// Estimator maps points in output space to image intensities.
type Estimator struct {
	Source Source

	// Ratio is the number of output units per image pixel.
	Ratio float64

	// MultiSample selects the five-point estimate, which averages the
	// intensity at the point and at four points around it.  This reduces
	// aliasing when samples are far apart compared to the pixel size.
	MultiSample bool
}

// Estimate returns the intensity of the image near p, as a value between
// 0 and 1.  The radius gives the distance of the outer sampling points from
// p, if multi-sampling is enabled.
func (e *Estimator) Estimate(p vec.Vec2, radius float64) float64 {
	if !e.MultiSample {
		return e.Point(p)
	}

	taps := [...]vec.Vec2{
		p,
		{X: p.X + radius, Y: p.Y},
		{X: p.X - radius, Y: p.Y},
		{X: p.X, Y: p.Y + radius},
		{X: p.X, Y: p.Y - radius},
	}
	sum := 0.0
	for _, q := range taps {
		sum += e.Point(q)
	}
	return sum / float64(len(taps))
}

// Point returns the "effective luminosity" luma×alpha of the pixel
// containing p, as a value between 0 and 1.  Points outside the image use
// the nearest edge pixel.
func (e *Estimator) Point(p vec.Vec2) float64 {
	x := clampIndex(p.X/e.Ratio, e.Source.Width()-1)
	y := clampIndex(p.Y/e.Ratio, e.Source.Height()-1)
	l, a := e.Source.PixelAt(x, y)
	return (float64(l) / 255) * (float64(a) / 255)
}

// clampIndex converts a pixel coordinate to an index in [0, limit].
func clampIndex(n float64, limit int) int {
	switch {
	case !(n >= 0): // includes NaN
		return 0
	case n > float64(limit):
		return limit
	default:
		return int(n)
	}
}
