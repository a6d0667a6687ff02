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

package layout

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"
	"gonum.org/v1/gonum/stat"
	"seehuhn.de/go/geom/vec"
)

// Stats summarises a point distribution.
type Stats struct {
	Count int

	// Density is the number of points per square output unit.
	Density float64

	// MinDistance, MeanDistance and StdDevDistance describe the distances
	// from each point to its nearest neighbour.  They are NaN if there are
	// fewer than two points.
	MinDistance    float64
	MeanDistance   float64
	StdDevDistance float64
}

// Measure computes statistics for the points of a layout covering a
// width×height area.
func Measure(points []vec.Vec2, width, height float64) Stats {
	s := Stats{
		Count:          len(points),
		MinDistance:    math.NaN(),
		MeanDistance:   math.NaN(),
		StdDevDistance: math.NaN(),
	}
	if area := width * height; area > 0 {
		s.Density = float64(len(points)) / area
	}
	if len(points) < 2 {
		return s
	}

	nearest := nearestDistances(points)
	s.MinDistance = math.Inf(1)
	for _, d := range nearest {
		s.MinDistance = min(s.MinDistance, d)
	}
	s.MeanDistance, s.StdDevDistance = stat.MeanStdDev(nearest, nil)
	return s
}

// nearestDistances returns, for every point, the distance to the closest
// other point.  At least two points are required.
func nearestDistances(points []vec.Vec2) []float64 {
	pts := make(kdtree.Points, len(points))
	for i, p := range points {
		pts[i] = kdtree.Point{p.X, p.Y}
	}
	// kdtree.New reorders its argument
	tree := kdtree.New(append(kdtree.Points(nil), pts...), false)

	res := make([]float64, len(pts))
	for i, q := range pts {
		// The closest match is q itself, at distance 0.
		keep := kdtree.NewNKeeper(2)
		tree.NearestSet(keep, q)

		best := 0.0
		for _, c := range keep.Heap {
			if c.Comparable == nil || math.IsInf(c.Dist, 1) {
				continue
			}
			best = max(best, c.Dist)
		}
		res[i] = math.Sqrt(best) // Point.Distance is squared
	}
	return res
}
