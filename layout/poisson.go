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
	"math/rand/v2"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// poissonCandidates is the number of children tried around an active
// sample before the sample is retired.
const poissonCandidates = 30

// Poisson returns a Poisson-disk sample of the width×height output area.
// No two points are closer than spacing, and no point is closer than
// spacing/2 to the edge of the area.
//
// The implementation follows R. Bridson, "Fast Poisson Disk Sampling in
// Arbitrary Dimensions", SIGGRAPH 2007.
//
// If rng is nil, a randomly seeded generator is used and the result differs
// between calls.
func Poisson(width, height, spacing float64, rng *rand.Rand) []vec.Vec2 {
	halfR := spacing / 2
	bounds := rect.Rect{
		LLx: halfR,
		LLy: halfR,
		URx: width - halfR,
		URy: height - halfR,
	}
	if !(bounds.LLx < bounds.URx && bounds.LLy < bounds.URy) {
		return nil
	}

	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	g := newBackgroundGrid(width, height, spacing)

	first := vec.Vec2{
		X: bounds.LLx + rng.Float64()*(bounds.URx-bounds.LLx),
		Y: bounds.LLy + rng.Float64()*(bounds.URy-bounds.LLy),
	}
	active := []int{g.add(first)}

	for len(active) > 0 {
		i := rng.IntN(len(active))
		parent := g.samples[active[i]]

		// Keep spawning from the same parent until it fails.
		for {
			child, ok := g.spawn(parent, bounds, rng)
			if !ok {
				break
			}
			active = append(active, g.add(child))
		}

		last := len(active) - 1
		active[i] = active[last]
		active = active[:last]
	}

	return g.samples
}

// noSample marks an empty cell of the background grid.
const noSample = -1

// backgroundGrid is the acceleration structure for Poisson-disk sampling.
// Cells are small enough that every cell holds at most one sample, so that
// only a fixed neighbourhood of cells needs to be searched for conflicts.
type backgroundGrid struct {
	minDist  float64
	cellSize float64
	cols     int
	rows     int
	cells    []int // index into samples, or noSample

	samples []vec.Vec2
}

func newBackgroundGrid(width, height, minDist float64) *backgroundGrid {
	cellSize := minDist / math.Sqrt2
	cols := max(int(math.Ceil(width/cellSize)), 1)
	rows := max(int(math.Ceil(height/cellSize)), 1)

	cells := make([]int, cols*rows)
	for i := range cells {
		cells[i] = noSample
	}
	return &backgroundGrid{
		minDist:  minDist,
		cellSize: cellSize,
		cols:     cols,
		rows:     rows,
		cells:    cells,
	}
}

// add registers a new sample and returns its index.
func (g *backgroundGrid) add(p vec.Vec2) int {
	idx := len(g.samples)
	g.samples = append(g.samples, p)
	i := cellIndex(p.X, g.cellSize, g.cols)
	j := cellIndex(p.Y, g.cellSize, g.rows)
	g.cells[j*g.cols+i] = idx
	return idx
}

// spawn tries to find a new sample at distance [minDist, 2*minDist) from
// parent.  The second return value is false if all candidates were
// rejected.
func (g *backgroundGrid) spawn(parent vec.Vec2, bounds rect.Rect, rng *rand.Rand) (vec.Vec2, bool) {
	r := g.minDist
	for range poissonCandidates {
		magnitude := r + rng.Float64()*r
		angle := -math.Pi + rng.Float64()*2*math.Pi
		c := vec.Vec2{
			X: parent.X + magnitude*math.Cos(angle),
			Y: parent.Y + magnitude*math.Sin(angle),
		}
		if c.X < bounds.LLx || c.Y < bounds.LLy || c.X > bounds.URx || c.Y > bounds.URy {
			continue
		}
		if !g.hasNeighbour(c) {
			return c, true
		}
	}
	return vec.Vec2{}, false
}

// hasNeighbour reports whether a registered sample is closer than minDist
// to p.  Samples at exactly minDist do not count.
func (g *backgroundGrid) hasNeighbour(p vec.Vec2) bool {
	r := g.minDist
	iMin := cellIndex(p.X-r, g.cellSize, g.cols)
	iMax := cellIndex(p.X+r, g.cellSize, g.cols)
	jMin := cellIndex(p.Y-r, g.cellSize, g.rows)
	jMax := cellIndex(p.Y+r, g.cellSize, g.rows)

	for j := jMin; j <= jMax; j++ {
		for i := iMin; i <= iMax; i++ {
			idx := g.cells[j*g.cols+i]
			if idx == noSample {
				continue
			}
			if g.samples[idx].Sub(p).Length() < r {
				return true
			}
		}
	}
	return false
}

// cellIndex maps a coordinate to a cell index in [0, n-1].
func cellIndex(f, cellSize float64, n int) int {
	if !(f >= 0) {
		return 0
	}
	i := int(f / cellSize)
	if i >= n {
		return n - 1
	}
	return i
}
