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

// Package layout places halftone samples in the output area.
//
// Four distributions are supported:
//   - [Rect]: a rectangular grid
//   - [Hex]: a hexagonal grid, where every other row is shifted by half
//     the spacing
//   - [Diamond]: like Hex, but with rows half as far apart
//   - [Poisson]: Poisson-disk ("blue noise") sampling, where no two points
//     are closer than the spacing
//
// All coordinates are in output units, with the origin in the top-left
// corner of the output area and y increasing downwards.
package layout

import (
	"fmt"
	"math/rand/v2"

	"seehuhn.de/go/geom/vec"
)

// Kind selects one of the sample distributions.
type Kind int

// These are the supported distributions.
const (
	KindRect Kind = iota
	KindHex
	KindDiamond
	KindPoisson
)

func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindHex:
		return "hex"
	case KindDiamond:
		return "diamond"
	case KindPoisson:
		return "poisson"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Points returns the sample positions for the given distribution.
//
// The random number generator is only used for [KindPoisson].  If rng is
// nil, a randomly seeded generator is used.
func Points(kind Kind, width, height, spacing float64, rng *rand.Rand) []vec.Vec2 {
	switch kind {
	case KindRect:
		return Rect(width, height, spacing)
	case KindHex:
		return Hex(width, height, spacing)
	case KindDiamond:
		return Diamond(width, height, spacing)
	case KindPoisson:
		return Poisson(width, height, spacing, rng)
	default:
		panic("layout: unknown kind " + kind.String())
	}
}
