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
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestPoissonMinDistance(t *testing.T) {
	type testCase struct {
		width, height, spacing float64
	}
	cases := []testCase{
		{100, 100, 3},
		{50, 20, 1},
		{7, 300, 2.5},
	}
	for seed := range uint64(5) {
		for _, c := range cases {
			rng := rand.New(rand.NewPCG(seed, 1))
			pts := Poisson(c.width, c.height, c.spacing, rng)
			if len(pts) < 2 {
				t.Fatalf("%v: only %d points", c, len(pts))
			}

			half := c.spacing / 2
			for i, p := range pts {
				if p.X < half || p.Y < half || p.X > c.width-half || p.Y > c.height-half {
					t.Errorf("%v: point %v outside the inset area", c, p)
				}
				for _, q := range pts[:i] {
					if d := p.Sub(q).Length(); d < c.spacing {
						t.Fatalf("%v: points %v and %v are %g apart", c, p, q, d)
					}
				}
			}
		}
	}
}

func TestPoissonDensity(t *testing.T) {
	const (
		width   = 200.0
		height  = 120.0
		spacing = 4.0
	)
	rng := rand.New(rand.NewPCG(42, 7))
	pts := Poisson(width, height, spacing, rng)

	s := Measure(pts, width, height)
	if s.MinDistance < spacing {
		t.Errorf("nearest neighbour distance %g < %g", s.MinDistance, spacing)
	}
	if s.MeanDistance > 2*spacing {
		t.Errorf("mean nearest neighbour distance %g, want at most %g", s.MeanDistance, 2*spacing)
	}

	// Normalised to the inset area, the density of a maximal sample lies
	// between random sequential packing and hexagonal packing.
	inset := (width - spacing) * (height - spacing)
	norm := float64(len(pts)) * spacing * spacing / inset
	if norm < 0.3 || norm > 2/math.Sqrt(3) {
		t.Errorf("normalised density %g out of range", norm)
	}
}

func TestPoissonUnseeded(t *testing.T) {
	pts := Points(KindPoisson, 30, 30, 2, nil)
	if len(pts) == 0 {
		t.Fatal("no points")
	}
	for i, p := range pts {
		for _, q := range pts[:i] {
			if p.Sub(q).Length() < 2 {
				t.Fatalf("points %v and %v too close", p, q)
			}
		}
	}
}

func TestPoissonTooSmall(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	for _, size := range []float64{0, 1, 9.99, 10} {
		if pts := Poisson(size, 100, 10, rng); len(pts) != 0 {
			t.Errorf("width %g: got %d points", size, len(pts))
		}
		if pts := Poisson(100, size, 10, rng); len(pts) != 0 {
			t.Errorf("height %g: got %d points", size, len(pts))
		}
	}
}

func TestNeighbourBoundary(t *testing.T) {
	const r = 1.0
	const eps = 1e-6

	g := newBackgroundGrid(10, 10, r)
	g.add(vec.Vec2{X: 5, Y: 5})
	g.add(vec.Vec2{X: 6, Y: 5})

	// points at exactly the minimum distance are allowed
	if g.hasNeighbour(vec.Vec2{X: 5, Y: 4}) {
		t.Error("point at distance r rejected")
	}
	if g.hasNeighbour(vec.Vec2{X: 7, Y: 5}) {
		t.Error("point at distance r rejected")
	}

	// near-equilateral triangles over the segment from (5,5) to (6,5)
	h := math.Sqrt(3) / 2
	outside := vec.Vec2{X: 5.5, Y: 5 + h*(1+eps)}
	if g.hasNeighbour(outside) {
		t.Errorf("%v rejected, but both neighbours are farther than r", outside)
	}
	inside := vec.Vec2{X: 5.5, Y: 5 + h*(1-eps)}
	if !g.hasNeighbour(inside) {
		t.Errorf("%v accepted, but both neighbours are closer than r", inside)
	}

	if !g.hasNeighbour(vec.Vec2{X: 5.5, Y: 5}) {
		t.Error("point between two samples accepted")
	}
}

func TestNeighbourGridEdges(t *testing.T) {
	g := newBackgroundGrid(4, 4, 1)
	g.add(vec.Vec2{X: 0.1, Y: 0.1})
	g.add(vec.Vec2{X: 3.9, Y: 3.9})

	if !g.hasNeighbour(vec.Vec2{X: 0.5, Y: 0.5}) {
		t.Error("missed neighbour in the first cell")
	}
	if !g.hasNeighbour(vec.Vec2{X: 3.5, Y: 3.5}) {
		t.Error("missed neighbour in the last cell")
	}
	if g.hasNeighbour(vec.Vec2{X: 2, Y: 2}) {
		t.Error("spurious neighbour")
	}
}

func TestCellIndex(t *testing.T) {
	type testCase struct {
		f    float64
		want int
	}
	cases := []testCase{
		{-1, 0},
		{math.NaN(), 0},
		{0, 0},
		{0.99, 0},
		{1, 1},
		{4.5, 4},
		{5, 4},
		{1e9, 4},
	}
	for _, c := range cases {
		if got := cellIndex(c.f, 1, 5); got != c.want {
			t.Errorf("cellIndex(%g): got %d, want %d", c.f, got, c.want)
		}
	}
}
