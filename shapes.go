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

package halftone

import (
	"math"

	"seehuhn.de/go/geom/vec"
)

// Corners returns the vertices of a polygonal sample.
//
// Hexagons have their corners on the circle of the given radius, at angles
// 30°, 90°, ..., 330° (pointy top in a y-down coordinate system).  Diamonds
// are listed top, right, bottom, left.  For circles, nil is returned.
func (s Sample) Corners() []vec.Vec2 {
	c, r := s.Center, s.Radius
	switch s.Shape {
	case Hexagon:
		res := make([]vec.Vec2, 6)
		for i := range res {
			angle := float64(i+1)*math.Pi/3 - math.Pi/6
			res[i] = vec.Vec2{
				X: c.X + r*math.Cos(angle),
				Y: c.Y + r*math.Sin(angle),
			}
		}
		return res
	case Diamond:
		return []vec.Vec2{
			{X: c.X, Y: c.Y - r},
			{X: c.X + r, Y: c.Y},
			{X: c.X, Y: c.Y + r},
			{X: c.X - r, Y: c.Y},
		}
	default:
		return nil
	}
}
