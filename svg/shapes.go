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

package svg

import (
	"strconv"
	"strings"

	"seehuhn.de/go/halftone"
)

func shapeElement(s halftone.Sample) *element {
	if s.Shape == halftone.Circle {
		return &element{
			name: "circle",
			attrs: []attr{
				{"cx", formatCoord(s.Center.X)},
				{"cy", formatCoord(s.Center.Y)},
				{"r", strconv.FormatFloat(s.Radius, 'f', 3, 64)},
			},
		}
	}

	corners := s.Corners()
	parts := make([]string, len(corners))
	for i, p := range corners {
		parts[i] = formatCoord(p.X) + "," + formatCoord(p.Y)
	}
	return &element{
		name:  "polygon",
		attrs: []attr{{"points", strings.Join(parts, " ")}},
	}
}
