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

import "seehuhn.de/go/geom/vec"

// Row spacing relative to the column spacing.
const (
	rectRatio    = 1.0
	hexRatio     = 0.866 // √3/2
	diamondRatio = 0.5
)

// Rect returns the centres of a rectangular grid with the given pitch,
// centred in the width×height output area.
func Rect(width, height, spacing float64) []vec.Vec2 {
	return grid(width, height, spacing, rectRatio, false)
}

// Hex returns the centres of a hexagonal grid.  Spacing is the distance
// between neighbouring points in a row.
func Hex(width, height, spacing float64) []vec.Vec2 {
	return grid(width, height, spacing, hexRatio, true)
}

// Diamond returns the centres of a diamond grid.  Spacing is the distance
// between neighbouring points in a row.
func Diamond(width, height, spacing float64) []vec.Vec2 {
	return grid(width, height, spacing, diamondRatio, true)
}

// grid enumerates the cells of a regular tiling, column by column.
//
// For offset grids, odd rows are shifted right by half a cell and lose
// their last column, so that no point overhangs the right margin.
func grid(width, height, spacing, spacingRatio float64, offset bool) []vec.Vec2 {
	spacingX := spacing
	spacingY := spacingX * spacingRatio

	xCount := int(width / spacingX)
	xRemainder := width - float64(xCount)*spacingX
	yCount := int(height / spacingY)
	yRemainder := height - float64(yCount)*spacingY

	// Balance the vertical margins, so that the outermost rows are not
	// crowded against the edge.
	if spacingY/2+yRemainder/2 < spacing/2 {
		yCount--
		yRemainder += spacingY
	}

	if xCount <= 0 || yCount <= 0 {
		return nil
	}

	res := make([]vec.Vec2, 0, xCount*yCount)
	for x := 1; x <= xCount; x++ {
		for y := 1; y <= yCount; y++ {
			oddRow := y%2 != 0
			if offset && oddRow && x == xCount {
				continue
			}

			px := float64(x)*spacingX - spacingX/2 + xRemainder/2
			if offset && oddRow {
				px += spacingX / 2
			}
			py := float64(y)*spacingY - spacingY/2 + yRemainder/2
			res = append(res, vec.Vec2{X: px, Y: py})
		}
	}
	return res
}
