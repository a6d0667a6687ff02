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
	"fmt"
	"maps"
	"math/rand/v2"
	"slices"
	"strings"

	"seehuhn.de/go/halftone/layout"
)

// Shape is the kind of mark drawn for each sample.
type Shape int

// These are the supported shapes.
const (
	Circle Shape = iota
	Hexagon
	Diamond
)

func (s Shape) String() string {
	switch s {
	case Circle:
		return "circle"
	case Hexagon:
		return "hex"
	case Diamond:
		return "diamond"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

var shapeNames = map[string]Shape{
	"circle":  Circle,
	"hex":     Hexagon,
	"diamond": Diamond,
}

var gridNames = map[string]layout.Kind{
	"rect":    layout.KindRect,
	"hex":     layout.KindHex,
	"diamond": layout.KindDiamond,
	"poisson": layout.KindPoisson,
}

// ParseShape converts a shape name ("circle", "hex" or "diamond") to a
// [Shape].
func ParseShape(name string) (Shape, error) {
	s, ok := shapeNames[name]
	if !ok {
		return 0, &ConfigError{
			Field: "shape",
			Value: fmt.Sprintf("%q", name),
			Err:   fmt.Errorf("%w, valid shapes are %s", ErrShape, listNames(shapeNames)),
		}
	}
	return s, nil
}

// ParseGrid converts a grid name ("rect", "hex", "diamond" or "poisson")
// to a [layout.Kind].
func ParseGrid(name string) (layout.Kind, error) {
	g, ok := gridNames[name]
	if !ok {
		return 0, &ConfigError{
			Field: "grid",
			Value: fmt.Sprintf("%q", name),
			Err:   fmt.Errorf("%w, valid grids are %s", ErrGrid, listNames(gridNames)),
		}
	}
	return g, nil
}

func listNames[T any](m map[string]T) string {
	return strings.Join(slices.Sorted(maps.Keys(m)), ", ")
}

// ShapeAndGrid resolves a shape name and a grid name, either of which may
// be empty.  If only one is given, the other is chosen to match: hexagons
// go on a hex grid, diamonds on a diamond grid and circles on a
// rectangular grid (and vice versa, with circles for Poisson sampling).
// If both are empty, circles on a rectangular grid are used.
func ShapeAndGrid(shapeName, gridName string) (Shape, layout.Kind, error) {
	switch {
	case shapeName == "" && gridName == "":
		return Circle, layout.KindRect, nil
	case gridName == "":
		s, err := ParseShape(shapeName)
		if err != nil {
			return 0, 0, err
		}
		return s, gridForShape(s), nil
	case shapeName == "":
		g, err := ParseGrid(gridName)
		if err != nil {
			return 0, 0, err
		}
		return shapeForGrid(g), g, nil
	}

	s, err := ParseShape(shapeName)
	if err != nil {
		return 0, 0, err
	}
	g, err := ParseGrid(gridName)
	if err != nil {
		return 0, 0, err
	}
	return s, g, nil
}

func gridForShape(s Shape) layout.Kind {
	switch s {
	case Hexagon:
		return layout.KindHex
	case Diamond:
		return layout.KindDiamond
	default:
		return layout.KindRect
	}
}

func shapeForGrid(g layout.Kind) Shape {
	switch g {
	case layout.KindHex:
		return Hexagon
	case layout.KindDiamond:
		return Diamond
	default:
		return Circle
	}
}

// Options controls the conversion of an image into halftone samples.
type Options struct {
	// OutputWidth is the width of the output area, in output units
	// (millimetres for the SVG writer).  The height follows from the aspect
	// ratio of the image.
	OutputWidth float64

	// Spacing is the grid pitch, or the minimum distance between samples
	// for Poisson sampling.
	Spacing float64

	Shape Shape
	Grid  layout.Kind

	// MultiSample enables the five-point intensity estimate.
	MultiSample bool

	// Rand is the random number generator for Poisson sampling.
	// If this is nil, a randomly seeded generator is used.
	Rand *rand.Rand
}

// DefaultOptions returns the settings used by the command line tool when
// no flags are given.
func DefaultOptions() *Options {
	return &Options{
		OutputWidth: 100,
		Spacing:     2,
		Shape:       Circle,
		Grid:        layout.KindRect,
	}
}
