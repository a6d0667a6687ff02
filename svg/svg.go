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

// Package svg writes halftone samples as SVG documents.
//
// Output units are millimetres: the document is given a physical size
// and a view box in the coordinate system of the samples.
package svg

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/xmp"

	"seehuhn.de/go/halftone"
)

// Palette selects how the samples are painted.
type Palette int

const (
	// LightOnDark draws white shapes on a black background.
	LightOnDark Palette = iota

	// DarkOnLight draws black shapes on a white background.
	DarkOnLight

	// CutPaths draws hairline outlines without fill and without background,
	// for use with laser cutters and plotters.
	CutPaths
)

func (p Palette) String() string {
	switch p {
	case LightOnDark:
		return "light on dark"
	case DarkOnLight:
		return "dark on light"
	case CutPaths:
		return "cut paths"
	default:
		return fmt.Sprintf("Palette(%d)", int(p))
	}
}

// Options controls the SVG output.
type Options struct {
	Palette Palette

	// Metadata, if set, is embedded in a <metadata> element.
	Metadata *xmp.Packet
}

const xmlHeader = `<?xml version="1.0" encoding="UTF-8" standalone="no"?>`

// Write writes res as a standalone SVG document.
// If opt is nil, the default options are used.
func Write(w io.Writer, res *halftone.Result, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}

	width := formatNumber(res.Width())
	height := formatNumber(res.Height())
	root := &element{
		name: "svg",
		attrs: []attr{
			{"width", width + "mm"},
			{"height", height + "mm"},
			{"viewBox", "0 0 " + width + " " + height},
			{"xmlns", "http://www.w3.org/2000/svg"},
		},
	}
	if opt.Metadata != nil {
		root.children = append(root.children, &element{
			name: "metadata",
			raw:  opt.Metadata,
		})
	}

	shapes := make([]*element, len(res.Samples))
	for i, s := range res.Samples {
		shapes[i] = shapeElement(s)
	}
	root.children = append(root.children, paint(opt.Palette, shapes)...)

	out := bufio.NewWriter(w)
	out.WriteString(xmlHeader)
	if err := root.writeTo(out); err != nil {
		return err
	}
	out.WriteString("\n")
	return out.Flush()
}

// paint wraps the shapes in the group and background for the palette.
func paint(p Palette, shapes []*element) []*element {
	switch p {
	case CutPaths:
		return []*element{
			group(shapes,
				attr{"stroke-width", "0.002mm"},
				attr{"stroke", "black"},
				attr{"fill", "none"}),
		}
	case DarkOnLight:
		return []*element{
			background("white"),
			group(shapes, attr{"fill", "black"}),
		}
	default:
		return []*element{
			background("black"),
			group(shapes, attr{"fill", "white"}),
		}
	}
}

func background(fill string) *element {
	return &element{
		name: "rect",
		attrs: []attr{
			{"width", "100%"},
			{"height", "100%"},
			{"fill", fill},
		},
	}
}

func group(children []*element, attrs ...attr) *element {
	return &element{name: "g", attrs: attrs, children: children}
}

type attr struct {
	name, value string
}

// element is a node of the SVG document tree.
type element struct {
	name     string
	attrs    []attr
	children []*element

	// raw, if set, is an XMP packet which is written as the element content.
	raw *xmp.Packet
}

func (e *element) writeTo(w *bufio.Writer) error {
	w.WriteString("\n<")
	w.WriteString(e.name)
	for _, a := range e.attrs {
		w.WriteString(" ")
		w.WriteString(a.name)
		w.WriteString(`="`)
		w.WriteString(a.value)
		w.WriteString(`"`)
	}

	if len(e.children) == 0 && e.raw == nil {
		w.WriteString("/>")
		return nil
	}

	w.WriteString(">")
	if e.raw != nil {
		w.WriteString("\n")
		err := e.raw.Write(w, &xmp.PacketOptions{Pretty: true})
		if err != nil {
			return err
		}
	}
	for _, c := range e.children {
		if err := c.writeTo(w); err != nil {
			return err
		}
	}
	w.WriteString("</")
	w.WriteString(e.name)
	w.WriteString(">")
	return nil
}

func formatNumber(x float64) string {
	return strconv.FormatFloat(x, 'f', -1, 64)
}

func formatCoord(x float64) string {
	return strconv.FormatFloat(x, 'f', 4, 64)
}
