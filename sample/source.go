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

// Package sample measures image intensity at points of the output area.
//
// Images are accessed through the [Source] interface.  [LumaAlpha] is an
// implementation which holds a luminance/alpha copy of an [image.Image],
// and which supports the pre-processing steps of the halftone pipeline
// (inversion and contrast adjustment).
package sample

import (
	"image"
	"image/color"
	"math"
)

// Source gives access to the pixels of an image.
//
// PixelAt is only called with 0 <= x < Width() and 0 <= y < Height().
type Source interface {
	Width() int
	Height() int
	PixelAt(x, y int) (luma, alpha uint8)
}

// LumaAlpha is an in-memory image with one luminance and one alpha channel.
type LumaAlpha struct {
	// Pix holds the pixel values.  The luminance of the pixel at (x, y)
	// is Pix[y*Stride+2*x], the alpha value is Pix[y*Stride+2*x+1].
	Pix    []uint8
	Stride int

	W, H int
}

// NewLumaAlpha allocates a new, fully transparent black image.
func NewLumaAlpha(width, height int) *LumaAlpha {
	return &LumaAlpha{
		Pix:    make([]uint8, 2*width*height),
		Stride: 2 * width,
		W:      width,
		H:      height,
	}
}

// FromImage converts img to luminance and alpha values.
// The luminance uses the Rec. 709 weights on the non-premultiplied colour.
func FromImage(img image.Image) *LumaAlpha {
	b := img.Bounds()
	res := NewLumaAlpha(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			res.Set(x-b.Min.X, y-b.Min.Y, luma(c.R, c.G, c.B), c.A)
		}
	}
	return res
}

// FromImageAdjusted is like [FromImage], but first corrects the colour
// channels of img.  If invert is set, every channel value v is replaced by
// 255-v.  Then the contrast is changed by c percent, as in
// [LumaAlpha.AdjustContrast].  Both corrections act on the red, green and
// blue channels separately, before the luminance is computed.
func FromImageAdjusted(img image.Image, invert bool, c float64) *LumaAlpha {
	lut := contrastTable(c)
	if invert {
		var inv [256]uint8
		for i := range inv {
			inv[i] = lut[255-i]
		}
		lut = inv
	}

	b := img.Bounds()
	res := NewLumaAlpha(b.Dx(), b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			px := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			l := luma(lut[px.R], lut[px.G], lut[px.B])
			res.Set(x-b.Min.X, y-b.Min.Y, l, px.A)
		}
	}
	return res
}

func luma(r, g, b uint8) uint8 {
	l := 0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)
	return uint8(min(math.Round(l), 255))
}

// Width implements the [Source] interface.
func (m *LumaAlpha) Width() int {
	return m.W
}

// Height implements the [Source] interface.
func (m *LumaAlpha) Height() int {
	return m.H
}

// PixelAt implements the [Source] interface.
func (m *LumaAlpha) PixelAt(x, y int) (luma, alpha uint8) {
	i := y*m.Stride + 2*x
	return m.Pix[i], m.Pix[i+1]
}

// Set changes the pixel at (x, y).
func (m *LumaAlpha) Set(x, y int, luma, alpha uint8) {
	i := y*m.Stride + 2*x
	m.Pix[i] = luma
	m.Pix[i+1] = alpha
}

// Invert replaces every luminance value l by 255-l.
// Alpha values are not changed.
func (m *LumaAlpha) Invert() {
	for y := range m.H {
		row := m.Pix[y*m.Stride : y*m.Stride+2*m.W]
		for i := 0; i < len(row); i += 2 {
			row[i] = 255 - row[i]
		}
	}
}

// AdjustContrast stretches (c > 0) or compresses (c < 0) the luminance
// values around mid-grey.  The value c is a percentage: luminance
// differences from mid-grey are scaled by ((100+c)/100)².
// Alpha values are not changed.
func (m *LumaAlpha) AdjustContrast(c float64) {
	lut := contrastTable(c)
	for y := range m.H {
		row := m.Pix[y*m.Stride : y*m.Stride+2*m.W]
		for i := 0; i < len(row); i += 2 {
			row[i] = lut[row[i]]
		}
	}
}

// contrastTable maps 8-bit values through the contrast curve for c percent.
func contrastTable(c float64) [256]uint8 {
	f := (100 + c) / 100
	f *= f

	var lut [256]uint8
	for i := range lut {
		v := (float64(i)/255-0.5)*f + 0.5
		lut[i] = uint8(math.Round(min(max(v, 0), 1) * 255))
	}
	return lut
}
