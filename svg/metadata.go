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
	"fmt"
	"time"

	"golang.org/x/text/language"
	"seehuhn.de/go/xmp"

	"seehuhn.de/go/halftone"
)

// Producer is recorded in the metadata of generated files.
const Producer = "seehuhn.de/go/halftone"

// Halftone is the XMP namespace for the halftone settings.
type Halftone struct {
	_        xmp.Namespace `xmp:"http://seehuhn.de/ns/halftone/1.0/"`
	_        xmp.Prefix    `xmp:"halftone"`
	Shape    xmp.Text
	Grid     xmp.Text
	Spacing  xmp.Text
	Samples  xmp.Text
	Producer xmp.AgentName
}

// NewMetadata returns an XMP packet describing res.
// The title is omitted if it is empty.
func NewMetadata(res *halftone.Result, title string, now time.Time) *xmp.Packet {
	dc := &xmp.DublinCore{}
	if title != "" {
		dc.Title.Set(language.MustParse("x-default"), title)
	}
	dc.Description.Set(language.MustParse("x-default"),
		fmt.Sprintf("%s halftone on a %s grid, %d samples",
			res.Shape, res.Grid, len(res.Samples)))

	basic := &xmp.Basic{}
	basic.CreateDate = xmp.NewDate(now)
	basic.ModifyDate = xmp.NewDate(now)

	info := &Halftone{}
	info.Shape = xmp.NewText(res.Shape.String())
	info.Grid = xmp.NewText(res.Grid.String())
	info.Spacing = xmp.NewText(formatNumber(res.Spacing))
	info.Samples = xmp.NewText(fmt.Sprint(len(res.Samples)))
	info.Producer = xmp.NewAgentName(Producer)

	packet := xmp.NewPacket()
	packet.Set(dc, basic, info)
	return packet
}
