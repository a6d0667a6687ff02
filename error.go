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
	"errors"
	"fmt"
)

var (
	ErrSpacing    = errors.New("spacing must be a positive, finite number")
	ErrWidth      = errors.New("output width must be a positive, finite number")
	ErrEmptyImage = errors.New("image has no pixels")
	ErrShape      = errors.New("unknown shape")
	ErrGrid       = errors.New("unknown grid")
)

// ConfigError indicates that an [Options] value cannot be used.
type ConfigError struct {
	Field string
	Value any
	Err   error
}

func (err *ConfigError) Error() string {
	msg := "invalid " + err.Field
	if err.Value != nil {
		msg += fmt.Sprintf(" %v", err.Value)
	}
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg
}

func (err *ConfigError) Unwrap() error {
	return err.Err
}
