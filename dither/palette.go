// This file is part of Dithercam.
//
// Dithercam is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Dithercam is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Dithercam.  If not, see <https://www.gnu.org/licenses/>.

package dither

import (
	"image/color"

	"github.com/andreaperaltro/dithercam/curated"

	"github.com/lucasb-eyer/go-colorful"
)

// Error patterns for the dither package.
const (
	InvalidColor = "palette: %v"
)

// Default palette colours in the hex format accepted by ParsePalette().
const (
	DefaultLight = "#ffffff"
	DefaultDark  = "#2233dd"
)

// Palette is the pair of colours used for the two-tone output. Every pixel
// the Engine produces is exactly one of these two colours.
type Palette struct {
	Light color.RGBA
	Dark  color.RGBA
}

// DefaultPalette is white on blue.
var DefaultPalette = Palette{
	Light: color.RGBA{R: 255, G: 255, B: 255, A: 255},
	Dark:  color.RGBA{R: 34, G: 51, B: 221, A: 255},
}

// ParsePalette creates a Palette from the hex representation of the two
// colours, eg. "#ffffff". The shortened three digit form is not accepted.
func ParsePalette(light string, dark string) (Palette, error) {
	l, err := colorful.Hex(light)
	if err != nil {
		return Palette{}, curated.Errorf(InvalidColor, err)
	}

	d, err := colorful.Hex(dark)
	if err != nil {
		return Palette{}, curated.Errorf(InvalidColor, err)
	}

	lr, lg, lb := l.RGB255()
	dr, dg, db := d.RGB255()

	return Palette{
		Light: color.RGBA{R: lr, G: lg, B: lb, A: 255},
		Dark:  color.RGBA{R: dr, G: dg, B: db, A: 255},
	}, nil
}
