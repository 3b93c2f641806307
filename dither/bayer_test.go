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

package dither_test

import (
	"testing"

	"github.com/andreaperaltro/dithercam/dither"
	"github.com/andreaperaltro/dithercam/test"
)

func TestBayerRanks(t *testing.T) {
	// every rank from 0 to 15 appears exactly once
	var seen [16]bool
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			r := dither.Bayer4x4[y][x]
			test.ExpectSuccess(t, r >= 0 && r <= 15)
			test.ExpectFailure(t, seen[r])
			seen[r] = true
		}
	}
}

func TestBias(t *testing.T) {
	// the bias range over one tile
	test.ExpectEquality(t, dither.Bayer4x4.Bias(0, 0), -0.5)
	test.ExpectEquality(t, dither.Bayer4x4.Bias(0, 3), 15.0/16.0-0.5)

	// the matrix tiles every four pixels on both axes
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			test.ExpectEquality(t, dither.Bayer4x4.Bias(x, y), dither.Bayer4x4.Bias(x+4, y))
			test.ExpectEquality(t, dither.Bayer4x4.Bias(x, y), dither.Bayer4x4.Bias(x, y+8))
			test.ExpectEquality(t, dither.Bayer4x4.Bias(x, y), dither.Bayer4x4.Bias(x+12, y+4))
		}
	}

	// coordinates outside the raster return the neutral bias
	test.ExpectEquality(t, dither.Bayer4x4.Bias(-1, 0), 0.0)
	test.ExpectEquality(t, dither.Bayer4x4.Bias(0, -1), 0.0)
}
