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

// Matrix is a 4x4 Bayer threshold matrix. Each entry is a unique rank in the
// range 0 to 15. The matrix is immutable for the lifetime of the process.
type Matrix [4][4]int

// Bayer4x4 is the standard 4x4 ordered-dither matrix.
var Bayer4x4 = Matrix{
	{0, 8, 2, 10},
	{12, 4, 14, 6},
	{3, 11, 1, 9},
	{15, 7, 13, 5},
}

// Bias returns the threshold bias for the pixel at raster coordinates (x,y).
// The returned value is in the range [-0.5, 0.4375].
//
// The matrix tiles the raster every four pixels on both axes. Indexing is by
// pixel coordinate, not cell index, so the tiling stays aligned with the
// raster whatever the cell size.
//
// Coordinates outside the raster (negative values) return the neutral bias
// of zero.
func (m Matrix) Bias(x, y int) float64 {
	if x < 0 || y < 0 {
		return 0
	}
	return float64(m[y%4][x%4])/16.0 - 0.5
}
