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

package userinput

import "math"

// GestureThreshold maps a horizontal pointer position within the surface to
// a threshold value. The left edge maps to MinThreshold and the right edge
// to MaxThreshold, linearly.
func GestureThreshold(x int, width int) float64 {
	if width <= 0 {
		return DefaultThreshold
	}

	t := (float64(x)/float64(width))*2 - 1
	if t < MinThreshold {
		t = MinThreshold
	}
	if t > MaxThreshold {
		t = MaxThreshold
	}

	return t
}

// GestureCellSize maps a vertical pointer position within the surface to a
// cell size. The top edge maps to MaxCellSize and the bottom edge to
// MinCellSize. The mapping is quantized with floor() so that each cell size
// occupies an equal band of the surface.
func GestureCellSize(y int, height int) int {
	if height <= 0 {
		return DefaultCellSize
	}

	c := int(math.Floor(float64(height-y)/float64(height)*14)) + MinCellSize
	if c < MinCellSize {
		c = MinCellSize
	}
	if c > MaxCellSize {
		c = MaxCellSize
	}

	return c
}
