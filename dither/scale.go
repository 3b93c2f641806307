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

import "math"

// CoverFit returns the scaling factor and centring offsets that map a frame
// of the given native dimensions onto an output surface such that the scaled
// frame covers the surface entirely. The frame may overflow the surface on
// one axis; the overflow is split equally between the two sides, so the
// offset on that axis is negative.
//
// CoverFit is used by the live render path and must be used by anything that
// needs to reproduce the same crop, so that a captured image matches what
// was on screen.
//
// Dimensions that are zero or negative return the identity mapping.
func CoverFit(nativeW, nativeH, outW, outH int) (scale, offsetX, offsetY float64) {
	if nativeW <= 0 || nativeH <= 0 || outW <= 0 || outH <= 0 {
		return 1, 0, 0
	}

	scale = math.Max(float64(outW)/float64(nativeW), float64(outH)/float64(nativeH))
	offsetX = (float64(outW) - float64(nativeW)*scale) / 2
	offsetY = (float64(outH) - float64(nativeH)*scale) / 2

	return scale, offsetX, offsetY
}
