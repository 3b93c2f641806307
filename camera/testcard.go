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

package camera

// TestCard is a synthetic FrameSource. Each frame is a diagonal luminance
// ramp overlaid with a vertical bar, both drifting one pixel per frame so
// that the dithered output visibly animates.
//
// The frame buffer is reused between calls to CurrentFrame(), in keeping
// with the borrowed-frame contract of the FrameSource interface.
type TestCard struct {
	width  int
	height int

	frame   *Frame
	started bool

	// phase advances every frame and offsets the pattern
	phase int
}

// NewTestCard is the preferred method of initialisation for the TestCard
// type.
func NewTestCard(width, height int) *TestCard {
	return &TestCard{
		width:  width,
		height: height,
	}
}

// Start implements the FrameSource interface. A TestCard never fails to
// start.
func (tc *TestCard) Start() error {
	if tc.started {
		return nil
	}
	tc.frame = NewFrame(tc.width, tc.height)
	tc.started = true
	return nil
}

// Stop implements the FrameSource interface.
func (tc *TestCard) Stop() {
	tc.started = false
}

// NativeDimensions implements the FrameSource interface.
func (tc *TestCard) NativeDimensions() (int, int, bool) {
	if !tc.started {
		return 0, 0, false
	}
	return tc.width, tc.height, true
}

// CurrentFrame implements the FrameSource interface.
func (tc *TestCard) CurrentFrame() *Frame {
	if !tc.started {
		return nil
	}

	tc.phase++

	barLeft := (tc.phase * 2) % tc.width
	barRight := (barLeft + tc.width/8) % tc.width

	for y := 0; y < tc.height; y++ {
		for x := 0; x < tc.width; x++ {
			// diagonal ramp, wrapping every 256 pixels
			v := byte((x + y + tc.phase) % 256)

			// white bar sweeping left to right
			if barLeft < barRight {
				if x >= barLeft && x < barRight {
					v = 255
				}
			} else if x >= barLeft || x < barRight {
				v = 255
			}

			i := (y*tc.width + x) * PixelDepth
			tc.frame.Pix[i] = v
			tc.frame.Pix[i+1] = v
			tc.frame.Pix[i+2] = v
		}
	}

	return tc.frame
}
