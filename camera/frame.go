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

// number of bytes per sample in a Frame's Pix slice.
const PixelDepth = 4

// Frame is a single image from a FrameSource. Pix is in RGBA order, four
// bytes per sample, row-major from the top-left corner.
type Frame struct {
	Pix    []byte
	Width  int
	Height int
}

// NewFrame allocates a Frame of the specified dimensions. The alpha channel
// is preset to opaque; the remaining channels are black.
func NewFrame(width, height int) *Frame {
	frame := &Frame{
		Pix:    make([]byte, width*height*PixelDepth),
		Width:  width,
		Height: height,
	}
	for i := PixelDepth - 1; i < len(frame.Pix); i += PixelDepth {
		frame.Pix[i] = 255
	}
	return frame
}
