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

import (
	"image"
	"image/draw"
	"os"

	"github.com/andreaperaltro/dithercam/curated"

	"github.com/nfnt/resize"

	// image file formats supported by the ImageLoop source
	_ "image/jpeg"
	_ "image/png"
)

// The maximum long-edge of a frame served by ImageLoop. Files larger than
// this are downsampled on load, keeping the per-frame sampling cost in line
// with a typical capture device.
const MaxImageDimension = 1280

// ImageLoop serves a single decoded image file as though it were a live
// source. Every call to CurrentFrame() returns the same frame.
type ImageLoop struct {
	path    string
	frame   *Frame
	started bool
}

// NewImageLoop is the preferred method of initialisation for the ImageLoop
// type. The file is not touched until Start() is called.
func NewImageLoop(path string) *ImageLoop {
	return &ImageLoop{
		path: path,
	}
}

// Start implements the FrameSource interface. Decoding or file access
// failures are reported with the DeviceUnavailable pattern.
func (img *ImageLoop) Start() error {
	if img.started {
		return nil
	}

	f, err := os.Open(img.path)
	if err != nil {
		return curated.Errorf(DeviceUnavailable, err)
	}
	defer f.Close()

	m, _, err := image.Decode(f)
	if err != nil {
		return curated.Errorf(DeviceUnavailable, err)
	}

	b := m.Bounds()
	if b.Dx() > MaxImageDimension || b.Dy() > MaxImageDimension {
		m = resize.Thumbnail(MaxImageDimension, MaxImageDimension, m, resize.Bilinear)
		b = m.Bounds()
	}

	// normalise to the RGBA layout expected by the Frame type
	rgba := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(rgba, rgba.Bounds(), m, b.Min, draw.Src)

	img.frame = &Frame{
		Pix:    rgba.Pix,
		Width:  b.Dx(),
		Height: b.Dy(),
	}
	img.started = true

	return nil
}

// Stop implements the FrameSource interface.
func (img *ImageLoop) Stop() {
	img.started = false
	img.frame = nil
}

// NativeDimensions implements the FrameSource interface.
func (img *ImageLoop) NativeDimensions() (int, int, bool) {
	if !img.started {
		return 0, 0, false
	}
	return img.frame.Width, img.frame.Height, true
}

// CurrentFrame implements the FrameSource interface.
func (img *ImageLoop) CurrentFrame() *Frame {
	if !img.started {
		return nil
	}
	return img.frame
}
