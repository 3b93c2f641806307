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

package sdlcam

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/andreaperaltro/dithercam/curated"
	"github.com/andreaperaltro/dithercam/logger"
	"github.com/andreaperaltro/dithercam/resources/unique"
)

// capture saves the current contents of the pixel array. The saved image is
// exactly what was most recently presented, with its dither pattern intact;
// the frame is not rendered again for the file.
func (scr *SdlCam) capture() error {
	if scr.pixels == nil {
		return curated.Errorf("screenshot: %v", fmt.Errorf("nothing to capture"))
	}

	// copy the pixel array before leaving the main thread. the render loop
	// will be writing the next frame into it
	rgba := image.NewRGBA(image.Rect(0, 0, scr.width, scr.height))
	copy(rgba.Pix, scr.pixels)

	path := fmt.Sprintf("%s.png", unique.Filename("dithercam"))

	// encoding takes long enough to drop frames so it happens off-thread.
	// completion is reported through the log
	go savePNG(rgba, path)

	return nil
}

// savePNG writes the image to the specified path.
func savePNG(rgba *image.RGBA, path string) {
	f, err := os.Create(path)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	err = png.Encode(f, rgba)
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		_ = f.Close()
		return
	}

	err = f.Close()
	if err != nil {
		logger.Logf(logger.Allow, "screenshot", "save failed: %v", err)
		return
	}

	// indicate success
	logger.Logf(logger.Allow, "screenshot", "saved: %s", path)
}
