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
	"github.com/andreaperaltro/dithercam/curated"
	"github.com/andreaperaltro/dithercam/gui"
)

// SetFeature implements gui.GUI interface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlCam) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) (rerr error) {
	// lazy (but clear) handling of type assertion errors
	defer func() {
		if r := recover(); r != nil {
			rerr = curated.Errorf("sdl: SetFeature: %v", r)
		}
	}()

	var err error

	switch request {
	case gui.ReqSetVisibility:
		scr.showWindow(args[0].(bool))

	case gui.ReqFullScreen:
		err = scr.setFullScreen(args[0].(bool))

	case gui.ReqCapture:
		err = scr.capture()

	default:
		return curated.Errorf(gui.UnsupportedGuiFeature, request)
	}

	return err
}
