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
	"github.com/veandco/go-sdl2/sdl"

	"github.com/andreaperaltro/dithercam/gui"
	"github.com/andreaperaltro/dithercam/logger"
)

// Service implements render.Servicer. It drains the SDL event queue,
// translating events into gui events for the registered handler. Called
// once per render tick.
//
// MUST ONLY be called from the main thread.
func (scr *SdlCam) Service() {
	// do not check for events if no event handler has been set
	if scr.handler == nil {
		return
	}

	// loop until there are no more events to retrieve. servicing one event
	// per tick is not enough, queued events would take a tick or longer each
	// to resolve
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			scr.forward(gui.EventQuit{})

		case *sdl.KeyboardEvent:
			if ev.Repeat != 0 {
				break
			}
			switch ev.Type {
			case sdl.KEYDOWN:
				scr.forward(gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: true})
			case sdl.KEYUP:
				scr.forward(gui.EventKeyboard{
					Key:  sdl.GetKeyName(ev.Keysym.Sym),
					Down: false})
			}

		case *sdl.MouseButtonEvent:
			var button gui.MouseButton
			switch ev.Button {
			case sdl.BUTTON_LEFT:
				button = gui.MouseButtonLeft
			case sdl.BUTTON_RIGHT:
				button = gui.MouseButtonRight
			default:
				continue
			}

			x, y := scr.convertMouseCoords(int(ev.X), int(ev.Y))
			scr.forward(gui.EventMouseButton{
				Button: button,
				Down:   ev.Type == sdl.MOUSEBUTTONDOWN,
				X:      x,
				Y:      y})

		case *sdl.MouseMotionEvent:
			x, y := scr.convertMouseCoords(int(ev.X), int(ev.Y))
			scr.forward(gui.EventMouseMotion{X: x, Y: y})
		}
	}
}

func (scr *SdlCam) forward(ev gui.Event) {
	err := scr.handler(ev)
	if err != nil {
		logger.Log(logger.Allow, "sdl", err)
	}
}

// convertMouseCoords scales logical window coordinates to drawable pixel
// coordinates. on high-dpi displays the two differ.
func (scr *SdlCam) convertMouseCoords(x int, y int) (int, int) {
	lw, lh := scr.window.GetSize()
	if lw == 0 || lh == 0 {
		return x, y
	}
	dw, dh := scr.DrawableSize()
	return x * dw / int(lw), y * dh / int(lh)
}
