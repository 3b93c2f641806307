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

// Package sdlcam is the SDL2 implementation of the gui interfaces and of
// the render.Surface interface.
//
// SDL requires that all window, renderer and event functions are called
// from the main OS thread. The render loop satisfies this by running on
// the goroutine that creation happened on; main() must lock that goroutine
// to its thread.
package sdlcam

import (
	"fmt"
	"io"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/andreaperaltro/dithercam/curated"
	"github.com/andreaperaltro/dithercam/gui"
)

// Error patterns for the sdlcam package.
const (
	SDL = "sdl: %v"
)

const windowTitle = "Dithercam"

const pixelDepth = 4

// SdlCam is the SDL window that displays the dithered camera stream. It
// implements gui.GUI and render.Surface.
type SdlCam struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture

	// dimensions of the texture and of the pixels slice. this is the
	// drawable size, not the logical window size
	width  int
	height int

	// pixels is the byte array we copy to the texture on every Present().
	// RGBA order, four bytes per pixel
	pixels []byte

	// events are forwarded to the handler from Service()
	handler func(gui.Event) error

	fullscreen bool
}

// NewSdlCam is the preferred method of initialisation for the SdlCam type.
//
// MUST ONLY be called from the main thread.
func NewSdlCam(width int, height int, fullscreen bool) (*SdlCam, error) {
	scr := &SdlCam{}

	err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	scr.window, err = sdl.CreateWindow(windowTitle,
		int32(sdl.WINDOWPOS_UNDEFINED), int32(sdl.WINDOWPOS_UNDEFINED),
		int32(width), int32(height),
		uint32(sdl.WINDOW_HIDDEN)|uint32(sdl.WINDOW_RESIZABLE)|uint32(sdl.WINDOW_ALLOW_HIGHDPI))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	// vsync so that Present() blocks until the display refresh. the render
	// loop's own limiter is a backstop for drivers that ignore the flag
	scr.renderer, err = sdl.CreateRenderer(scr.window, -1,
		uint32(sdl.RENDERER_ACCELERATED)|uint32(sdl.RENDERER_PRESENTVSYNC))
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	if fullscreen {
		err = scr.setFullScreen(true)
		if err != nil {
			return nil, err
		}
	}

	// texture and pixel array are created on the first Resize(), once the
	// true drawable size is known

	// window is opened on a ReqSetVisibility request

	return scr, nil
}

// Destroy implements GuiCreator. Errors are reported to the io.Writer
// rather than returned, there is nothing the caller can do about them.
//
// MUST ONLY be called from the main thread.
func (scr *SdlCam) Destroy(output io.Writer) {
	if scr.texture != nil {
		err := scr.texture.Destroy()
		if err != nil {
			output.Write([]byte(err.Error()))
		}
	}

	err := scr.renderer.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	err = scr.window.Destroy()
	if err != nil {
		output.Write([]byte(err.Error()))
	}

	sdl.Quit()
}

// SetEventHandler registers the function that receives gui events polled
// during Service().
func (scr *SdlCam) SetEventHandler(handler func(gui.Event) error) {
	scr.handler = handler
}

// DrawableSize implements render.Surface.
//
// MUST ONLY be called from the main thread.
func (scr *SdlCam) DrawableSize() (int, int) {
	w, h, err := scr.renderer.GetOutputSize()
	if err != nil {
		// fall back to the logical window size
		lw, lh := scr.window.GetSize()
		return int(lw), int(lh)
	}
	return int(w), int(h)
}

// Resize implements render.Surface. A call with unchanged dimensions is a
// no-op; otherwise the texture and pixel array are recreated at the new
// size.
//
// MUST ONLY be called from the main thread.
func (scr *SdlCam) Resize(width int, height int) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(SDL, fmt.Errorf("surface size %dx%d", width, height))
	}

	if width == scr.width && height == scr.height && scr.texture != nil {
		return nil
	}

	if scr.texture != nil {
		_ = scr.texture.Destroy()
	}

	var err error
	scr.texture, err = scr.renderer.CreateTexture(uint32(sdl.PIXELFORMAT_ABGR8888),
		int(sdl.TEXTUREACCESS_STREAMING),
		int32(width), int32(height))
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	scr.width = width
	scr.height = height
	scr.pixels = make([]byte, width*height*pixelDepth)

	// preset alpha channel - we never change the value of this channel
	for i := pixelDepth - 1; i < len(scr.pixels); i += pixelDepth {
		scr.pixels[i] = 255
	}

	return nil
}

// Pixels implements render.Surface. The returned slice is valid until the
// next call to Resize().
func (scr *SdlCam) Pixels() []byte {
	return scr.pixels
}

// Present implements render.Surface, pushing the pixel array to the
// display.
//
// MUST ONLY be called from the main thread.
func (scr *SdlCam) Present() error {
	err := scr.texture.Update(nil, scr.pixels, scr.width*pixelDepth)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	err = scr.renderer.Copy(scr.texture, nil, nil)
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	scr.renderer.Present()

	return nil
}

func (scr *SdlCam) showWindow(show bool) {
	if show {
		scr.window.Show()
	} else {
		scr.window.Hide()
	}
}

func (scr *SdlCam) setFullScreen(fullscreen bool) error {
	var err error
	if fullscreen {
		err = scr.window.SetFullscreen(uint32(sdl.WINDOW_FULLSCREEN_DESKTOP))
	} else {
		err = scr.window.SetFullscreen(0)
	}
	if err != nil {
		return curated.Errorf(SDL, err)
	}
	scr.fullscreen = fullscreen
	return nil
}
