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

import (
	"github.com/andreaperaltro/dithercam/gui"
)

// keyboard step sizes. one key press nudges the parameter by this much.
const (
	cellSizeStep  = 1
	thresholdStep = 0.05
)

// Display is the view of the GUI needed by the input handler.
type Display interface {
	gui.GUI

	// size of the drawable area in pixels. pointer gestures are mapped
	// over this area
	DrawableSize() (int, int)
}

// Loop is the part of the render loop the input layer can reach.
type Loop interface {
	// End the render loop. must be idempotent
	End()
}

// Handler translates gui events into parameter writes and feature requests.
type Handler struct {
	prm  *Parameters
	disp Display
	loop Loop

	// a pointer gesture is in progress. set between button down and button
	// up events
	dragging bool

	fullscreen bool
}

// NewHandler is the preferred method of initialisation for the Handler
// type.
func NewHandler(prm *Parameters, disp Display, loop Loop) *Handler {
	return &Handler{
		prm:  prm,
		disp: disp,
		loop: loop,
	}
}

// HandleEvent processes a single gui event. Suitable for use as the event
// handler of a gui implementation.
func (h *Handler) HandleEvent(ev gui.Event) error {
	switch ev := ev.(type) {
	case gui.EventQuit:
		h.loop.End()

	case gui.EventMouseButton:
		if ev.Button != gui.MouseButtonLeft {
			break
		}
		h.dragging = ev.Down
		if ev.Down {
			h.gesture(ev.X, ev.Y)
		}

	case gui.EventMouseMotion:
		if h.dragging {
			h.gesture(ev.X, ev.Y)
		}

	case gui.EventKeyboard:
		if !ev.Down {
			break
		}
		return h.key(ev.Key)
	}

	return nil
}

// gesture applies the pointer mapping for both parameters at once.
func (h *Handler) gesture(x int, y int) {
	w, height := h.disp.DrawableSize()
	h.prm.SetThreshold(GestureThreshold(x, w))
	h.prm.SetCellSize(GestureCellSize(y, height))
}

// key applies the keyboard stepper mapping. unrecognised keys are ignored.
func (h *Handler) key(key string) error {
	switch key {
	case "Escape", "Q":
		h.loop.End()

	case "Space":
		return h.disp.SetFeature(gui.ReqCapture)

	case "F11":
		h.fullscreen = !h.fullscreen
		return h.disp.SetFeature(gui.ReqFullScreen, h.fullscreen)

	case "Up":
		h.prm.SetCellSize(h.prm.Snapshot().CellSize + cellSizeStep)

	case "Down":
		h.prm.SetCellSize(h.prm.Snapshot().CellSize - cellSizeStep)

	case "Right":
		h.prm.SetThreshold(h.prm.Snapshot().Threshold + thresholdStep)

	case "Left":
		h.prm.SetThreshold(h.prm.Snapshot().Threshold - thresholdStep)
	}

	return nil
}
