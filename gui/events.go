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

package gui

// Event represents an event received by the GUI and forwarded to the input
// handler.
type Event interface{}

// MouseButton identifies the pointer button associated with an
// EventMouseButton.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
)

// EventQuit is sent when the window is closed.
type EventQuit struct{}

// EventKeyboard is sent when a key is pressed or released. Key is the name
// of the key, not the character it produces.
type EventKeyboard struct {
	Key  string
	Down bool
}

// EventMouseButton is sent when a pointer button changes state. X and Y are
// in pixels, relative to the drawable area of the window.
type EventMouseButton struct {
	Button MouseButton
	Down   bool
	X      int
	Y      int
}

// EventMouseMotion is sent when the pointer moves. X and Y are in pixels,
// relative to the drawable area of the window.
type EventMouseMotion struct {
	X int
	Y int
}
