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

// Package userinput translates gui events into writes to the shared render
// parameters and into feature requests on the GUI.
//
// Two control styles are supported by the Handler type and both are active
// at the same time. Dragging with the pointer maps the position within the
// surface to both parameters at once: horizontal position controls the
// brightness threshold and vertical position the cell size. The keyboard
// steps each parameter independently in fixed increments.
//
// All range clamping happens in this package. The dither engine assumes
// pre-clamped values and is not defensive about them.
package userinput
