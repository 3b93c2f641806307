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

// Package camera defines the boundary between the render pipeline and
// whatever is producing images. The pipeline never talks to a device
// directly, it only ever sees the FrameSource interface.
//
// Two implementations are provided. TestCard generates a synthetic animated
// pattern and is used when no capture device is available, for performance
// measurement and for testing. ImageLoop serves a still image file as though
// it were a live source.
//
// A real capture device can be attached by satisfying FrameSource. Note the
// non-blocking contract on CurrentFrame(): the render loop calls it once per
// tick and must never be made to wait for new device data.
package camera
