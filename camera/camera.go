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

// Error patterns for the camera package.
const (
	// DeviceUnavailable indicates that the frame source could not acquire
	// its stream. Not fatal to the application: the render loop stays idle
	// and the surface remains blank.
	DeviceUnavailable = "camera: device unavailable: %v"
)

// FrameSource produces the images consumed by the render pipeline.
type FrameSource interface {
	// Start acquisition. Returns a curated error with the DeviceUnavailable
	// pattern if the source cannot be acquired.
	Start() error

	// Stop releases the underlying resource. It is safe to call Stop() more
	// than once and on a source that was never started.
	Stop()

	// CurrentFrame returns the most recent frame, or nil if no frame is
	// ready yet. It never blocks waiting for new data.
	//
	// The returned frame is borrowed: it is valid until the next call to
	// CurrentFrame() and must not be retained beyond that.
	CurrentFrame() *Frame

	// NativeDimensions returns the resolution of the source. The ok value
	// is false while the resolution is still unknown (eg. a device that is
	// still initialising).
	NativeDimensions() (width int, height int, ok bool)
}
