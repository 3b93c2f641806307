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

// Package gui defines the interfaces and event types that sit between the
// render pipeline and a concrete user interface implementation (see the
// sdlcam package for the SDL2 implementation).
package gui

// GUI defines the operations that can be performed on visual user
// interfaces.
type GUI interface {
	// Send a request to set a GUI feature.
	SetFeature(request FeatureReq, args ...FeatureReqData) error
}

// Sentinel error returned if the GUI does not support the requested feature.
const (
	UnsupportedGuiFeature = "unsupported gui feature: %v"
)
