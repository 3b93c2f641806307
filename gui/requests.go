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

// FeatureReq is used to request the setting of a gui attribute.
type FeatureReq string

// FeatureReqData represents the information associated with a FeatureReq.
// See commentary for the defined FeatureReq values for the underlying type.
type FeatureReqData interface{}

// List of valid feature requests. The argument must be of the type specified
// or the interface{} type conversion will fail.
//
// Like the name suggests, these are requests. They may or may not be
// satisfied depending on conditions in the GUI.
const (
	// show or hide the window.
	ReqSetVisibility FeatureReq = "ReqSetVisibility" // bool

	// put gui output into full-screen mode (ie. no window border and
	// content the size of the monitor).
	ReqFullScreen FeatureReq = "ReqFullScreen" // bool

	// save the current contents of the display to an image file. the saved
	// image is whatever was most recently presented, not a fresh render.
	ReqCapture FeatureReq = "ReqCapture" // no argument
)
