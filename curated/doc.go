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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. It takes a
// formatting pattern and placeholder values, like the fmt package's Errorf(),
// but the pattern is kept alongside the formatted message so the provenance
// of the error can be tested for later:
//
//	e := curated.Errorf(camera.DeviceUnavailable, err)
//
//	if curated.Is(e, camera.DeviceUnavailable) {
//		// not fatal. log and continue with a blank surface
//	}
//
// The Has() function is similar to Is() but checks whether the pattern occurs
// anywhere in the error chain, rather than only at the outermost level. The
// IsAny() function answers whether the error was created by Errorf() at all.
//
// The Error() function implementation normalises the error chain, removing
// duplicate adjacent parts of the message. This alleviates the problem of
// when to wrap an error and when to let it pass through untouched.
package curated
