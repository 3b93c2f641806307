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

// Package unique generates filenames that should not collide with any
// existing file.
package unique

import (
	"fmt"
	"strings"
	"time"
)

// Filename creates a filename that (assuming a functioning clock) should not
// collide with any existing file. Note that the function does not test for
// this.
//
// Used to generate filenames for captured images.
//
// Format of returned string is:
//
//	prepend_YYYYMMDD_HHMMSS
//
// If the prepend string is empty the leading underscore is omitted.
func Filename(prepend string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	p := strings.TrimSpace(prepend)
	if len(p) == 0 {
		return timestamp
	}

	return fmt.Sprintf("%s_%s", p, timestamp)
}
