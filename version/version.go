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

// Package version records the version number and vcs revision of the
// project, as far as they can be recovered from the build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application.
const ApplicationName = "Dithercam"

// Revision contains the vcs revision. If the source has been modified but
// not committed then the revision string is suffixed with "+dirty".
var revision string

// Version contains the version string for the current build. If the version
// string is "local" then there is no version number and no vcs information,
// which can happen when compiling/running with "go run .".
var version string

// Version returns the version and revision strings.
func Version() (string, string) {
	return version, revision
}

func init() {
	var vcsRevision string
	var vcsModified bool

	info, ok := debug.ReadBuildInfo()
	if ok {
		for _, v := range info.Settings {
			switch v.Key {
			case "vcs.revision":
				vcsRevision = v.Value
			case "vcs.modified":
				vcsModified = v.Value == "true"
			}
		}
	}

	if vcsRevision == "" {
		revision = "no revision information"
	} else {
		revision = vcsRevision
		if vcsModified {
			revision = fmt.Sprintf("%s+dirty", revision)
		}
	}

	if version == "" {
		if vcsRevision == "" {
			version = "local"
		} else {
			version = "unreleased"
		}
	}
}
