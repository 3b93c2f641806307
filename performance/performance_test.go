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

package performance_test

import (
	"testing"

	"github.com/andreaperaltro/dithercam/curated"
	"github.com/andreaperaltro/dithercam/performance"
	"github.com/andreaperaltro/dithercam/test"
)

func TestCheck(t *testing.T) {
	if testing.Short() {
		t.Skip("Check() runs for the leadtime plus the measurement period")
	}

	tw := &test.Writer{}

	// small buffer keeps the test quick while leaving the measurement loop
	// and its timer goroutine fully exercised
	err := performance.Check(tw, false, 64, 48, 4, 60, "100ms")
	test.ExpectSuccess(t, err)

	test.ExpectSuccess(t, tw.Contains("fps ("))
	test.ExpectSuccess(t, tw.Contains("frames in"))
}

func TestCheck_invalidDuration(t *testing.T) {
	tw := &test.Writer{}
	err := performance.Check(tw, false, 64, 48, 4, 60, "never")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.Error))
}

func TestCheck_invalidDimensions(t *testing.T) {
	tw := &test.Writer{}
	err := performance.Check(tw, false, 0, 48, 4, 60, "100ms")
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, performance.Error))
}
