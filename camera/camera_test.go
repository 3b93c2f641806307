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

package camera_test

import (
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/andreaperaltro/dithercam/camera"
	"github.com/andreaperaltro/dithercam/curated"
	"github.com/andreaperaltro/dithercam/test"
)

func TestTestCardLifecycle(t *testing.T) {
	tc := camera.NewTestCard(64, 48)

	// not ready before Start()
	_, _, ok := tc.NativeDimensions()
	test.ExpectFailure(t, ok)
	if tc.CurrentFrame() != nil {
		t.Error("expected nil frame before Start()")
	}

	test.ExpectSuccess(t, tc.Start())

	w, h, ok := tc.NativeDimensions()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, 64)
	test.ExpectEquality(t, h, 48)

	frame := tc.CurrentFrame()
	if frame == nil {
		t.Fatal("expected a frame after Start()")
	}
	test.ExpectEquality(t, frame.Width, 64)
	test.ExpectEquality(t, frame.Height, 48)
	test.ExpectEquality(t, len(frame.Pix), 64*48*camera.PixelDepth)

	// the frame animates
	a := make([]byte, len(frame.Pix))
	copy(a, frame.Pix)
	frame = tc.CurrentFrame()
	same := true
	for i := range a {
		if a[i] != frame.Pix[i] {
			same = false
			break
		}
	}
	test.ExpectFailure(t, same)

	// Stop() is idempotent
	tc.Stop()
	tc.Stop()
	if tc.CurrentFrame() != nil {
		t.Error("expected nil frame after Stop()")
	}
}

func TestImageLoopMissingFile(t *testing.T) {
	img := camera.NewImageLoop(filepath.Join(t.TempDir(), "no such file.png"))
	err := img.Start()
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, camera.DeviceUnavailable))

	_, _, ok := img.NativeDimensions()
	test.ExpectFailure(t, ok)
}

func TestImageLoop(t *testing.T) {
	// write a small png for the source to pick up
	path := filepath.Join(t.TempDir(), "frame.png")
	f, err := os.Create(path)
	test.ExpectSuccess(t, err)
	err = png.Encode(f, image.NewRGBA(image.Rect(0, 0, 32, 16)))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, f.Close())

	img := camera.NewImageLoop(path)
	test.ExpectSuccess(t, img.Start())

	w, h, ok := img.NativeDimensions()
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, w, 32)
	test.ExpectEquality(t, h, 16)

	// every frame is the same frame
	a := img.CurrentFrame()
	b := img.CurrentFrame()
	if a != b {
		t.Error("expected ImageLoop to return the same frame every time")
	}

	img.Stop()
	if img.CurrentFrame() != nil {
		t.Error("expected nil frame after Stop()")
	}
}
