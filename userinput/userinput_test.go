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

package userinput_test

import (
	"testing"

	"github.com/andreaperaltro/dithercam/gui"
	"github.com/andreaperaltro/dithercam/test"
	"github.com/andreaperaltro/dithercam/userinput"
)

func TestDefaults(t *testing.T) {
	prm := userinput.NewParameters()
	s := prm.Snapshot()
	test.ExpectEquality(t, s.CellSize, userinput.DefaultCellSize)
	test.ExpectEquality(t, s.Threshold, userinput.DefaultThreshold)
}

func TestClamping(t *testing.T) {
	prm := userinput.NewParameters()

	prm.SetCellSize(100)
	test.ExpectEquality(t, prm.Snapshot().CellSize, userinput.MaxCellSize)

	prm.SetCellSize(0)
	test.ExpectEquality(t, prm.Snapshot().CellSize, userinput.MinCellSize)

	prm.SetThreshold(2.5)
	test.ExpectEquality(t, prm.Snapshot().Threshold, userinput.MaxThreshold)

	prm.SetThreshold(-2.5)
	test.ExpectEquality(t, prm.Snapshot().Threshold, userinput.MinThreshold)
}

func TestSnapshotIndependence(t *testing.T) {
	prm := userinput.NewParameters()

	// a snapshot is unaffected by later writes
	s := prm.Snapshot()
	prm.SetCellSize(10)
	test.ExpectEquality(t, s.CellSize, userinput.DefaultCellSize)
	test.ExpectEquality(t, prm.Snapshot().CellSize, 10)

	// writing one parameter does not disturb the other
	prm.SetThreshold(0.5)
	test.ExpectEquality(t, prm.Snapshot().CellSize, 10)
	test.ExpectEquality(t, prm.Snapshot().Threshold, 0.5)
}

func TestGestureThreshold(t *testing.T) {
	const width = 800

	test.ExpectEquality(t, userinput.GestureThreshold(0, width), -1.0)
	test.ExpectEquality(t, userinput.GestureThreshold(width, width), 1.0)
	test.ExpectEquality(t, userinput.GestureThreshold(width/2, width), 0.0)

	// positions outside the surface clamp rather than overflow
	test.ExpectEquality(t, userinput.GestureThreshold(-50, width), -1.0)
	test.ExpectEquality(t, userinput.GestureThreshold(width+50, width), 1.0)
}

func TestGestureCellSize(t *testing.T) {
	const height = 600

	// top of the surface is the largest cell size, bottom the smallest
	test.ExpectEquality(t, userinput.GestureCellSize(0, height), userinput.MaxCellSize)
	test.ExpectEquality(t, userinput.GestureCellSize(height, height), userinput.MinCellSize)

	// positions outside the surface clamp rather than overflow
	test.ExpectEquality(t, userinput.GestureCellSize(-50, height), userinput.MaxCellSize)
	test.ExpectEquality(t, userinput.GestureCellSize(height+50, height), userinput.MinCellSize)
}

// stub implementations for Handler testing

type stubDisplay struct {
	width    int
	height   int
	requests []gui.FeatureReq
}

func (d *stubDisplay) DrawableSize() (int, int) {
	return d.width, d.height
}

func (d *stubDisplay) SetFeature(request gui.FeatureReq, args ...gui.FeatureReqData) error {
	d.requests = append(d.requests, request)
	return nil
}

type stubLoop struct {
	ended bool
}

func (l *stubLoop) End() {
	l.ended = true
}

func TestHandlerGesture(t *testing.T) {
	prm := userinput.NewParameters()
	disp := &stubDisplay{width: 800, height: 600}
	loop := &stubLoop{}
	hnd := userinput.NewHandler(prm, disp, loop)

	// motion without a button press does nothing
	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventMouseMotion{X: 0, Y: 0}))
	test.ExpectEquality(t, prm.Snapshot().CellSize, userinput.DefaultCellSize)

	// button press applies the gesture immediately
	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventMouseButton{Button: gui.MouseButtonLeft, Down: true, X: 800, Y: 0}))
	test.ExpectEquality(t, prm.Snapshot().Threshold, 1.0)
	test.ExpectEquality(t, prm.Snapshot().CellSize, userinput.MaxCellSize)

	// dragging continues to apply the gesture
	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventMouseMotion{X: 400, Y: 600}))
	test.ExpectEquality(t, prm.Snapshot().Threshold, 0.0)
	test.ExpectEquality(t, prm.Snapshot().CellSize, userinput.MinCellSize)

	// button release ends the gesture
	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventMouseButton{Button: gui.MouseButtonLeft, Down: false, X: 400, Y: 600}))
	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventMouseMotion{X: 0, Y: 0}))
	test.ExpectEquality(t, prm.Snapshot().Threshold, 0.0)
}

func TestHandlerKeyboard(t *testing.T) {
	prm := userinput.NewParameters()
	disp := &stubDisplay{width: 800, height: 600}
	loop := &stubLoop{}
	hnd := userinput.NewHandler(prm, disp, loop)

	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventKeyboard{Key: "Up", Down: true}))
	test.ExpectEquality(t, prm.Snapshot().CellSize, userinput.DefaultCellSize+1)

	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventKeyboard{Key: "Down", Down: true}))
	test.ExpectEquality(t, prm.Snapshot().CellSize, userinput.DefaultCellSize)

	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventKeyboard{Key: "Right", Down: true}))
	test.ExpectEquality(t, prm.Snapshot().Threshold, 0.05)

	// key releases are ignored
	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventKeyboard{Key: "Right", Down: false}))
	test.ExpectEquality(t, prm.Snapshot().Threshold, 0.05)

	// capture request is forwarded to the display
	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventKeyboard{Key: "Space", Down: true}))
	test.ExpectEquality(t, len(disp.requests), 1)
	test.ExpectEquality(t, disp.requests[0], gui.ReqCapture)

	// quit keys end the loop
	test.ExpectFailure(t, loop.ended)
	test.ExpectSuccess(t, hnd.HandleEvent(gui.EventKeyboard{Key: "Escape", Down: true}))
	test.ExpectSuccess(t, loop.ended)
}
