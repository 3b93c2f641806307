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

// Package render drives the dither engine once per display refresh,
// connecting a camera.FrameSource to a Surface.
//
// The Loop type is a two state machine. It is Idle until Run() is called
// and returns to Idle when End() is called, after which no further surface
// writes occur. While running, every tick pulls the most recent frame from
// the source, snapshots the render parameters and renders into the surface.
// A tick with no frame available (a camera that is still initialising, for
// example) is a no-op; the loop keeps ticking.
//
// All rendering happens on the goroutine that called Run(). If the Surface
// implementation requires a particular OS thread, as SDL does, the caller is
// responsible for locking Run() to it.
package render

import (
	"sync/atomic"

	"github.com/andreaperaltro/dithercam/camera"
	"github.com/andreaperaltro/dithercam/curated"
	"github.com/andreaperaltro/dithercam/dither"
	"github.com/andreaperaltro/dithercam/logger"
	"github.com/andreaperaltro/dithercam/performance/limiter"
	"github.com/andreaperaltro/dithercam/userinput"
)

// Error patterns for the render package.
const (
	// SurfaceUnavailable indicates that the drawing surface could not be
	// prepared or presented. Fatal to the render path: no further ticks are
	// scheduled.
	SurfaceUnavailable = "render: surface unavailable: %v"
)

// Surface is the drawable raster the loop renders into.
type Surface interface {
	// DrawableSize returns the current size of the display area in pixels,
	// accounting for any device pixel ratio applied by the OS.
	DrawableSize() (int, int)

	// Resize the backing raster. Called before every render pass with the
	// current drawable size; implementations should treat a call with
	// unchanged dimensions as a no-op.
	Resize(width int, height int) error

	// Pixels returns the backing RGBA buffer. Valid until the next call to
	// Resize().
	Pixels() []byte

	// Present pushes the contents of the Pixels() buffer to the display.
	Present() error
}

// Servicer is implemented by surfaces that need to poll their event system
// once per tick, on the same thread that renders.
type Servicer interface {
	Service()
}

// State of the render loop.
type State int32

// List of valid State values.
const (
	Idle State = iota
	Running
)

// Loop drives the dither engine once per display refresh tick.
type Loop struct {
	src  camera.FrameSource
	scr  Surface
	eng  *dither.Engine
	prm  *userinput.Parameters
	lmtr *limiter.Limiter

	// state is accessed atomically. End() may be called from another
	// goroutine, a signal handler for instance
	state atomic.Int32
}

// NewLoop is the preferred method of initialisation for the Loop type. The
// hz argument is the tick rate, normally the refresh rate of the display.
func NewLoop(src camera.FrameSource, scr Surface, eng *dither.Engine, prm *userinput.Parameters, hz int) (*Loop, error) {
	lmtr, err := limiter.NewLimiter(hz)
	if err != nil {
		return nil, curated.Errorf("render: %v", err)
	}

	return &Loop{
		src:  src,
		scr:  scr,
		eng:  eng,
		prm:  prm,
		lmtr: lmtr,
	}, nil
}

// State returns the current state of the loop.
func (lp *Loop) State() State {
	return State(lp.state.Load())
}

// Run ticks the loop until End() is called. It blocks for the lifetime of
// the loop.
//
// A tick that fails with SurfaceUnavailable ends the loop and is returned.
// Any other tick failure is logged and the loop continues: a single bad
// frame never stops the stream.
func (lp *Loop) Run() error {
	if !lp.state.CompareAndSwap(int32(Idle), int32(Running)) {
		return nil
	}

	for lp.State() == Running {
		lp.lmtr.Wait()

		// service gui events before rendering. this may call End()
		if svc, ok := lp.scr.(Servicer); ok {
			svc.Service()
		}

		if err := lp.tick(); err != nil {
			if curated.Is(err, SurfaceUnavailable) {
				lp.End()
				return err
			}
			logger.Log(logger.Allow, "render", err)
		}
	}

	return nil
}

// tick performs one render pass. After End() has been called a tick does
// nothing at all: in particular, it never writes to the surface.
func (lp *Loop) tick() error {
	if lp.State() != Running {
		return nil
	}

	// frame source not ready. expected during startup, not an error
	_, _, ok := lp.src.NativeDimensions()
	if !ok {
		return nil
	}

	// surface dimensions are recomputed from the current display size every
	// pass. sizing from a previous pass must never survive a resize
	w, h := lp.scr.DrawableSize()
	if err := lp.scr.Resize(w, h); err != nil {
		return curated.Errorf(SurfaceUnavailable, err)
	}

	frame := lp.src.CurrentFrame()
	if frame == nil {
		return nil
	}

	s := lp.prm.Snapshot()
	lp.eng.Render(frame, lp.scr.Pixels(), w, h, s.CellSize, s.Threshold)

	if err := lp.scr.Present(); err != nil {
		return curated.Errorf(SurfaceUnavailable, err)
	}

	return nil
}

// End stops the loop and releases the frame source. Idempotent. No surface
// writes occur after End() returns.
func (lp *Loop) End() {
	if !lp.state.CompareAndSwap(int32(Running), int32(Idle)) {
		return
	}
	lp.src.Stop()
}
