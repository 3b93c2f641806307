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

// Package limiter paces the render loop to a fixed tick rate, standing in
// for the display's own refresh callback. A new Limiter is created with the
// required rate and ticks are then consumed with the Wait() function:
//
//	lmtr, _ := limiter.NewLimiter(60)
//	for {
//		lmtr.Wait()
//		renderFrame()
//	}
//
// The limiter is only as accurate as the base performance of the machine
// allows. It self-adjusts the sleep period to absorb scheduling jitter but
// it will not drop ticks to catch up.
package limiter

import (
	"time"

	"github.com/andreaperaltro/dithercam/curated"
)

// error patterns for the limiter package.
const (
	InvalidRate = "limiter: invalid tick rate (%d)"
)

// Limiter triggers at the specified number of ticks per second.
type Limiter struct {
	ticksPerSecond int
	perTick        time.Duration

	tick chan bool
}

// NewLimiter is the preferred method of initialisation for the Limiter type.
func NewLimiter(ticksPerSecond int) (*Limiter, error) {
	if ticksPerSecond <= 0 {
		return nil, curated.Errorf(InvalidRate, ticksPerSecond)
	}

	lim := &Limiter{
		ticksPerSecond: ticksPerSecond,
		perTick:        time.Second / time.Duration(ticksPerSecond),
		tick:           make(chan bool),
	}

	// run ticker concurrently. the sleep period is adjusted every tick to
	// absorb the scheduling error of the previous tick
	go func() {
		adjustedPerTick := lim.perTick
		t := time.Now()
		for {
			lim.tick <- true
			time.Sleep(adjustedPerTick)
			nt := time.Now()
			adjustedPerTick -= nt.Sub(t) - lim.perTick
			t = nt
		}
	}()

	return lim, nil
}

// Rate returns the number of ticks per second the limiter was created with.
func (lim *Limiter) Rate() int {
	return lim.ticksPerSecond
}

// Wait blocks until the next tick.
func (lim *Limiter) Wait() {
	<-lim.tick
}

// HasWaited returns true if a tick has already elapsed and false if it is
// still yet to happen. It never blocks.
func (lim *Limiter) HasWaited() bool {
	select {
	case <-lim.tick:
		return true
	default:
		return false
	}
}
