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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/andreaperaltro/dithercam/camera"
	"github.com/andreaperaltro/dithercam/curated"
	"github.com/andreaperaltro/dithercam/dither"
)

// Error patterns for the performance package.
const (
	Error = "performance: %v"
)

// native dimensions of the synthetic frame source used by Check().
const (
	checkSourceWidth  = 640
	checkSourceHeight = 480
)

// leadTime is how long Check() renders before measurement starts.
const leadTime = 2 * time.Second

// Check is a rough and ready measurement of how fast the dither engine can
// run on this machine. The engine renders the test card into an offscreen
// buffer of the specified size, flat out, for the specified duration. The
// aggregate frame rate is written to output alongside the headroom against
// the requested rate.
//
// Profiling information is written to cpu.profile and mem.profile when the
// profile flag is set.
func Check(output io.Writer, profile bool, width int, height int, cellSize int, requestedRate int, runTime string) error {
	if width <= 0 || height <= 0 {
		return curated.Errorf(Error, fmt.Errorf("output size %dx%d", width, height))
	}

	duration, err := time.ParseDuration(runTime)
	if err != nil {
		return curated.Errorf(Error, err)
	}

	src := camera.NewTestCard(checkSourceWidth, checkSourceHeight)
	err = src.Start()
	if err != nil {
		return curated.Errorf(Error, err)
	}
	defer src.Stop()

	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)
	out := make([]byte, width*height*camera.PixelDepth)

	numFrames := 0

	err = cpuProfile(profile, "cpu.profile", func() error {
		// timerChan signals false when the leadtime has elapsed and true
		// when the measurement period has finished
		timerChan := make(chan bool)

		// force a two second leadtime so measurement starts from a warm
		// engine, then restart the timer for the specified duration
		go func() {
			time.AfterFunc(leadTime, func() {
				timerChan <- false
				time.AfterFunc(duration, func() {
					timerChan <- true
				})
			})
		}()

		// render until the measurement period elapses. the frame counter
		// is only ever touched by this goroutine; the timer goroutine
		// communicates through timerChan alone
		for {
			select {
			case v := <-timerChan:
				if v {
					return nil
				}

				// leadtime has concluded. measurement starts now
				numFrames = 0
			default:
			}

			frame := src.CurrentFrame()
			eng.Render(frame, out, width, height, cellSize, 0.0)
			numFrames++
		}
	})
	if err != nil {
		return err
	}

	fps, accuracy := CalcFPS(numFrames, duration.Seconds(), requestedRate)
	output.Write([]byte(fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%%\n", fps, numFrames, duration.Seconds(), accuracy)))

	return memProfile(profile, "mem.profile")
}
