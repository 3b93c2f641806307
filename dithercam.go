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

package main

import (
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/andreaperaltro/dithercam/camera"
	"github.com/andreaperaltro/dithercam/dither"
	"github.com/andreaperaltro/dithercam/gui"
	"github.com/andreaperaltro/dithercam/gui/sdlcam"
	"github.com/andreaperaltro/dithercam/logger"
	"github.com/andreaperaltro/dithercam/modalflag"
	"github.com/andreaperaltro/dithercam/performance"
	"github.com/andreaperaltro/dithercam/render"
	"github.com/andreaperaltro/dithercam/statsview"
	"github.com/andreaperaltro/dithercam/userinput"
	"github.com/andreaperaltro/dithercam/version"
)

// native dimensions of the built-in test card source.
const (
	testCardWidth  = 640
	testCardHeight = 480
)

func init() {
	// SDL requires that the window and event functions are called from the
	// main OS thread. the render loop runs on the main goroutine so locking
	// here is sufficient
	runtime.LockOSThread()
}

// #mainthread
func main() {
	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("RUN", "PERFORMANCE", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		os.Exit(0)

	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}

	switch md.Mode() {
	case "RUN":
		err = run(md)

	case "PERFORMANCE":
		err = perform(md)

	case "VERSION":
		err = showVersion(md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		os.Exit(20)
	}
}

func run(md *modalflag.Modes) error {
	md.NewMode()

	source := md.AddString("source", "test", "frame source: test or the path to an image file")
	fps := md.AddInt("fps", 60, "display refresh rate")
	width := md.AddInt("width", 800, "initial window width")
	height := md.AddInt("height", 600, "initial window height")
	fullscreen := md.AddBool("fullscreen", false, "open the window in full-screen mode")
	cell := md.AddInt("cell", userinput.DefaultCellSize, "initial dithering cell size")
	threshold := md.AddFloat64("threshold", userinput.DefaultThreshold, "initial dithering threshold")
	light := md.AddString("light", dither.DefaultLight, "light tone of the output (hex triplet)")
	dark := md.AddString("dark", dither.DefaultDark, "dark tone of the output (hex triplet)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* no statsview in this build")
		}
	}

	pal, err := dither.ParsePalette(*light, *dark)
	if err != nil {
		return err
	}

	var src camera.FrameSource
	if *source == "test" {
		src = camera.NewTestCard(testCardWidth, testCardHeight)
	} else {
		src = camera.NewImageLoop(*source)
	}

	// an unavailable frame source is not fatal. the loop idles on a blank
	// window until the user quits
	err = src.Start()
	if err != nil {
		logger.Log(logger.Allow, "camera", err)
	}

	scr, err := sdlcam.NewSdlCam(*width, *height, *fullscreen)
	if err != nil {
		return err
	}
	defer scr.Destroy(os.Stderr)

	prm := userinput.NewParameters()
	prm.SetCellSize(*cell)
	prm.SetThreshold(*threshold)

	lp, err := render.NewLoop(src, scr, dither.NewEngine(dither.Bayer4x4, pal), prm, *fps)
	if err != nil {
		return err
	}

	hnd := userinput.NewHandler(prm, scr, lp)
	scr.SetEventHandler(hnd.HandleEvent)

	err = scr.SetFeature(gui.ReqSetVisibility, true)
	if err != nil {
		return err
	}

	// #ctrlc ends the render loop cleanly
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		lp.End()
	}()

	return lp.Run()
}

func perform(md *modalflag.Modes) error {
	md.NewMode()

	profile := md.AddBool("profile", false, "run with profiling")
	width := md.AddInt("width", 800, "width of the offscreen render buffer")
	height := md.AddInt("height", 600, "height of the offscreen render buffer")
	cell := md.AddInt("cell", userinput.DefaultCellSize, "dithering cell size")
	fps := md.AddInt("fps", 60, "rate to measure headroom against")
	duration := md.AddString("duration", "5s", "run duration (with an additional 2s overhead)")
	log := md.AddBool("log", false, "echo debugging log to stdout")
	stats := md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	// set debugging log echo
	if *log {
		logger.SetEcho(os.Stdout, true)
	} else {
		logger.SetEcho(nil, false)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("* no statsview in this build")
		}
	}

	return performance.Check(md.Output, *profile, *width, *height, *cell, *fps, *duration)
}

func showVersion(md *modalflag.Modes) error {
	md.NewMode()

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	ver, rev := version.Version()
	fmt.Printf("%s (%s)\n", version.ApplicationName, ver)
	fmt.Printf("  %s\n", rev)

	return nil
}
