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

package dither_test

import (
	"bytes"
	"testing"

	"github.com/andreaperaltro/dithercam/camera"
	"github.com/andreaperaltro/dithercam/dither"
	"github.com/andreaperaltro/dithercam/test"
)

// greyFrame creates a frame filled with a single grey value.
func greyFrame(width, height int, grey byte) *camera.Frame {
	frame := camera.NewFrame(width, height)
	for i := 0; i < len(frame.Pix); i += camera.PixelDepth {
		frame.Pix[i] = grey
		frame.Pix[i+1] = grey
		frame.Pix[i+2] = grey
	}
	return frame
}

// classify returns +1 for a light pixel, -1 for a dark pixel and 0 for a
// pixel that is neither. pal must be the palette the engine was created
// with.
func classify(out []byte, i int, pal dither.Palette) int {
	r, g, b := out[i], out[i+1], out[i+2]
	if r == pal.Light.R && g == pal.Light.G && b == pal.Light.B {
		return 1
	}
	if r == pal.Dark.R && g == pal.Dark.G && b == pal.Dark.B {
		return -1
	}
	return 0
}

func TestDeterminism(t *testing.T) {
	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)
	frame := greyFrame(64, 48, 97)

	a := make([]byte, 100*80*camera.PixelDepth)
	b := make([]byte, 100*80*camera.PixelDepth)

	eng.Render(frame, a, 100, 80, 3, 0.1)
	eng.Render(frame, b, 100, 80, 3, 0.1)

	test.ExpectSuccess(t, bytes.Equal(a, b))
}

func TestBinaryOutput(t *testing.T) {
	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)

	// a frame with a full range of values
	frame := camera.NewFrame(60, 40)
	for i := 0; i < len(frame.Pix); i += camera.PixelDepth {
		frame.Pix[i] = byte(i % 256)
		frame.Pix[i+1] = byte((i * 7) % 256)
		frame.Pix[i+2] = byte((i * 13) % 256)
	}

	out := make([]byte, 80*50*camera.PixelDepth)
	eng.Render(frame, out, 80, 50, 3, 0)

	// every pixel is exactly one of the two palette colours
	for i := 0; i < len(out); i += camera.PixelDepth {
		test.ExpectInequality(t, classify(out, i, dither.DefaultPalette), 0)
	}
}

func TestBayerTilingFraction(t *testing.T) {
	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)

	// with a cell size that is coprime with the matrix period, a region
	// exactly 4x4 cells covers all sixteen matrix entries once. the light
	// fraction of the region is then k/16, where k is the number of matrix
	// entries below the grey-derived cutoff
	const cellSize = 5
	const outW = 4 * cellSize
	const outH = 4 * cellSize
	const grey = 100

	frame := greyFrame(outW, outH, grey)
	out := make([]byte, outW*outH*camera.PixelDepth)
	eng.Render(frame, out, outW, outH, cellSize, 0)

	k := 0
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			if grey/255.0 > float64(dither.Bayer4x4[y][x])/16.0 {
				k++
			}
		}
	}

	light := 0
	for y := 0; y < outH; y += cellSize {
		for x := 0; x < outW; x += cellSize {
			i := (y*outW + x) * camera.PixelDepth
			if classify(out, i, dither.DefaultPalette) == 1 {
				light++
			}
		}
	}

	test.ExpectEquality(t, light, k)
}

// the end-to-end scenario: a native 640x480 frame of uniform mid-grey
// rendered to an 800x600 surface with cellSize 8. the light/dark assignment
// of the cell at origin (x,y) follows directly from the matrix entry at
// (y%4, x%4).
func TestMidGreyScenario(t *testing.T) {
	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)

	const outW = 800
	const outH = 600
	const cellSize = 8

	frame := greyFrame(640, 480, 128)
	out := make([]byte, outW*outH*camera.PixelDepth)
	eng.Render(frame, out, outW, outH, cellSize, 0)

	for y := 0; y < outH; y += cellSize {
		for x := 0; x < outW; x += cellSize {
			expectedLight := 128/255.0 > 0.5+float64(dither.Bayer4x4[y%4][x%4])/16.0-0.5

			// check every pixel of the cell, clipped to the surface
			for yy := y; yy < y+cellSize && yy < outH; yy++ {
				for xx := x; xx < x+cellSize && xx < outW; xx++ {
					i := (yy*outW + xx) * camera.PixelDepth
					light := classify(out, i, dither.DefaultPalette) == 1
					if light != expectedLight {
						t.Fatalf("cell at (%d,%d): pixel (%d,%d) light=%v, expected %v", x, y, xx, yy, light, expectedLight)
					}
				}
			}
		}
	}
}

func TestThresholdExtremes(t *testing.T) {
	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)
	out := make([]byte, 40*40*camera.PixelDepth)

	// at threshold 1 even a pure white frame renders all-dark
	white := greyFrame(40, 40, 255)
	eng.Render(white, out, 40, 40, 4, 1)
	for i := 0; i < len(out); i += camera.PixelDepth {
		test.ExpectEquality(t, classify(out, i, dither.DefaultPalette), -1)
	}

	// at threshold -1 even a pure black frame renders all-light
	black := greyFrame(40, 40, 0)
	eng.Render(black, out, 40, 40, 4, -1)
	for i := 0; i < len(out); i += camera.PixelDepth {
		test.ExpectEquality(t, classify(out, i, dither.DefaultPalette), 1)
	}
}

func TestEdgeClipping(t *testing.T) {
	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)

	// cellSize 7 does not divide 23x17. the surface must still be covered
	// edge to edge with no out-of-range writes
	const outW = 23
	const outH = 17

	frame := greyFrame(23, 17, 200)
	out := make([]byte, outW*outH*camera.PixelDepth)
	eng.Render(frame, out, outW, outH, 7, 0)

	for i := 0; i < len(out); i += camera.PixelDepth {
		test.ExpectInequality(t, classify(out, i, dither.DefaultPalette), 0)
	}
}

func TestTruncatedFrame(t *testing.T) {
	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)

	// a corrupt frame that claims to be larger than its pixel buffer. the
	// missing samples must read as black rather than panicking
	frame := &camera.Frame{
		Pix:    make([]byte, 16*camera.PixelDepth),
		Width:  64,
		Height: 64,
	}

	out := make([]byte, 64*64*camera.PixelDepth)
	eng.Render(frame, out, 64, 64, 2, 0)

	// black input with a zero threshold renders all-dark
	for i := 0; i < len(out); i += camera.PixelDepth {
		test.ExpectEquality(t, classify(out, i, dither.DefaultPalette), -1)
	}
}

func TestNilFrame(t *testing.T) {
	eng := dither.NewEngine(dither.Bayer4x4, dither.DefaultPalette)

	out := make([]byte, 32*32*camera.PixelDepth)
	eng.Render(nil, out, 32, 32, 4, 0)

	for i := 0; i < len(out); i += camera.PixelDepth {
		test.ExpectEquality(t, classify(out, i, dither.DefaultPalette), -1)
	}
}
