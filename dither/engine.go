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

package dither

import (
	"math"

	"github.com/andreaperaltro/dithercam/camera"
)

// Engine converts frames into the two-tone dithered image. It holds no
// per-frame state: for the same frame and parameters, Render() produces
// byte-identical output on every invocation.
type Engine struct {
	matrix Matrix
	light  [camera.PixelDepth]byte
	dark   [camera.PixelDepth]byte
}

// NewEngine is the preferred method of initialisation for the Engine type.
func NewEngine(matrix Matrix, palette Palette) *Engine {
	return &Engine{
		matrix: matrix,
		light:  [camera.PixelDepth]byte{palette.Light.R, palette.Light.G, palette.Light.B, palette.Light.A},
		dark:   [camera.PixelDepth]byte{palette.Dark.R, palette.Dark.G, palette.Dark.B, palette.Dark.A},
	}
}

// Render maps the frame onto the output raster and writes the dithered
// result into out, which must be at least outW*outH*4 bytes of RGBA samples.
//
// The output raster is partitioned into cellSize square cells. Each cell is
// painted a single flat colour: the light colour of the palette if the
// luminance sampled at the cell's top-left corner exceeds the biased
// threshold, the dark colour otherwise. Cells at the right and bottom edges
// are clipped to the raster if cellSize does not divide the dimensions
// evenly.
//
// Callers are responsible for clamping cellSize to [2,16] and threshold to
// [-1,1]. Within those ranges Render() cannot fail: a nil frame renders as
// all-dark, as does any sample that falls outside the frame's pixel buffer.
func (eng *Engine) Render(frame *camera.Frame, out []byte, outW int, outH int, cellSize int, threshold float64) {
	if outW <= 0 || outH <= 0 || cellSize <= 0 {
		return
	}

	var scale, offsetX, offsetY float64
	var srcW, srcH int
	var pix []byte

	if frame != nil {
		srcW = frame.Width
		srcH = frame.Height
		pix = frame.Pix
		scale, offsetX, offsetY = CoverFit(srcW, srcH, outW, outH)
	}

	for y := 0; y < outH; y += cellSize {
		for x := 0; x < outW; x += cellSize {
			gray := sample(pix, srcW, srcH, scale, offsetX, offsetY, x, y)

			c := eng.dark
			if float64(gray)/255.0 > 0.5+eng.matrix.Bias(x, y)+threshold {
				c = eng.light
			}

			eng.fill(out, outW, outH, x, y, cellSize, c)
		}
	}
}

// sample returns the luminance, in the range 0 to 255, of the single source
// sample that lands on the output coordinate (x,y) under cover-fit scaling.
// Coordinates that map outside the source raster, or past the end of a
// truncated pixel buffer, read as black.
func sample(pix []byte, srcW int, srcH int, scale, offsetX, offsetY float64, x int, y int) int {
	if scale <= 0 || srcW <= 0 || srcH <= 0 {
		return 0
	}

	sx := int(math.Floor((float64(x) - offsetX) / scale))
	sy := int(math.Floor((float64(y) - offsetY) / scale))
	if sx < 0 || sy < 0 || sx >= srcW || sy >= srcH {
		return 0
	}

	i := (sy*srcW + sx) * camera.PixelDepth
	if i < 0 || i+2 >= len(pix) {
		return 0
	}

	return (int(pix[i]) + int(pix[i+1]) + int(pix[i+2])) / 3
}

// fill paints a single cell with a flat colour, clipping to the raster
// bounds.
func (eng *Engine) fill(out []byte, outW int, outH int, x int, y int, cellSize int, c [camera.PixelDepth]byte) {
	x2 := x + cellSize
	if x2 > outW {
		x2 = outW
	}
	y2 := y + cellSize
	if y2 > outH {
		y2 = outH
	}

	for yy := y; yy < y2; yy++ {
		i := (yy*outW + x) * camera.PixelDepth
		for xx := x; xx < x2; xx++ {
			if i+camera.PixelDepth <= len(out) {
				copy(out[i:i+camera.PixelDepth], c[:])
			}
			i += camera.PixelDepth
		}
	}
}
