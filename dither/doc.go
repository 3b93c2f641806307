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

// Package dither converts camera frames into a two-tone ordered-dithered
// image.
//
// The Engine type does the work. Once per render pass the Render() function
// scales the source frame over the output raster (cover semantics, centred,
// overflow cropped), partitions the raster into square cells, samples the
// luminance of each cell and paints the whole cell one of exactly two
// colours. The per-cell threshold decision is biased by a 4x4 Bayer matrix
// indexed by raster coordinates, which is what produces the characteristic
// halftone texture in place of hard banding.
//
// Each cell is sampled at a single point, the cell's top-left corner, rather
// than averaged over its area. This is a deliberate trade of fidelity for
// speed: the engine runs once per display refresh and must keep up on
// commodity hardware.
//
// Render() is deterministic and cannot fail for input in the documented
// parameter ranges. Samples that fall outside the source raster, or beyond
// the end of a truncated pixel buffer, read as black.
package dither
