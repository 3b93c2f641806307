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

package userinput

import (
	"sync/atomic"
)

// Valid ranges for the two render parameters.
const (
	MinCellSize  = 2
	MaxCellSize  = 16
	MinThreshold = -1.0
	MaxThreshold = 1.0
)

// Startup defaults for the two render parameters.
const (
	DefaultCellSize  = 4
	DefaultThreshold = 0.0
)

// Settings is one consistent snapshot of the render parameters. The two
// fields are independent knobs with no cross-field invariant.
type Settings struct {
	// pixels per dithering cell edge
	CellSize int

	// bias added to the per-cell brightness comparison
	Threshold float64
}

// Parameters is the shared state between the input layer and the render
// loop. The input layer writes through the clamping setters; the render loop
// reads one snapshot per tick. Writes are last-write-wins: a write is
// visible to a render tick only if it completes before that tick's read.
//
// The setters are not safe for use from multiple concurrent writers. The
// expected arrangement is a single writing goroutine (the one servicing
// input events) and any number of readers.
type Parameters struct {
	v atomic.Value // Settings
}

// NewParameters is the preferred method of initialisation for the
// Parameters type.
func NewParameters() *Parameters {
	p := &Parameters{}
	p.v.Store(Settings{
		CellSize:  DefaultCellSize,
		Threshold: DefaultThreshold,
	})
	return p
}

// Snapshot returns the current parameter values.
func (p *Parameters) Snapshot() Settings {
	return p.v.Load().(Settings)
}

// SetCellSize stores a new cell size, clamped to the valid range.
func (p *Parameters) SetCellSize(cellSize int) {
	if cellSize < MinCellSize {
		cellSize = MinCellSize
	}
	if cellSize > MaxCellSize {
		cellSize = MaxCellSize
	}

	s := p.Snapshot()
	s.CellSize = cellSize
	p.v.Store(s)
}

// SetThreshold stores a new threshold, clamped to the valid range.
func (p *Parameters) SetThreshold(threshold float64) {
	if threshold < MinThreshold {
		threshold = MinThreshold
	}
	if threshold > MaxThreshold {
		threshold = MaxThreshold
	}

	s := p.Snapshot()
	s.Threshold = threshold
	p.v.Store(s)
}
