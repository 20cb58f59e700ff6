// SPDX-License-Identifier: MIT
// Package: unitgraph/builder
//
// grid_index.go — uniform grid binning over planar points.
//
// Cells are squares of side `cell`; point p lives in cell (⌊p.X/cell⌋, ⌊p.Y/cell⌋).
// With cell ≥ 1+ε, two points closer than 1+ε differ by at most one cell on
// each axis, so scanning the 3×3 block around a point's cell finds every
// candidate partner.

package builder

import (
	"math"

	"github.com/katalvlaran/unitgraph/geom"
)

type cellKey struct{ cx, cy int64 }

// gridIndex maps cells to the ascending indices of the points they hold.
type gridIndex struct {
	cell  float64
	cells map[cellKey][]int
	keys  []cellKey
}

// neighborOffsets enumerates the 3×3 block around a cell.
var neighborOffsets = [9][2]int64{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {0, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

func newGridIndex(points []geom.Point, cell float64) *gridIndex {
	gi := &gridIndex{
		cell:  cell,
		cells: make(map[cellKey][]int, len(points)),
		keys:  make([]cellKey, len(points)),
	}
	for i, p := range points {
		k := gi.keyOf(p)
		gi.keys[i] = k
		gi.cells[k] = append(gi.cells[k], i)
	}
	return gi
}

func (gi *gridIndex) keyOf(p geom.Point) cellKey {
	return cellKey{
		cx: int64(math.Floor(p.X / gi.cell)),
		cy: int64(math.Floor(p.Y / gi.cell)),
	}
}

// near calls fn for every indexed point in the 3×3 block around p.
func (gi *gridIndex) near(p geom.Point, fn func(j int)) {
	k := gi.keyOf(p)
	for _, d := range neighborOffsets {
		for _, j := range gi.cells[cellKey{cx: k.cx + d[0], cy: k.cy + d[1]}] {
			fn(j)
		}
	}
}
