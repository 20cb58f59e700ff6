// SPDX-License-Identifier: MIT
// Package: unitgraph/builder
//
// helpers.go — small internal utilities shared by builders.

package builder

import (
	"math"
	"sort"

	"github.com/katalvlaran/unitgraph/geom"
)

func sortInts(a []int) { sort.Ints(a) }

// polar returns the point at radius r and angle theta around c.
func polar(c geom.Point, r, theta float64) geom.Point {
	sin, cos := math.Sincos(theta)
	return geom.Point{X: c.X + r*cos, Y: c.Y + r*sin}
}

// dedupe drops every point within eps of an earlier kept point, preserving order.
// Complexity: O(N²) worst case; called on seed-sized sets only.
func dedupe(points []geom.Point, eps float64) []geom.Point {
	out := make([]geom.Point, 0, len(points))
	for _, p := range points {
		if !geom.Contains(out, p, eps) {
			out = append(out, p)
		}
	}
	return out
}
