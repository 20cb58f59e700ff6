// SPDX-License-Identifier: MIT
// Package: unitgraph/builder
//
// gadgets.go — classic small unit-distance point sets.
//
//	Gadget        V   E   χ
//	Triangle      3   3   3
//	Hexagon       7  12   3   (wheel W7: centre + unit hexagon)
//	MoserSpindle  7  11   4
//	Golomb       10  18   4
//	Lattice(r)   3r²+3r+1     3   (hexagonal patch of the triangular lattice, r ≥ 1)
//
// Every gadget returns a fresh slice in a fixed vertex order.

package builder

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/katalvlaran/unitgraph/geom"
)

// Gadget names accepted by GadgetByName.
const (
	GadgetTriangle     = "triangle"
	GadgetHexagon      = "hexagon"
	GadgetMoserSpindle = "moser"
	GadgetGolomb       = "golomb"
)

var sqrt3 = math.Sqrt(3)

// Triangle returns the unit equilateral triangle (0,0), (1,0), (1/2, √3/2).
func Triangle() []geom.Point {
	return []geom.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 0.5, Y: sqrt3 / 2}}
}

// Hexagon returns the centre (0,0) followed by the six unit hexagon vertices
// at angles 0, 60°, …, 300°.
func Hexagon() []geom.Point {
	pts := []geom.Point{{X: 0, Y: 0}}
	for k := 0; k < 6; k++ {
		pts = append(pts, polar(geom.Point{}, 1, float64(k)*math.Pi/3))
	}
	return pts
}

// MoserSpindle returns the 7-vertex spindle: a rhombus of two unit equilateral
// triangles with apex at the origin and far tip at (√3, 0), plus its copy
// rotated about the origin until the two far tips are at unit distance.
//
// Vertex order: 0 apex, 1-3 first rhombus (upper, lower, tip), 4-6 rotated rhombus.
func MoserSpindle() []geom.Point {
	rhombus := []geom.Point{
		{X: 0, Y: 0},
		{X: sqrt3 / 2, Y: 0.5},
		{X: sqrt3 / 2, Y: -0.5},
		{X: sqrt3, Y: 0},
	}
	// chord between tips on the circle of radius √3 is 2√3·sin(θ/2) = 1
	theta := 2 * math.Asin(1/(2*sqrt3))
	rotated := geom.Rotate(rhombus[1:], theta)
	return append(rhombus, rotated...)
}

// Golomb returns the 10-vertex Golomb graph: Hexagon() plus a unit equilateral
// triangle centred at the origin whose vertices are each at unit distance from
// hexagon vertices 1, 3 and 5 (angles 0°, 120°, 240°).
func Golomb() []geom.Point {
	pts := Hexagon()
	r := 1 / sqrt3
	// |T−H|=1 with |T|=r, |H|=1 ⇒ cos Δ = r/2
	delta := math.Acos(r / 2)
	for i := 0; i < 3; i++ {
		pts = append(pts, polar(geom.Point{}, r, 2*math.Pi*float64(i)/3+delta))
	}
	return pts
}

// Lattice returns the hexagonal patch of radius r of the triangular lattice
// spanned by (1,0) and (1/2, √3/2): all a·(1,0)+b·(1/2,√3/2) with
// |a|,|b|,|a+b| ≤ r, ordered by (b, a).
func Lattice(r int) ([]geom.Point, error) {
	if r < 1 {
		return nil, fmt.Errorf("Lattice: r=%d < 1: %w", r, ErrTooSmall)
	}
	var pts []geom.Point
	for b := -r; b <= r; b++ {
		for a := -r; a <= r; a++ {
			if abs(a+b) > r {
				continue
			}
			pts = append(pts, geom.Point{X: float64(a) + float64(b)/2, Y: float64(b) * sqrt3 / 2})
		}
	}
	return pts, nil
}

// GadgetByName resolves a gadget name (case-insensitive). "lattice-N" selects Lattice(N).
func GadgetByName(name string) ([]geom.Point, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	switch n {
	case GadgetTriangle:
		return Triangle(), nil
	case GadgetHexagon:
		return Hexagon(), nil
	case GadgetMoserSpindle, "moser-spindle", "spindle":
		return MoserSpindle(), nil
	case GadgetGolomb:
		return Golomb(), nil
	}
	var r int
	if _, err := fmt.Sscanf(n, "lattice-%d", &r); err == nil {
		return Lattice(r)
	}
	return nil, fmt.Errorf("GadgetByName(%q): known %v: %w", name, GadgetNames(), ErrUnknownGadget)
}

// GadgetNames lists the fixed gadget names in sorted order.
func GadgetNames() []string {
	names := []string{GadgetTriangle, GadgetHexagon, GadgetMoserSpindle, GadgetGolomb}
	sort.Strings(names)
	return names
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
