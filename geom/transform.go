// SPDX-License-Identifier: MIT
// Package: unitgraph/geom
//
// transform.go — rigid motions over point sets and unit-circle constructions.
//
// Contract:
//   • Every function returns a fresh slice; inputs are read-only.
//   • Output order equals input order (vertex i stays vertex i).

package geom

import (
	"fmt"
	"math"
)

// Rotate returns points rotated counter-clockwise by angle radians about the origin.
// Complexity: O(n).
func Rotate(points []Point, angle float64) []Point {
	return Rotation(angle).Apply(points)
}

// RotateAbout returns points rotated by angle about pivot.
// Complexity: O(n).
func RotateAbout(points []Point, pivot Point, angle float64) []Point {
	sin, cos := math.Sincos(angle)
	out := make([]Point, len(points))
	for i, p := range points {
		dx, dy := p.X-pivot.X, p.Y-pivot.Y
		out[i] = Point{
			X: pivot.X + dx*cos - dy*sin,
			Y: pivot.Y + dx*sin + dy*cos,
		}
	}

	return out
}

// Translate returns points shifted by v.
// Complexity: O(n).
func Translate(points []Point, v Vector) []Point {
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = p.Add(v)
	}

	return out
}

// UnitCircleIntersections returns the points at distance exactly 1 from both
// p and q. The result has two points when 0 < |pq| < 2, one when |pq| == 2
// (within eps), and none otherwise (including p == q).
//
// Points are returned in a fixed order: left of the directed segment p→q first.
func UnitCircleIntersections(p, q Point, eps float64) []Point {
	d := Distance(p, q)
	if d < eps || d > 2+eps {
		return nil
	}
	mid := Point{X: (p.X + q.X) / 2, Y: (p.Y + q.Y) / 2}
	half := d / 2
	h2 := 1 - half*half
	if h2 <= eps*eps {
		return []Point{mid}
	}
	h := math.Sqrt(h2)
	// unit normal to p→q, pointing left
	nx, ny := -(q.Y-p.Y)/d, (q.X-p.X)/d

	return []Point{
		{X: mid.X + h*nx, Y: mid.Y + h*ny},
		{X: mid.X - h*nx, Y: mid.Y - h*ny},
	}
}

// Coincident returns every index pair (i<j) whose points lie closer than eps.
// Complexity: O(n²).
func Coincident(points []Point, eps float64) [][2]int {
	var pairs [][2]int
	for i := 0; i < len(points); i++ {
		for j := i + 1; j < len(points); j++ {
			if Distance(points[i], points[j]) < eps {
				pairs = append(pairs, [2]int{i, j})
			}
		}
	}

	return pairs
}

// CheckDistinct returns ErrGeometryDegenerate (wrapped with the first offending
// pair) if any two points coincide within eps, and ErrNonFinite for NaN/Inf input.
func CheckDistinct(points []Point, eps float64) error {
	for i, p := range points {
		if !p.IsFinite() {
			return fmt.Errorf("CheckDistinct: point %d %v: %w", i, p, ErrNonFinite)
		}
	}
	if pairs := Coincident(points, eps); len(pairs) > 0 {
		return fmt.Errorf("CheckDistinct: %d coincident pair(s), first {%d,%d}: %w",
			len(pairs), pairs[0][0], pairs[0][1], ErrGeometryDegenerate)
	}

	return nil
}

// Contains reports whether some point of the set lies within eps of p.
func Contains(points []Point, p Point, eps float64) bool {
	for _, q := range points {
		if Distance(p, q) < eps {
			return true
		}
	}

	return false
}
