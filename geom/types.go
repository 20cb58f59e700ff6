// SPDX-License-Identifier: MIT
// Package: unitgraph/geom
//
// types.go — Point, Vector, Transform and sentinel errors.

package geom

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrGeometryDegenerate indicates coincident points where distinct points were expected.
	// Callers log it and continue; it is never fatal on its own.
	ErrGeometryDegenerate = errors.New("geom: degenerate geometry (coincident points)")

	// ErrNonFinite indicates a NaN or infinite coordinate.
	ErrNonFinite = errors.New("geom: non-finite coordinate")
)

// DefaultTolerance is the absolute tolerance used for unit-distance and
// coincidence tests when the caller does not supply one.
const DefaultTolerance = 1e-9

// Point is an immutable planar coordinate.
type Point struct {
	X, Y float64
}

// Vector is a planar displacement.
type Vector struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by v.
func (p Point) Add(v Vector) Point { return Point{X: p.X + v.X, Y: p.Y + v.Y} }

// Sub returns the displacement from q to p.
func (p Point) Sub(q Point) Vector { return Vector{X: p.X - q.X, Y: p.Y - q.Y} }

// IsFinite reports whether both coordinates are finite numbers.
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// String renders p as "(x, y)".
func (p Point) String() string { return fmt.Sprintf("(%.12g, %.12g)", p.X, p.Y) }

// Len returns the Euclidean length of v.
func (v Vector) Len() float64 { return math.Hypot(v.X, v.Y) }

// Scale returns v multiplied by s.
func (v Vector) Scale(s float64) Vector { return Vector{X: v.X * s, Y: v.Y * s} }

// Distance returns the Euclidean distance between p and q.
func Distance(p, q Point) float64 { return math.Hypot(p.X-q.X, p.Y-q.Y) }

// IsUnitDistance reports whether | |p-q| - 1 | < eps.
func IsUnitDistance(p, q Point, eps float64) bool {
	return math.Abs(Distance(p, q)-1) < eps
}

// Transform is a rigid motion: rotation by Angle (radians, counter-clockwise,
// about the origin) followed by translation by Offset.
type Transform struct {
	Angle  float64
	Offset Vector
}

// Identity returns the identity transform.
func Identity() Transform { return Transform{} }

// Rotation returns a pure rotation by angle.
func Rotation(angle float64) Transform { return Transform{Angle: angle} }

// Translation returns a pure translation by v.
func Translation(v Vector) Transform { return Transform{Offset: v} }

// IsIdentity reports whether t leaves every point in place.
func (t Transform) IsIdentity() bool {
	return math.Mod(t.Angle, 2*math.Pi) == 0 && t.Offset.X == 0 && t.Offset.Y == 0
}

// ApplyPoint maps a single point through t.
func (t Transform) ApplyPoint(p Point) Point {
	sin, cos := math.Sincos(t.Angle)
	return Point{
		X: p.X*cos - p.Y*sin + t.Offset.X,
		Y: p.X*sin + p.Y*cos + t.Offset.Y,
	}
}

// Apply maps every point through t and returns a new slice.
// Complexity: O(n).
func (t Transform) Apply(points []Point) []Point {
	sin, cos := math.Sincos(t.Angle)
	out := make([]Point, len(points))
	for i, p := range points {
		out[i] = Point{
			X: p.X*cos - p.Y*sin + t.Offset.X,
			Y: p.X*sin + p.Y*cos + t.Offset.Y,
		}
	}

	return out
}

// String renders t for diagnostics.
func (t Transform) String() string {
	return fmt.Sprintf("rot(%.6g) + (%.6g, %.6g)", t.Angle, t.Offset.X, t.Offset.Y)
}
