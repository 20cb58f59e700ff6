// Package geom provides the planar primitives shared by every stage of the
// unit-distance pipeline: immutable points, displacement vectors, and rigid
// transforms (rotation about the origin or a pivot, translation).
//
// All transforms return new slices of the same length and order; input slices
// are never mutated. Coordinates are float64 approximations of the algebraic
// values produced by the coords parser, so every geometric predicate in this
// package takes an explicit tolerance instead of comparing for equality.
//
// Errors:
//
//	ErrGeometryDegenerate - two points that were expected to be distinct coincide.
//	ErrNonFinite          - a coordinate is NaN or ±Inf.
package geom
