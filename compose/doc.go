// Package compose builds the union graph of several rigidly transformed copies
// of a point set and accounts for where its edges come from.
//
// Vertices of copy i occupy the index range [Offsets[i], Offsets[i+1]) of the
// composed graph, in the copy's own order. Every pair of points, within a copy
// or across copies, is tested for unit distance; edges are then split into
// within-copy and cross-copy counts. A composition with no cross-copy edge
// adds no constraint beyond the copies themselves and is flagged as
// non-informative.
//
// Copies produced by the identity transform stack vertices on top of each
// other. This is permitted: such "same point, different index" pairs are
// never adjacent (their distance is 0), they are counted in Coincident and
// logged as degenerate geometry at Warn level.
package compose
