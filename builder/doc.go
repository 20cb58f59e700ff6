// Package builder constructs unit-distance graphs from planar point sets.
//
// The central entry point is UnitDistance: given points P_0..P_{N-1} and a
// tolerance ε it returns a core.Graph on vertices 0..N-1 (input order kept)
// whose edges are exactly the pairs {i,j}, i≠j, with | |P_i−P_j| − 1 | < ε.
//
// Two evaluation strategies produce the same edge set:
//
//   - pairwise: all N(N−1)/2 pairs, O(N²).
//   - grid-binned: points are bucketed into square cells of side 1+ε, and
//     each point is compared only with points in the 3×3 block of cells
//     around it. Any pair closer than 1+ε lies in adjacent cells, so no edge
//     is lost.
//
// The strategy is chosen automatically by size unless WithSpatialIndex
// forces it.
//
// The package also carries the classic small unit-distance gadgets used to
// seed constructions (Triangle, MoserSpindle, Hexagon, Golomb, Lattice) and a
// Constructor/BuildPoints pair for assembling point sets from them.
//
// Guarantees:
//
//   - Pure: no input slice is modified, no global state.
//   - Option constructors panic on meaningless values; builders return sentinel errors.
//   - Deterministic: identical inputs produce identical graphs.
package builder
