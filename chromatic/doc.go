// Package chromatic bounds the chromatic number χ(G) of a graph by asking a
// colorability oracle about k = 1, 2, … in increasing order.
//
// The first SAT answer at k determines χ = k, and its witness coloring is the
// proof of the upper bound; the UNSAT answers below it are the lower-bound
// certificates. Two situations leave χ open and are reported as such rather
// than as a number:
//
//   - Undetermined: every k up to the cap was UNSAT, so χ > cap. Nothing is
//     claimed about how much larger.
//   - Inconclusive: the oracle timed out (or refused an oversized instance) at
//     some k before any SAT answer. χ lies in [Lower, Upper], where Upper comes
//     from a greedy coloring witness.
//
// Search with WithWorkers(n>1) evaluates windows of n consecutive k values
// concurrently and then reads them in ascending order, so the Result is the
// one the sequential loop would produce.
package chromatic
