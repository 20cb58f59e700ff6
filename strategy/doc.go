// Package strategy holds the construction and diagnostic loops built on the
// colorability oracle:
//
//	Greedy          grows a point set one unit-distance candidate at a time,
//	                committing the first candidate that raises χ.
//	MinimalSubgraph estimates, by random sampling and binary search on size,
//	                the smallest vertex count at which a non-k-colorable graph
//	                stays non-k-colorable. The answer is statistical.
//	Criticality     removes each vertex in turn and reports those whose
//	                removal does not restore k-colorability.
//
// All three thread their working data explicitly (State, Estimate,
// CriticalityReport); nothing is kept in package-level variables. Oracle
// calls that end without a verdict are never read as UNSAT: they are either
// skipped (Greedy) or reported separately (Inconclusive counts and lists).
package strategy
