// Package coloring is the Colorability Oracle: it decides whether a graph
// admits a proper k-coloring by reduction to CNF-SAT.
//
// Encoding (variable x(v,c) = v·k + c + 1 for vertex v, color c ∈ 0..k-1):
//
//	coverage    ∀v:            x(v,0) ∨ … ∨ x(v,k-1)
//	uniqueness  ∀v, c<d:       ¬x(v,c) ∨ ¬x(v,d)
//	adjacency   ∀{u,v}∈E, ∀c:  ¬x(u,c) ∨ ¬x(v,c)
//
// Uniqueness is redundant for the yes/no answer but makes the decoded
// witness unambiguous; it can be switched off with WithUniqueness(false),
// in which case decoding picks the lowest true color per vertex.
//
// Every SAT answer carries a witness coloring that has been checked against
// every edge. Every UNSAT answer records the graph size and k it refers to.
// A call that runs out of time is reported as OutcomeTimeout together with
// ErrOracleTimeout, never as UNSAT. Instances with more than the configured
// variable budget are refused with ErrResourceExhausted before reaching the
// solver.
//
// An Oracle holds no per-call state; concurrent Colorable calls are safe as
// long as the configured sat.Solver is (the bundled gophersat backend is).
package coloring
