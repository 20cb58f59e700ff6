// SPDX-License-Identifier: MIT
// Package: unitgraph/coloring
//
// errors.go — sentinel errors for the oracle.

package coloring

import "errors"

var (
	// ErrNilGraph indicates a nil *core.Graph.
	ErrNilGraph = errors.New("coloring: graph is nil")

	// ErrInvalidK indicates k < 1.
	ErrInvalidK = errors.New("coloring: k must be ≥ 1")

	// ErrOracleTimeout indicates the solver exceeded its time budget. The
	// colorability question is undetermined; this is not evidence of UNSAT.
	ErrOracleTimeout = errors.New("coloring: oracle timeout")

	// ErrResourceExhausted indicates the instance exceeds the variable budget.
	// Fatal for this (graph, k) only; callers may retry smaller.
	ErrResourceExhausted = errors.New("coloring: instance too large")

	// ErrSolverIndeterminate indicates the backend returned neither SAT nor UNSAT.
	ErrSolverIndeterminate = errors.New("coloring: solver returned no verdict")

	// ErrBadWitness indicates a SAT model that does not decode to a proper coloring.
	ErrBadWitness = errors.New("coloring: solver model is not a proper coloring")
)
