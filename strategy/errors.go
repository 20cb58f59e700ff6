// SPDX-License-Identifier: MIT
// Package: unitgraph/strategy
//
// errors.go — sentinel errors.

package strategy

import "errors"

var (
	// ErrNilGraph indicates a nil graph argument.
	ErrNilGraph = errors.New("strategy: graph is nil")

	// ErrEmptySeed indicates Greedy was given no seed points.
	ErrEmptySeed = errors.New("strategy: empty seed")

	// ErrSeedUndetermined indicates χ of the seed could not be determined.
	ErrSeedUndetermined = errors.New("strategy: seed chromatic number undetermined")

	// ErrColorable indicates the input graph is k-colorable, so there is
	// nothing to minimise or check for criticality.
	ErrColorable = errors.New("strategy: graph is k-colorable")

	// ErrUndetermined indicates the oracle could not decide the input graph at k.
	ErrUndetermined = errors.New("strategy: input graph undetermined at k")
)
