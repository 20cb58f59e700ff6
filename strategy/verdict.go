// SPDX-License-Identifier: MIT
// Package: unitgraph/strategy
//
// verdict.go — shared oracle-call helpers.

package strategy

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/core"
)

// undetermined reports whether err is an oracle failure that leaves the
// question open rather than aborting the run.
func undetermined(err error) bool {
	return errors.Is(err, coloring.ErrOracleTimeout) || errors.Is(err, coloring.ErrResourceExhausted)
}

// requireUNSAT checks that g is not k-colorable.
func requireUNSAT(ctx context.Context, o chromatic.Oracle, g *core.Graph, k int) error {
	if g == nil {
		return ErrNilGraph
	}
	ans, err := o.Colorable(ctx, g, k)
	if err != nil {
		if undetermined(err) {
			return fmt.Errorf("k=%d: %w: %w", k, err, ErrUndetermined)
		}
		return err
	}
	if ans.Outcome == coloring.OutcomeSAT {
		return fmt.Errorf("k=%d: %w", k, ErrColorable)
	}
	return nil
}
