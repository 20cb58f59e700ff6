// SPDX-License-Identifier: MIT
// Package: unitgraph/chromatic
//
// types.go — Status, Certificate, Result.

package chromatic

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/core"
)

// ErrNilGraph indicates a nil graph argument.
var ErrNilGraph = errors.New("chromatic: graph is nil")

// Oracle is the colorability question Search relies on; *coloring.Oracle implements it.
type Oracle interface {
	Colorable(ctx context.Context, g *core.Graph, k int) (*coloring.Answer, error)
}

// Status classifies a Result.
type Status int

const (
	// Determined: χ is known exactly.
	Determined Status = iota
	// Undetermined: the cap was reached with every k UNSAT; χ > cap.
	Undetermined
	// Inconclusive: an oracle call ended without a verdict; χ ∈ [Lower, Upper].
	Inconclusive
)

// String returns a lower-case status name.
func (s Status) String() string {
	switch s {
	case Determined:
		return "determined"
	case Undetermined:
		return "undetermined"
	case Inconclusive:
		return "inconclusive"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Certificate records one oracle verdict about one (graph, k) pair.
type Certificate struct {
	K        int
	Outcome  coloring.Outcome
	Vertices int
	Edges    int
	Coloring core.Coloring // set iff Outcome is SAT
	Elapsed  time.Duration
}

func certificateOf(ans *coloring.Answer) Certificate {
	return Certificate{
		K:        ans.K,
		Outcome:  ans.Outcome,
		Vertices: ans.Stats.Vertices,
		Edges:    ans.Stats.Edges,
		Coloring: ans.Coloring,
		Elapsed:  ans.Stats.Elapsed,
	}
}

// Exceeds reports whether the certificate proves χ > K.
func (c *Certificate) Exceeds() bool { return c.Outcome == coloring.OutcomeUNSAT }

// String renders e.g. "χ > 3 (V=7, E=11)" or "χ ≤ 4 (V=7, E=11)".
func (c *Certificate) String() string {
	switch c.Outcome {
	case coloring.OutcomeUNSAT:
		return fmt.Sprintf("χ > %d (V=%d, E=%d)", c.K, c.Vertices, c.Edges)
	case coloring.OutcomeSAT:
		return fmt.Sprintf("χ ≤ %d (V=%d, E=%d)", c.K, c.Vertices, c.Edges)
	default:
		return fmt.Sprintf("k=%d %s (V=%d, E=%d)", c.K, c.Outcome, c.Vertices, c.Edges)
	}
}

// Result is the outcome of Search.
//
// Determined:   Chromatic = Lower = Upper, Witness is a proper Chromatic-coloring.
// Undetermined: Lower = Cap+1, Upper = 0, Witness nil.
// Inconclusive: Lower ≤ χ ≤ Upper, Witness is a proper Upper-coloring; Reason
// holds the oracle error that stopped the search.
type Result struct {
	Status       Status
	Chromatic    int
	Lower        int
	Upper        int
	Cap          int
	Witness      core.Coloring
	Certificates []Certificate // in ascending k, one per consulted k
	Reason       error
}

// String renders "χ = 4", "χ ∈ [3, 5]" or "χ > 6 (undetermined above cap)".
func (r *Result) String() string {
	switch r.Status {
	case Determined:
		return fmt.Sprintf("χ = %d", r.Chromatic)
	case Undetermined:
		return fmt.Sprintf("χ > %d (undetermined above cap)", r.Lower-1)
	default:
		return fmt.Sprintf("χ ∈ [%d, %d]", r.Lower, r.Upper)
	}
}
