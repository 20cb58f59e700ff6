// SPDX-License-Identifier: MIT
// Package chromatic_test covers the upward search, its bracket reporting and
// the parallel window mode.

package chromatic_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/builder"
	"github.com/katalvlaran/unitgraph/chromatic"
	"github.com/katalvlaran/unitgraph/coloring"
	"github.com/katalvlaran/unitgraph/core"
	"github.com/katalvlaran/unitgraph/sat"
)

func gadget(t *testing.T, name string) *core.Graph {
	t.Helper()
	pts, err := builder.GadgetByName(name)
	require.NoError(t, err)
	g, err := builder.UnitDistance(pts)
	require.NoError(t, err)
	return g
}

func newOracle() *coloring.Oracle { return coloring.New(sat.NewGophersat()) }

// scripted forwards to a real oracle except at the k values listed in stall,
// where it reports a timeout. It also records which k were asked.
type scripted struct {
	inner chromatic.Oracle
	stall map[int]error

	mu    sync.Mutex
	asked []int
}

func (s *scripted) Colorable(ctx context.Context, g *core.Graph, k int) (*coloring.Answer, error) {
	s.mu.Lock()
	s.asked = append(s.asked, k)
	s.mu.Unlock()
	if err, ok := s.stall[k]; ok {
		ans := &coloring.Answer{K: k, Outcome: coloring.OutcomeTimeout}
		ans.Stats.Vertices, ans.Stats.Edges = g.VertexCount(), g.EdgeCount()
		if errors.Is(err, coloring.ErrResourceExhausted) {
			ans.Outcome = coloring.OutcomeTooLarge
		}
		return ans, err
	}
	return s.inner.Colorable(ctx, g, k)
}

func TestSearch_Triangle(t *testing.T) {
	g := gadget(t, builder.GadgetTriangle)
	res, err := chromatic.Search(context.Background(), newOracle(), g)
	require.NoError(t, err)

	assert.Equal(t, chromatic.Determined, res.Status)
	assert.Equal(t, 3, res.Chromatic)
	assert.Equal(t, "χ = 3", res.String())
	require.NoError(t, g.ValidateColoring(res.Witness, 3))

	require.Len(t, res.Certificates, 3)
	assert.True(t, res.Certificates[0].Exceeds())
	assert.True(t, res.Certificates[1].Exceeds())
	assert.False(t, res.Certificates[2].Exceeds())
}

func TestSearch_MoserSpindle(t *testing.T) {
	g := gadget(t, builder.GadgetMoserSpindle)
	res, err := chromatic.Search(context.Background(), newOracle(), g)
	require.NoError(t, err)

	assert.Equal(t, chromatic.Determined, res.Status)
	assert.Equal(t, 4, res.Chromatic)
	assert.Equal(t, 4, res.Lower)
	assert.Equal(t, 4, res.Upper)
	require.NoError(t, g.ValidateColoring(res.Witness, 4))
	for _, c := range res.Certificates[:3] {
		assert.True(t, c.Exceeds(), "k=%d", c.K)
		assert.Equal(t, 7, c.Vertices)
		assert.Equal(t, 11, c.Edges)
	}
	assert.Equal(t, "χ > 3 (V=7, E=11)", res.Certificates[2].String())
}

func TestSearch_ParallelMatchesSequential(t *testing.T) {
	ignore := cmpopts.IgnoreFields(chromatic.Certificate{}, "Elapsed", "Coloring")
	for _, name := range []string{builder.GadgetTriangle, builder.GadgetMoserSpindle, builder.GadgetGolomb, builder.GadgetHexagon} {
		t.Run(name, func(t *testing.T) {
			g := gadget(t, name)
			seq, err := chromatic.Search(context.Background(), newOracle(), g)
			require.NoError(t, err)
			for _, w := range []int{2, 3, 8} {
				par, err := chromatic.Search(context.Background(), newOracle(), g, chromatic.WithWorkers(w))
				require.NoError(t, err)
				assert.Equal(t, seq.Status, par.Status)
				assert.Equal(t, seq.Chromatic, par.Chromatic)
				assert.NoError(t, g.ValidateColoring(par.Witness, par.Chromatic))
				if diff := cmp.Diff(seq.Certificates, par.Certificates, ignore); diff != "" {
					t.Fatalf("workers=%d certificates (-seq +par):\n%s", w, diff)
				}
			}
		})
	}
}

func TestSearch_CapExhaustedIsUndetermined(t *testing.T) {
	g := gadget(t, builder.GadgetMoserSpindle)
	res, err := chromatic.Search(context.Background(), newOracle(), g, chromatic.WithMaxK(3))
	require.NoError(t, err)

	assert.Equal(t, chromatic.Undetermined, res.Status)
	assert.Equal(t, 4, res.Lower)
	assert.Zero(t, res.Upper)
	assert.Zero(t, res.Chromatic)
	assert.Nil(t, res.Witness)
	assert.Equal(t, "χ > 3 (undetermined above cap)", res.String())
}

func TestSearch_TimeoutIsInconclusive(t *testing.T) {
	g := gadget(t, builder.GadgetMoserSpindle)
	o := &scripted{
		inner: newOracle(),
		stall: map[int]error{3: fmt.Errorf("k=3: %w", coloring.ErrOracleTimeout)},
	}
	res, err := chromatic.Search(context.Background(), o, g)
	require.NoError(t, err)

	assert.Equal(t, chromatic.Inconclusive, res.Status)
	assert.Equal(t, 3, res.Lower)
	assert.GreaterOrEqual(t, res.Upper, 4)
	assert.NoError(t, g.ValidateColoring(res.Witness, res.Upper))
	assert.ErrorIs(t, res.Reason, coloring.ErrOracleTimeout)
	assert.Equal(t, fmt.Sprintf("χ ∈ [3, %d]", res.Upper), res.String())
	assert.Equal(t, []int{1, 2, 3}, o.asked)
}

func TestSearch_ResourceExhaustedIsInconclusive(t *testing.T) {
	g := gadget(t, builder.GadgetGolomb)
	o := &scripted{
		inner: newOracle(),
		stall: map[int]error{2: coloring.ErrResourceExhausted},
	}
	res, err := chromatic.Search(context.Background(), o, g)
	require.NoError(t, err)
	assert.Equal(t, chromatic.Inconclusive, res.Status)
	assert.Equal(t, 2, res.Lower)
	assert.ErrorIs(t, res.Reason, coloring.ErrResourceExhausted)
}

func TestSearch_GreedyWitnessClosesBracket(t *testing.T) {
	// C6 is bipartite; the greedy coloring uses 2 colors, so a stall at k=2
	// is still settled.
	g := core.MustGraph(6, []core.Edge{{U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}, {U: 3, V: 4}, {U: 4, V: 5}, {U: 5, V: 0}})
	o := &scripted{inner: newOracle(), stall: map[int]error{2: coloring.ErrOracleTimeout}}

	res, err := chromatic.Search(context.Background(), o, g)
	require.NoError(t, err)
	assert.Equal(t, chromatic.Determined, res.Status)
	assert.Equal(t, 2, res.Chromatic)
	assert.NoError(t, res.Reason)
}

func TestSearch_EmptyGraph(t *testing.T) {
	res, err := chromatic.Search(context.Background(), newOracle(), core.MustGraph(0, nil))
	require.NoError(t, err)
	assert.Equal(t, chromatic.Determined, res.Status)
	assert.Zero(t, res.Chromatic)
}

func TestSearch_Errors(t *testing.T) {
	_, err := chromatic.Search(context.Background(), newOracle(), nil)
	assert.ErrorIs(t, err, chromatic.ErrNilGraph)

	boom := errors.New("boom")
	o := &scripted{inner: newOracle(), stall: map[int]error{2: boom}}
	_, err = chromatic.Search(context.Background(), o, gadget(t, builder.GadgetTriangle))
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = chromatic.Search(ctx, newOracle(), gadget(t, builder.GadgetMoserSpindle), chromatic.WithWorkers(4))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBreakthrough(t *testing.T) {
	g := gadget(t, builder.GadgetMoserSpindle)

	c, err := chromatic.Breakthrough(context.Background(), newOracle(), g, 3)
	require.NoError(t, err)
	assert.True(t, c.Exceeds())

	c, err = chromatic.Breakthrough(context.Background(), newOracle(), g, 4)
	require.NoError(t, err)
	assert.False(t, c.Exceeds())
	assert.NoError(t, g.ValidateColoring(c.Coloring, 4))

	o := &scripted{inner: newOracle(), stall: map[int]error{3: coloring.ErrOracleTimeout}}
	c, err = chromatic.Breakthrough(context.Background(), o, g, 3)
	assert.ErrorIs(t, err, coloring.ErrOracleTimeout)
	require.NotNil(t, c)
	assert.False(t, c.Exceeds(), "a timeout must never read as a proof")
}

func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { chromatic.WithMaxK(0) })
	assert.Panics(t, func() { chromatic.WithWorkers(0) })
	assert.Panics(t, func() { chromatic.WithLogger(nil) })
}
