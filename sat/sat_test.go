package sat_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/unitgraph/sat"
)

func TestCNF_WriteDIMACS(t *testing.T) {
	f := sat.NewCNF(3, 2)
	f.AddClause(1, -2)
	f.AddClause(2, 3)

	var buf bytes.Buffer
	require.NoError(t, f.WriteDIMACS(&buf, "k=2"))
	assert.Equal(t, "c k=2\np cnf 3 2\n1 -2 0\n2 3 0\n", buf.String())
	assert.Equal(t, 4, f.Literals())
}

func TestCNF_Validate(t *testing.T) {
	f := sat.NewCNF(2, 1)
	f.AddClause(1, -3)
	require.ErrorIs(t, f.Validate(), sat.ErrBadLiteral)

	f = sat.NewCNF(2, 1)
	f.AddClause(0)
	require.ErrorIs(t, f.Validate(), sat.ErrBadLiteral)
}

func TestCNF_Eval(t *testing.T) {
	f := sat.NewCNF(2, 2)
	f.AddClause(1, 2)
	f.AddClause(-1, -2)
	assert.True(t, f.Eval([]bool{true, false}))
	assert.False(t, f.Eval([]bool{true, true}))
	assert.False(t, f.Eval([]bool{false, false}))
}

// pigeonhole encodes "p pigeons fit in h holes, one per hole"; UNSAT iff p > h.
func pigeonhole(p, h int) *sat.CNF {
	v := func(i, j int) int { return i*h + j + 1 }
	f := sat.NewCNF(p*h, 0)
	for i := 0; i < p; i++ {
		c := make([]int, 0, h)
		for j := 0; j < h; j++ {
			c = append(c, v(i, j))
		}
		f.AddClause(c...)
	}
	for j := 0; j < h; j++ {
		for a := 0; a < p; a++ {
			for b := a + 1; b < p; b++ {
				f.AddClause(-v(a, j), -v(b, j))
			}
		}
	}
	return f
}

func TestGophersat_Verdicts(t *testing.T) {
	s := sat.NewGophersat()
	ctx := context.Background()

	res, err := s.Solve(ctx, pigeonhole(3, 3))
	require.NoError(t, err)
	require.Equal(t, sat.Satisfiable, res.Status)
	require.Len(t, res.Model, 9)
	assert.True(t, pigeonhole(3, 3).Eval(res.Model))

	res, err = s.Solve(ctx, pigeonhole(4, 3))
	require.NoError(t, err)
	assert.Equal(t, sat.Unsatisfiable, res.Status)
	assert.Nil(t, res.Model)
}

func TestGophersat_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := sat.NewGophersat().Solve(ctx, pigeonhole(2, 2))
	require.ErrorIs(t, err, context.Canceled)
}

func TestGophersat_RejectsBadLiteral(t *testing.T) {
	f := sat.NewCNF(1, 1)
	f.AddClause(1, 2)
	_, err := sat.NewGophersat().Solve(context.Background(), f)
	require.ErrorIs(t, err, sat.ErrBadLiteral)
}

func TestGophersat_UnusedVariablesAreFalse(t *testing.T) {
	f := sat.NewCNF(4, 1)
	f.AddClause(1, 2)
	res, err := sat.NewGophersat().Solve(context.Background(), f)
	require.NoError(t, err)
	require.Equal(t, sat.Satisfiable, res.Status)
	require.Len(t, res.Model, 4)
	assert.True(t, f.Eval(res.Model))
}

func TestGophersat_AbandonedSearchHoldsSlot(t *testing.T) {
	s := sat.NewGophersat(sat.WithMaxInFlight(1))

	// pigeonhole(10, 9) runs far longer than the deadline
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := s.Solve(ctx, pigeonhole(10, 9))
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the abandoned search still owns the only slot
	ctx2, cancel2 := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel2()
	_, err = s.Solve(ctx2, pigeonhole(2, 2))
	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestGophersat_SlotsReleasedAfterVerdict(t *testing.T) {
	s := sat.NewGophersat(sat.WithMaxInFlight(1))
	for i := 0; i < 3; i++ {
		res, err := s.Solve(context.Background(), pigeonhole(3, 3))
		require.NoError(t, err)
		assert.Equal(t, sat.Satisfiable, res.Status)
	}
	assert.Panics(t, func() { sat.WithMaxInFlight(0) })
}

func TestStatus_String(t *testing.T) {
	assert.Equal(t, "SAT", sat.Satisfiable.String())
	assert.Equal(t, "UNSAT", sat.Unsatisfiable.String())
	assert.Equal(t, "UNKNOWN", sat.Unknown.String())
}
