// SPDX-License-Identifier: MIT
// Package: unitgraph/sat
//
// cnf.go — CNF container and DIMACS serialisation.

package sat

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
)

// ErrBadLiteral indicates a zero literal or one whose variable exceeds CNF.Variables.
var ErrBadLiteral = errors.New("sat: literal out of range")

// CNF is a formula in conjunctive normal form over variables 1..Variables.
type CNF struct {
	Variables int
	Clauses   [][]int
}

// NewCNF returns an empty formula over n variables with room for clauses.
func NewCNF(n, clauses int) *CNF {
	return &CNF{Variables: n, Clauses: make([][]int, 0, clauses)}
}

// AddClause appends a clause. The literal slice is retained, not copied.
func (f *CNF) AddClause(lits ...int) {
	f.Clauses = append(f.Clauses, lits)
}

// Literals returns the total number of literal occurrences.
func (f *CNF) Literals() int {
	n := 0
	for _, c := range f.Clauses {
		n += len(c)
	}
	return n
}

// Validate checks every literal is non-zero and within ±Variables.
func (f *CNF) Validate() error {
	for i, c := range f.Clauses {
		for _, lit := range c {
			if lit == 0 || lit > f.Variables || -lit > f.Variables {
				return fmt.Errorf("Validate: clause %d literal %d (variables=%d): %w", i, lit, f.Variables, ErrBadLiteral)
			}
		}
	}
	return nil
}

// WriteDIMACS writes f in DIMACS CNF format, optionally preceded by comment lines.
func (f *CNF) WriteDIMACS(w io.Writer, comments ...string) error {
	bw := bufio.NewWriter(w)
	for _, c := range comments {
		if _, err := fmt.Fprintf(bw, "c %s\n", c); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(bw, "p cnf %d %d\n", f.Variables, len(f.Clauses)); err != nil {
		return err
	}
	buf := make([]byte, 0, 64)
	for _, clause := range f.Clauses {
		buf = buf[:0]
		for _, lit := range clause {
			buf = strconv.AppendInt(buf, int64(lit), 10)
			buf = append(buf, ' ')
		}
		buf = append(buf, '0', '\n')
		if _, err := bw.Write(buf); err != nil {
			return err
		}
	}
	return bw.Flush()
}

// Eval reports whether model (model[v-1] is variable v) satisfies every clause.
func (f *CNF) Eval(model []bool) bool {
	for _, clause := range f.Clauses {
		ok := false
		for _, lit := range clause {
			v := lit
			if v < 0 {
				v = -v
			}
			if v-1 >= len(model) {
				continue
			}
			if model[v-1] == (lit > 0) {
				ok = true
				break
			}
		}
		if !ok {
			return false
		}
	}
	return true
}
