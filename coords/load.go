// SPDX-License-Identifier: MIT
// Package: unitgraph/coords
//
// load.go — streaming loader for coordinate files.
//
// Contract:
//   • One coordinate per line; blank lines are ignored.
//   • The first non-blank line is treated as a header and skipped when it does
//     not start with '{'.
//   • Policy SkipInvalid records the ParseError and continues; Abort returns it.

package coords

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/unitgraph/geom"
	"github.com/katalvlaran/unitgraph/logging"
)

// Policy decides what happens to a line that fails to parse.
type Policy int

const (
	// Abort stops the load at the first bad line and returns its error.
	Abort Policy = iota
	// SkipInvalid records the bad line in the LoadReport and continues.
	SkipInvalid
)

// maxLineBytes bounds a single input line; long nested radicals stay well below it.
const maxLineBytes = 1 << 20

// LoadReport summarises a Load call.
type LoadReport struct {
	// Header is the skipped header line, if any.
	Header string
	// Lines is the number of lines read, including header and blanks.
	Lines int
	// Skipped holds one *ParseError per rejected line (SkipInvalid only).
	Skipped []*ParseError
}

// LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	policy Policy
	log    logging.Logger
}

// WithPolicy selects the error policy (default Abort).
func WithPolicy(p Policy) LoadOption {
	if p != Abort && p != SkipInvalid {
		panic("coords: WithPolicy(unknown policy)")
	}
	return func(c *loadConfig) { c.policy = p }
}

// WithLogger routes skipped-line diagnostics to l.
func WithLogger(l logging.Logger) LoadOption {
	if l == nil {
		panic("coords: WithLogger(nil)")
	}
	return func(c *loadConfig) { c.log = l }
}

// Load reads coordinate lines from r and returns the parsed points in input order.
//
// Errors:
//   - *ParseError (with Line set) under Abort.
//   - I/O errors from r, wrapped.
func Load(r io.Reader, opts ...LoadOption) ([]geom.Point, *LoadReport, error) {
	cfg := loadConfig{policy: Abort, log: logging.NewNopLogger()}
	for _, opt := range opts {
		opt(&cfg)
	}

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var (
		points   []geom.Point
		report   = &LoadReport{}
		seenData bool
	)
	for sc.Scan() {
		report.Lines++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if !seenData && !strings.HasPrefix(line, "{") && report.Header == "" {
			report.Header = line
			seenData = true
			continue
		}
		seenData = true

		p, err := ParseLine(line)
		if err == nil {
			points = append(points, p)
			continue
		}

		var pe *ParseError
		if !errors.As(err, &pe) {
			return nil, report, fmt.Errorf("Load: line %d: %w", report.Lines, err)
		}
		pe.Line = report.Lines
		if cfg.policy == Abort {
			return nil, report, pe
		}
		report.Skipped = append(report.Skipped, pe)
		cfg.log.Warn("skipping coordinate line", logging.Int("line", pe.Line), logging.Err(pe))
	}
	if err := sc.Err(); err != nil {
		return nil, report, fmt.Errorf("Load: read: %w", err)
	}

	return points, report, nil
}
