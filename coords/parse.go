// SPDX-License-Identifier: MIT
// Package: unitgraph/coords
//
// parse.go — line-level parsing: "{x-expr, y-expr}" → geom.Point.

package coords

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/unitgraph/geom"
)

// ParseLine parses one coordinate line of the form "{x-expr, y-expr}".
//
// Implementation:
//   - Stage 1: Trim and require the outer braces.
//   - Stage 2: Split the body on commas at bracket depth zero only.
//   - Stage 3: Evaluate both components; offsets in errors refer to the whole line.
//
// Errors: *ParseError unwrapping to one of the kind sentinels and to ErrParse.
// A failed line never yields a zero point.
func ParseLine(line string) (geom.Point, error) {
	s := strings.TrimSpace(line)
	if err := checkBalance(s); err != nil {
		return geom.Point{}, err
	}
	if len(s) < 2 || s[0] != '{' || s[len(s)-1] != '}' {
		return geom.Point{}, newParseError(s, -1, ErrMalformedLine)
	}

	parts, offsets := splitTopLevel(s[1:len(s)-1], ',')
	if len(parts) != 2 {
		return geom.Point{}, newParseError(s, -1, ErrMalformedLine)
	}

	var xy [2]float64
	for i, part := range parts {
		if strings.TrimSpace(part) == "" {
			return geom.Point{}, newParseError(s, 1+offsets[i], ErrMalformedLine)
		}
		v, err := Eval(part)
		if err != nil {
			var pe *ParseError
			if errors.As(err, &pe) {
				pos := pe.Pos
				if pos >= 0 {
					pos += 1 + offsets[i]
				}
				return geom.Point{}, newParseError(s, pos, pe.Err)
			}
			return geom.Point{}, err
		}
		xy[i] = v
	}

	return geom.Point{X: xy[0], Y: xy[1]}, nil
}

// splitTopLevel splits s on sep where the bracket depth is zero and returns
// each part together with its starting offset in s.
func splitTopLevel(s string, sep byte) ([]string, []int) {
	var (
		parts   []string
		offsets []int
		depth   int
		start   int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '(', '[', '{':
			depth++
		case ')', ']', '}':
			depth--
		case sep:
			if depth == 0 {
				parts = append(parts, s[start:i])
				offsets = append(offsets, start)
				start = i + 1
			}
		}
	}
	parts = append(parts, s[start:])
	offsets = append(offsets, start)

	return parts, offsets
}

// Format renders p in the input syntax with full float64 precision, so that
// ParseLine(Format(p)) reproduces p exactly.
func Format(p geom.Point) string {
	return fmt.Sprintf("{%s, %s}",
		strconv.FormatFloat(p.X, 'f', -1, 64),
		strconv.FormatFloat(p.Y, 'f', -1, 64))
}
