// SPDX-License-Identifier: MIT
// Package: unitgraph/coords
//
// errors.go — sentinel errors and the ParseError carrier.

package coords

import (
	"errors"
	"fmt"
)

var (
	// ErrParse is matched by every error this package returns for bad input.
	ErrParse = errors.New("coords: parse error")

	// ErrMalformedLine indicates the line is not of the form {x, y}.
	ErrMalformedLine = errors.New("coords: malformed coordinate line")

	// ErrUnbalanced indicates mismatched parentheses or square brackets.
	ErrUnbalanced = errors.New("coords: unbalanced brackets")

	// ErrNonNumericToken indicates a token that is neither a number nor a known function.
	ErrNonNumericToken = errors.New("coords: non-numeric token")

	// ErrUnsupportedOperator indicates an operator character the grammar does not know.
	ErrUnsupportedOperator = errors.New("coords: unsupported operator")

	// ErrDivisionByZero indicates a zero divisor during evaluation.
	ErrDivisionByZero = errors.New("coords: division by zero")

	// ErrDomain indicates a square root of a negative value.
	ErrDomain = errors.New("coords: square root of negative value")
)

// ParseError describes why a single input line could not be turned into a point.
type ParseError struct {
	// Line is the 1-based line number in the stream, or 0 for ParseLine calls.
	Line int
	// Text is the offending input (trimmed).
	Text string
	// Pos is the byte offset inside the failing expression, or -1.
	Pos int
	// Err is the kind sentinel (ErrMalformedLine, ErrUnbalanced, ...).
	Err error
}

// Error implements error.
func (e *ParseError) Error() string {
	loc := ""
	if e.Line > 0 {
		loc = fmt.Sprintf("line %d: ", e.Line)
	}
	if e.Pos >= 0 {
		return fmt.Sprintf("%s%v at offset %d in %q", loc, e.Err, e.Pos, e.Text)
	}
	return fmt.Sprintf("%s%v in %q", loc, e.Err, e.Text)
}

// Unwrap exposes both the kind sentinel and ErrParse to errors.Is.
func (e *ParseError) Unwrap() []error { return []error{e.Err, ErrParse} }

func newParseError(text string, pos int, kind error) *ParseError {
	return &ParseError{Text: text, Pos: pos, Err: kind}
}
