// Package coords turns symbolic coordinate text into geom.Point values.
//
// Input lines have the shape
//
//	{x-expr, y-expr}
//
// where each expression is built from integer or decimal literals, the binary
// operators + - * / ^, unary minus, parentheses, and nested square roots
// written either Sqrt[...] or Sqrt(...). Component separation tracks bracket
// depth, so commas inside nested brackets never split a coordinate.
//
// Values are float64 approximations; downstream adjacency tests rely on a
// tolerance, never on exact equality.
//
// Errors:
//
//	ErrParse               - umbrella sentinel; every ParseError unwraps to it.
//	ErrMalformedLine       - missing braces or wrong number of components.
//	ErrUnbalanced          - unbalanced ( ) or [ ].
//	ErrNonNumericToken     - identifier or token that is not a number or Sqrt.
//	ErrUnsupportedOperator - operator character outside + - * / ^.
//	ErrDivisionByZero      - division by zero during evaluation.
//	ErrDomain              - square root of a negative value.
//
// Load reads a whole stream: one coordinate per line, an optional header line,
// blank lines ignored, and a Policy deciding whether a bad line is skipped
// (and reported) or aborts the load.
package coords
