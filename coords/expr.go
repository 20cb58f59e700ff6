// SPDX-License-Identifier: MIT
// Package: unitgraph/coords
//
// expr.go — tokenizer and recursive-descent evaluator for coordinate expressions.
//
// Grammar (juxtaposition is multiplication, as in exported CAS text "2 Sqrt[3]"):
//
//	expr    = term { ("+" | "-") term }
//	term    = unary { [ "*" | "/" ] unary }
//	unary   = ("+" | "-") unary | power
//	power   = primary [ "^" unary ]
//	primary = number | "Sqrt" open expr close | open expr close
//	open    = "(" | "["        close = ")" | "]"

package coords

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokNumber tokenKind = iota
	tokIdent
	tokOp
	tokOpen
	tokClose
	tokComma
	tokEOF
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// sqrtSlack absorbs rounding noise like Sqrt[3 - 3.0000000000000004].
const sqrtSlack = 1e-12

// closing maps each opening bracket to the one that must close it.
var closing = map[byte]byte{'(': ')', '[': ']', '{': '}'}

// Eval evaluates a single coordinate expression such as "Sqrt[3]/2" or
// "(1/6) (3 + Sqrt[33])". Failures are *ParseError values.
func Eval(expr string) (float64, error) {
	toks, err := tokenize(expr)
	if err != nil {
		return 0, err
	}
	p := &parser{src: expr, toks: toks}
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return 0, newParseError(expr, t.pos, ErrMalformedLine)
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, newParseError(expr, -1, ErrDomain)
	}

	return v, nil
}

// checkBalance verifies bracket nesting so that mismatches are reported as
// ErrUnbalanced rather than as a confusing downstream token error.
func checkBalance(s string) error {
	var stack []int
	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '(', '[', '{':
			stack = append(stack, i)
		case ')', ']', '}':
			if len(stack) == 0 || closing[s[stack[len(stack)-1]]] != c {
				return newParseError(s, i, ErrUnbalanced)
			}
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) > 0 {
		return newParseError(s, stack[len(stack)-1], ErrUnbalanced)
	}

	return nil
}

func tokenize(s string) ([]token, error) {
	if err := checkBalance(s); err != nil {
		return nil, err
	}
	var toks []token
	for i := 0; i < len(s); {
		c := rune(s[i])
		switch {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			i++
		case unicode.IsDigit(c) || c == '.':
			j := i
			for j < len(s) && (unicode.IsDigit(rune(s[j])) || s[j] == '.') {
				j++
			}
			toks = append(toks, token{kind: tokNumber, text: s[i:j], pos: i})
			i = j
		case unicode.IsLetter(c) || c == '_' || c >= 0x80:
			j := i
			for j < len(s) && (unicode.IsLetter(rune(s[j])) || unicode.IsDigit(rune(s[j])) || s[j] == '_' || s[j] >= 0x80) {
				j++
			}
			toks = append(toks, token{kind: tokIdent, text: s[i:j], pos: i})
			i = j
		case strings.ContainsRune("+-*/^", c):
			toks = append(toks, token{kind: tokOp, text: string(c), pos: i})
			i++
		case c == '(' || c == '[':
			toks = append(toks, token{kind: tokOpen, text: string(c), pos: i})
			i++
		case c == ')' || c == ']':
			toks = append(toks, token{kind: tokClose, text: string(c), pos: i})
			i++
		case c == ',':
			toks = append(toks, token{kind: tokComma, text: ",", pos: i})
			i++
		default:
			return nil, newParseError(s, i, ErrUnsupportedOperator)
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(s)})

	return toks, nil
}

type parser struct {
	src  string
	toks []token
	i    int
}

func (p *parser) peek() token { return p.toks[p.i] }

func (p *parser) next() token {
	t := p.toks[p.i]
	if t.kind != tokEOF {
		p.i++
	}
	return t
}

func (p *parser) fail(t token, kind error) error { return newParseError(p.src, t.pos, kind) }

func (p *parser) expr() (float64, error) {
	v, err := p.term()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		if t.kind != tokOp || (t.text != "+" && t.text != "-") {
			return v, nil
		}
		p.next()
		rhs, err := p.term()
		if err != nil {
			return 0, err
		}
		if t.text == "+" {
			v += rhs
		} else {
			v -= rhs
		}
	}
}

// startsFactor reports whether t can begin an implicitly multiplied factor.
func startsFactor(t token) bool {
	return t.kind == tokNumber || t.kind == tokIdent || t.kind == tokOpen
}

func (p *parser) term() (float64, error) {
	v, err := p.unary()
	if err != nil {
		return 0, err
	}
	for {
		t := p.peek()
		switch {
		case t.kind == tokOp && t.text == "*":
			p.next()
			rhs, err := p.unary()
			if err != nil {
				return 0, err
			}
			v *= rhs
		case t.kind == tokOp && t.text == "/":
			p.next()
			rhs, err := p.unary()
			if err != nil {
				return 0, err
			}
			if rhs == 0 {
				return 0, p.fail(t, ErrDivisionByZero)
			}
			v /= rhs
		case startsFactor(t):
			rhs, err := p.unary()
			if err != nil {
				return 0, err
			}
			v *= rhs
		default:
			return v, nil
		}
	}
}

func (p *parser) unary() (float64, error) {
	t := p.peek()
	if t.kind == tokOp && (t.text == "-" || t.text == "+") {
		p.next()
		v, err := p.unary()
		if err != nil {
			return 0, err
		}
		if t.text == "-" {
			return -v, nil
		}
		return v, nil
	}

	return p.power()
}

func (p *parser) power() (float64, error) {
	base, err := p.primary()
	if err != nil {
		return 0, err
	}
	if t := p.peek(); t.kind == tokOp && t.text == "^" {
		p.next()
		exp, err := p.unary()
		if err != nil {
			return 0, err
		}
		if base == 0 && exp < 0 {
			return 0, p.fail(t, ErrDivisionByZero)
		}
		v := math.Pow(base, exp)
		if math.IsNaN(v) {
			return 0, p.fail(t, ErrDomain)
		}
		return v, nil
	}

	return base, nil
}

func (p *parser) primary() (float64, error) {
	t := p.next()
	switch t.kind {
	case tokNumber:
		v, err := strconv.ParseFloat(t.text, 64)
		if err != nil {
			return 0, p.fail(t, ErrNonNumericToken)
		}
		return v, nil

	case tokIdent:
		if !strings.EqualFold(t.text, "sqrt") {
			return 0, p.fail(t, ErrNonNumericToken)
		}
		if p.peek().kind != tokOpen {
			return 0, p.fail(p.peek(), ErrMalformedLine)
		}
		arg, err := p.group()
		if err != nil {
			return 0, err
		}
		if arg < 0 {
			if arg < -sqrtSlack {
				return 0, p.fail(t, ErrDomain)
			}
			arg = 0
		}
		return math.Sqrt(arg), nil

	case tokOpen:
		p.i--
		return p.group()

	default:
		return 0, p.fail(t, ErrMalformedLine)
	}
}

// group consumes open expr close; bracket pairing was validated by checkBalance.
func (p *parser) group() (float64, error) {
	p.next()
	v, err := p.expr()
	if err != nil {
		return 0, err
	}
	if t := p.next(); t.kind != tokClose {
		return 0, p.fail(t, ErrMalformedLine)
	}

	return v, nil
}
