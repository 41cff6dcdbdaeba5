// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package parser implements a recursive-descent parser for the four-function
// arithmetic grammar, built on the scan package's primitives. It
// deliberately separates addition from subtraction and multiplication from
// division, so that `a+b+c` and `a*b*c` collapse into one n-ary node each
// rather than a chain of binary ones:
//
//	digit      = [0-9]
//	integer    = "-"? digit+
//	decimal    = "-"? digit+ "." digit+
//	scientific = "-"? digit+ ("." digit+)? ("e"|"E") digit+
//	number     = integer | decimal | scientific
//	value      = "-"? "(" expression ")"  |  number
//	power      = value ("^" value)?
//	quotient   = power  (("/" | "÷") power)*
//	product    = quotient (("*" | "×") quotient)*
//	difference = product  ("-" product)*
//	sum        = difference ("+" difference)*
//	expression = sum
//
// The grammar's recursion order encodes precedence: '+' binds loosest, then
// '-', then '*', then '/', then '^'. The parser never panics; every failure
// path returns an *Error with a span.
package parser

import (
	"strconv"

	"github.com/Ezward/ExpressionParser/pkg/expression/ast"
	"github.com/Ezward/ExpressionParser/pkg/expression/position"
	"github.com/Ezward/ExpressionParser/pkg/expression/scan"
)

// Parse parses src as a complete expression. Trailing whitespace is
// tolerated; any other unconsumed input is reported as ExtraInput.
func Parse(src string) (ast.Node, *Error) {
	p := &parser{src: src}
	node, err := p.parseExpression()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !scan.AtEnd(src, p.pos) {
		return nil, &Error{
			Kind:     ExtraInput,
			Position: position.New(p.pos, scan.Position{ByteIndex: len(src), CharIndex: p.pos.CharIndex + runeCount(scan.Remainder(src, p.pos))}),
			Message:  "unexpected input after expression",
		}
	}
	return node, nil
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}

type parser struct {
	src string
	pos scan.Position
}

func (p *parser) skipSpace() {
	p.pos = scan.ZeroOrMore(p.src, scan.At(p.pos), scan.IsWhitespace).Position
}

func (p *parser) tryLiteral(lit string) bool {
	ctx := scan.Literal(p.src, scan.At(p.pos), lit)
	if !ctx.Matched {
		return false
	}
	p.pos = ctx.Position
	return true
}

func (p *parser) atEOF() bool { return scan.AtEnd(p.src, p.pos) }

// parseExpression parses the "expression" production: just a sum.
func (p *parser) parseExpression() (ast.Node, *Error) {
	return p.parseSum()
}

func (p *parser) parseSum() (ast.Node, *Error) {
	return p.parseChain(p.parseDifference, []string{"+"}, func(span position.Position, operands []ast.Node) ast.Node { return ast.NewSum(span, operands) })
}

func (p *parser) parseDifference() (ast.Node, *Error) {
	return p.parseChain(p.parseProduct, []string{"-"}, func(span position.Position, operands []ast.Node) ast.Node { return ast.NewDifference(span, operands) })
}

func (p *parser) parseProduct() (ast.Node, *Error) {
	return p.parseChain(p.parseQuotient, []string{"*", "×"}, func(span position.Position, operands []ast.Node) ast.Node { return ast.NewProduct(span, operands) })
}

func (p *parser) parseQuotient() (ast.Node, *Error) {
	return p.parseChain(p.parsePower, []string{"/", "÷"}, func(span position.Position, operands []ast.Node) ast.Node { return ast.NewQuotient(span, operands) })
}

// parseChain implements the common "operand (op operand)*" shape shared by
// sum, difference, product, and quotient: parse the left operand, then
// while one of ops is seen, parse the next operand and append it. Only once
// an operator has actually been consumed is the n-ary node built; otherwise
// the bare left operand is returned unchanged, guaranteeing every built
// chain node has at least two operands.
func (p *parser) parseChain(
	operand func() (ast.Node, *Error),
	ops []string,
	build func(position.Position, []ast.Node) ast.Node,
) (ast.Node, *Error) {
	start := p.pos
	first, err := operand()
	if err != nil {
		return nil, err
	}
	operands := []ast.Node{first}
	for {
		p.skipSpace()
		beforeOp := p.pos
		matched := false
		for _, op := range ops {
			if p.tryLiteral(op) {
				matched = true
				break
			}
		}
		if !matched {
			p.pos = beforeOp
			break
		}
		next, err := operand()
		if err != nil {
			return nil, err
		}
		operands = append(operands, next)
	}
	if len(operands) == 1 {
		return operands[0], nil
	}
	return build(position.New(start, p.pos), operands), nil
}

func (p *parser) parsePower() (ast.Node, *Error) {
	start := p.pos
	base, err := p.parseValue()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	beforeOp := p.pos
	if p.tryLiteral("^") {
		exponent, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		return ast.NewPower(position.New(start, p.pos), base, exponent), nil
	}
	p.pos = beforeOp
	return base, nil
}

// parseValue implements `value = "-"? "(" expression ")" | number`. The
// leading sign and parenthesis are tried speculatively; on failure the
// cursor is rewound so the number production can try its own independent
// leading '-'. The sign binds tightly to the '(' that follows it: no
// whitespace is allowed between them, the same as a number's sign binds
// tightly to its digits.
func (p *parser) parseValue() (ast.Node, *Error) {
	p.skipSpace()
	start := p.pos

	sign := ast.Positive
	if p.tryLiteral("-") {
		sign = ast.Negative
	}
	if p.tryLiteral("(") {
		inner, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if !p.tryLiteral(")") {
			return nil, p.expectedError(start, "expected closing ')'")
		}
		return ast.NewParenthesis(position.New(start, p.pos), sign, inner), nil
	}

	p.pos = start
	return p.parseNumber()
}

// parseNumber implements `number = integer | decimal | scientific`.
func (p *parser) parseNumber() (ast.Node, *Error) {
	start := p.pos
	pos := p.pos

	if ctx := scan.Literal(p.src, scan.At(pos), "-"); ctx.Matched {
		pos = ctx.Position
	}

	digits := scan.OneOrMore(p.src, scan.At(pos), scan.IsDigit)
	if !digits.Matched {
		return nil, p.digitError(pos, start, "expected one or more digits")
	}
	pos = digits.Position

	isFloat := false
	if dot := scan.Literal(p.src, scan.At(pos), "."); dot.Matched {
		frac := scan.OneOrMore(p.src, dot, scan.IsDigit)
		if !frac.Matched {
			return nil, p.digitError(dot.Position, start, "expected digits after '.'")
		}
		pos = frac.Position
		isFloat = true
	}

	if exp := scan.Any(
		func(src string, ctx scan.Context) scan.Context { return scan.Literal(src, ctx, "e") },
		func(src string, ctx scan.Context) scan.Context { return scan.Literal(src, ctx, "E") },
	)(p.src, scan.At(pos)); exp.Matched {
		mantissa := scan.OneOrMore(p.src, exp, scan.IsDigit)
		if !mantissa.Matched {
			return nil, p.digitError(exp.Position, start, "expected digits after exponent marker")
		}
		pos = mantissa.Position
		isFloat = true
	}

	span := position.New(start, pos)
	text := p.src[start.ByteIndex:pos.ByteIndex]
	p.pos = pos

	if !isFloat {
		n, convErr := strconv.ParseInt(text, 10, 32)
		if convErr != nil {
			return nil, &Error{Kind: Number, Position: span, Message: "integer literal out of range: " + text}
		}
		return ast.NewInteger(span, int32(n)), nil
	}
	f, convErr := strconv.ParseFloat(text, 64)
	if convErr != nil {
		return nil, &Error{Kind: Number, Position: span, Message: "decimal literal out of range: " + text}
	}
	return ast.NewDecimal(span, f), nil
}

// digitError reports EndOfInput when the failure happened because the
// source ran out, and Number otherwise (a required digit run that hit a
// non-digit character before end of input).
func (p *parser) digitError(at scan.Position, start scan.Position, msg string) *Error {
	span := position.New(start, at)
	if scan.AtEnd(p.src, at) {
		return &Error{Kind: EndOfInput, Position: span, Message: "unexpected end of input"}
	}
	return &Error{Kind: Number, Position: span, Message: msg}
}

// expectedError reports EndOfInput for a missing expected token (such as a
// closing parenthesis), whether or not input remains: neither ExtraInput
// nor Number describes "the grammar expected something else here", and
// EndOfInput is the alternative spec.md names for this case.
func (p *parser) expectedError(start scan.Position, msg string) *Error {
	return &Error{Kind: EndOfInput, Position: position.New(start, p.pos), Message: msg}
}
