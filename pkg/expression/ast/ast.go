// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package ast declares the types used to represent parsed arithmetic
// expressions: a tagged variant of node kinds, each carrying the source
// span it was parsed from.
//
// All node types implement Node. Children are owned exclusively by their
// parent; the tree never contains cycles, and a node's Position is set once
// at construction and never mutated afterward.
package ast

import "github.com/Ezward/ExpressionParser/pkg/expression/position"

// Node is implemented by every expression node kind.
type Node interface {
	Pos() position.Position
	exprNode()
}

// base carries the span shared by every concrete node kind.
type base struct {
	Span position.Position
}

func (b base) Pos() position.Position { return b.Span }
func (base) exprNode()                {}

// Sign distinguishes a leading '-' from no sign, attached to number
// literals (via the value they hold) and to Parenthesis nodes.
type Sign int

const (
	Positive Sign = iota
	Negative
)

// NaNNode is the sentinel "no value" node. The parser never produces one;
// it exists for callers and evaluator error paths to construct directly.
type NaNNode struct{ base }

// NewNaN returns a NaN node at span.
func NewNaN(span position.Position) *NaNNode { return &NaNNode{base{span}} }

// IntegerNode is a 32-bit integer literal.
type IntegerNode struct {
	base
	Value int32
}

// NewInteger returns an Integer node.
func NewInteger(span position.Position, value int32) *IntegerNode {
	return &IntegerNode{base{span}, value}
}

// DecimalNode is a floating-point literal.
type DecimalNode struct {
	base
	Value float64
}

// NewDecimal returns a Decimal node.
func NewDecimal(span position.Position, value float64) *DecimalNode {
	return &DecimalNode{base{span}, value}
}

// ParenthesisNode is a parenthesized sub-expression carrying an outer sign;
// Sign == Negative encodes a leading '-' immediately before the '('.
type ParenthesisNode struct {
	base
	Sign  Sign
	Inner Node
}

// NewParenthesis returns a Parenthesis node.
func NewParenthesis(span position.Position, sign Sign, inner Node) *ParenthesisNode {
	return &ParenthesisNode{base{span}, sign, inner}
}

// SumNode is an n-ary sum, |Operands| >= 2, in source order.
type SumNode struct {
	base
	Operands []Node
}

// NewSum returns a Sum node. It panics if fewer than two operands are given,
// since the parser guarantees a chain node is only built once an operator
// has actually been consumed.
func NewSum(span position.Position, operands []Node) *SumNode {
	mustChain(operands)
	return &SumNode{base{span}, operands}
}

// DifferenceNode is an n-ary, left-associative subtraction chain:
// Operands[0] - Operands[1] - ... - Operands[n-1].
type DifferenceNode struct {
	base
	Operands []Node
}

// NewDifference returns a Difference node.
func NewDifference(span position.Position, operands []Node) *DifferenceNode {
	mustChain(operands)
	return &DifferenceNode{base{span}, operands}
}

// ProductNode is an n-ary product, |Operands| >= 2.
type ProductNode struct {
	base
	Operands []Node
}

// NewProduct returns a Product node.
func NewProduct(span position.Position, operands []Node) *ProductNode {
	mustChain(operands)
	return &ProductNode{base{span}, operands}
}

// QuotientNode is an n-ary, left-associative division chain.
type QuotientNode struct {
	base
	Operands []Node
}

// NewQuotient returns a Quotient node.
func NewQuotient(span position.Position, operands []Node) *QuotientNode {
	mustChain(operands)
	return &QuotientNode{base{span}, operands}
}

// PowerNode is binary exponentiation; the grammar allows only one '^', so
// there is no right-associative chain to represent.
type PowerNode struct {
	base
	Base     Node
	Exponent Node
}

// NewPower returns a Power node.
func NewPower(span position.Position, base_, exponent Node) *PowerNode {
	return &PowerNode{base{span}, base_, exponent}
}

func mustChain(operands []Node) {
	if len(operands) < 2 {
		panic("ast: chain node requires at least two operands")
	}
}

// Equal reports whether a and b denote the same tree shape and values,
// ignoring source spans. Two chain nodes are equal only when their
// operands are equal in the same order; operand-order equivalence under
// commutation is a separate, much larger relation computed by the commute
// package, not by Equal.
func Equal(a, b Node) bool {
	switch x := a.(type) {
	case *NaNNode:
		_, ok := b.(*NaNNode)
		return ok
	case *IntegerNode:
		y, ok := b.(*IntegerNode)
		return ok && x.Value == y.Value
	case *DecimalNode:
		y, ok := b.(*DecimalNode)
		return ok && x.Value == y.Value
	case *ParenthesisNode:
		y, ok := b.(*ParenthesisNode)
		return ok && x.Sign == y.Sign && Equal(x.Inner, y.Inner)
	case *SumNode:
		y, ok := b.(*SumNode)
		return ok && equalOperands(x.Operands, y.Operands)
	case *DifferenceNode:
		y, ok := b.(*DifferenceNode)
		return ok && equalOperands(x.Operands, y.Operands)
	case *ProductNode:
		y, ok := b.(*ProductNode)
		return ok && equalOperands(x.Operands, y.Operands)
	case *QuotientNode:
		y, ok := b.(*QuotientNode)
		return ok && equalOperands(x.Operands, y.Operands)
	case *PowerNode:
		y, ok := b.(*PowerNode)
		return ok && Equal(x.Base, y.Base) && Equal(x.Exponent, y.Exponent)
	default:
		return false
	}
}

func equalOperands(a, b []Node) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// IsLeafOrParenthesis reports whether node needs no extra parentheses when
// used as an operand in a fully-parenthesized rendering: a leaf or a node
// that already carries its own parentheses.
func IsLeafOrParenthesis(node Node) bool {
	switch node.(type) {
	case *NaNNode, *IntegerNode, *DecimalNode, *ParenthesisNode:
		return true
	default:
		return false
	}
}
