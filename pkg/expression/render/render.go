// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package render turns an expression AST back into canonical source text.
// Format(parse(s)) always re-parses to a node structurally equal to
// parse(s) (up to Sum/Product operand order); FormatFullyParenthesized
// additionally wraps every non-leaf in parentheses, which is what the
// commute package uses to make textual equality a safe proxy for
// structural equivalence.
package render

import (
	"strconv"
	"strings"

	"github.com/Ezward/ExpressionParser/pkg/expression/ast"
	"github.com/Ezward/ExpressionParser/pkg/expression/value"
)

// FormatValue renders an evaluated value.Value the same way a literal of
// that tag would be rendered, so a round-tripped evaluation prints exactly
// what a user would expect from the source expression.
func FormatValue(v value.Value) string {
	switch v.Kind() {
	case value.KindInteger:
		return strconv.FormatInt(int64(v.Int()), 10)
	case value.KindDecimal:
		return formatDecimal(v.Float())
	default:
		return "NaN"
	}
}

// Format renders node in its minimal canonical form: binary operators
// surrounded by single spaces, no redundant parentheses beyond those the
// AST itself carries.
func Format(node ast.Node) string {
	var b strings.Builder
	write(&b, node, false)
	return b.String()
}

// FormatFullyParenthesized renders node with every non-leaf sub-expression
// wrapped in parentheses.
func FormatFullyParenthesized(node ast.Node) string {
	var b strings.Builder
	write(&b, node, true)
	return b.String()
}

func write(b *strings.Builder, node ast.Node, full bool) {
	switch n := node.(type) {
	case *ast.NaNNode:
		b.WriteString("NaN")
	case *ast.IntegerNode:
		b.WriteString(strconv.FormatInt(int64(n.Value), 10))
	case *ast.DecimalNode:
		b.WriteString(formatDecimal(n.Value))
	case *ast.ParenthesisNode:
		if n.Sign == ast.Negative {
			b.WriteByte('-')
		}
		b.WriteByte('(')
		write(b, n.Inner, full)
		b.WriteByte(')')
	case *ast.SumNode:
		writeChain(b, n.Operands, "+", full)
	case *ast.DifferenceNode:
		writeChain(b, n.Operands, "-", full)
	case *ast.ProductNode:
		writeChain(b, n.Operands, "*", full)
	case *ast.QuotientNode:
		writeChain(b, n.Operands, "/", full)
	case *ast.PowerNode:
		writeOperand(b, n.Base, full)
		b.WriteString("^")
		writeOperand(b, n.Exponent, full)
	}
}

// writeOperand wraps a non-leaf operand in parentheses when full is true;
// leaves (and already-parenthesized nodes) are written as-is.
func writeOperand(b *strings.Builder, node ast.Node, full bool) {
	if full && !ast.IsLeafOrParenthesis(node) {
		b.WriteByte('(')
		write(b, node, full)
		b.WriteByte(')')
		return
	}
	write(b, node, full)
}

func writeChain(b *strings.Builder, operands []ast.Node, op string, full bool) {
	for i, operand := range operands {
		if i > 0 {
			b.WriteByte(' ')
			b.WriteString(op)
			b.WriteByte(' ')
		}
		writeOperand(b, operand, full)
	}
}

// formatDecimal renders a float64 the way the parser's decimal literal
// grammar can read back: always with a fractional part (an integral value
// like 4.0 stays "4.0", never collapses to "4", which would re-parse as an
// Integer node instead of a Decimal one), and never with a sign before a
// scientific exponent, since the exponent production accepts no sign at
// all. strconv.FormatFloat's shortest 'g' form writes a signed exponent for
// magnitudes at or above 1e6 or below 1e-4 (e.g. "1.5e+21", "1e-05"): the
// '+' is dropped, and a negative exponent is replaced by the plain
// fixed-point form ("0.00001").
func formatDecimal(v float64) string {
	s := strconv.FormatFloat(v, 'g', -1, 64)
	if strings.Contains(s, "e-") {
		s = strconv.FormatFloat(v, 'f', -1, 64)
	}
	s = strings.Replace(s, "e+", "e", 1)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}
