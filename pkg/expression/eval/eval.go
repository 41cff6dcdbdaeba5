// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package eval folds an expression AST into a value.Value. Evaluation is
// total and side-effect-free: it never panics, and every runtime arithmetic
// failure (division by zero, an explicit NaN node) becomes value.NaN()
// rather than an error.
package eval

import (
	"fmt"

	"github.com/Ezward/ExpressionParser/pkg/expression/ast"
	"github.com/Ezward/ExpressionParser/pkg/expression/value"
)

// Evaluate folds node into its value.
func Evaluate(node ast.Node) value.Value {
	switch n := node.(type) {
	case *ast.NaNNode:
		return value.NaN()
	case *ast.IntegerNode:
		return value.Integer(n.Value)
	case *ast.DecimalNode:
		return value.Decimal(n.Value)
	case *ast.ParenthesisNode:
		inner := Evaluate(n.Inner)
		if n.Sign == ast.Negative {
			return value.Neg(inner)
		}
		return inner
	case *ast.SumNode:
		return foldLeft(n.Operands, value.Add)
	case *ast.DifferenceNode:
		return foldLeft(n.Operands, value.Sub)
	case *ast.ProductNode:
		return foldLeft(n.Operands, value.Mul)
	case *ast.QuotientNode:
		return foldLeft(n.Operands, value.Div)
	case *ast.PowerNode:
		return value.Pow(Evaluate(n.Base), Evaluate(n.Exponent))
	default:
		panic(fmt.Sprintf("eval: unhandled node type %T", node))
	}
}

// foldLeft evaluates operands and combines them left to right with op,
// starting from the first operand's value.
func foldLeft(operands []ast.Node, op func(a, b value.Value) value.Value) value.Value {
	acc := Evaluate(operands[0])
	for _, operand := range operands[1:] {
		acc = op(acc, Evaluate(operand))
	}
	return acc
}
