// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package commute

import (
	"fmt"
	"strings"

	"github.com/Ezward/ExpressionParser/pkg/expression/ast"
	"github.com/Ezward/ExpressionParser/pkg/expression/render"
)

// Commute enumerates the equivalence class of node's source rendering under
// commutativity and associativity of '+' (within any Sum) and '*' (within
// any Product); Difference and Quotient preserve operand order (only their
// sub-expressions recurse), since '-' and '/' are neither commutative nor
// associative. The returned strings use the canonical "spaced" renderer, so
// every member both re-parses and is a valid input to render/format-style
// textual comparison. Deduplication is not performed: the count may over-
// or under-shoot n! depending on operand equivalence.
func Commute(node ast.Node) []string {
	switch n := node.(type) {
	case *ast.NaNNode, *ast.IntegerNode, *ast.DecimalNode:
		return []string{render.Format(node)}
	case *ast.ParenthesisNode:
		inner := Commute(n.Inner)
		prefix := "("
		if n.Sign == ast.Negative {
			prefix = "-("
		}
		return Map(inner, func(s string) string { return prefix + s + ")" })
	case *ast.SumNode:
		return commuteAssociative(n.Operands, "+")
	case *ast.ProductNode:
		return commuteAssociative(n.Operands, "*")
	case *ast.DifferenceNode:
		return commuteOrdered(n.Operands, "-")
	case *ast.QuotientNode:
		return commuteOrdered(n.Operands, "/")
	case *ast.PowerNode:
		tuples := Cartesian([][]string{Commute(n.Base), Commute(n.Exponent)})
		return Map(tuples, func(t []string) string { return t[0] + "^" + t[1] })
	default:
		panic(fmt.Sprintf("commute: unhandled node type %T", node))
	}
}

// commuteAssociative handles Sum/Product: every reordering of the operand
// list, combined with every choice of equivalent rendering for each operand.
func commuteAssociative(operands []ast.Node, op string) []string {
	sets := Map(operands, Commute)
	orderings := Permutations(sets)
	var result []string
	for _, ordering := range orderings {
		for _, tuple := range Cartesian(ordering) {
			result = append(result, strings.Join(tuple, " "+op+" "))
		}
	}
	return result
}

// commuteOrdered handles Difference/Quotient: operand order is fixed, only
// each operand's own sub-expression equivalents vary.
func commuteOrdered(operands []ast.Node, op string) []string {
	sets := Map(operands, Commute)
	tuples := Cartesian(sets)
	return Map(tuples, func(t []string) string { return strings.Join(t, " "+op+" ") })
}
