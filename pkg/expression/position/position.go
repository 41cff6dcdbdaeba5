// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package position defines the span attached to every AST node and parse
// error: a pair of scan.Position marking where a piece of source text
// begins and where it ends.
package position

import (
	"fmt"

	"github.com/Ezward/ExpressionParser/pkg/expression/scan"
)

// Position is a span (Start, End) into the source string. Start is the
// first character of the node, after any leading whitespace; End is the
// first character immediately after the node.
type Position struct {
	Start scan.Position
	End   scan.Position
}

// New builds a Position from a start/end pair of scan positions.
func New(start, end scan.Position) Position {
	return Position{Start: start, End: end}
}

func (p Position) String() string {
	if p.Start == p.End {
		return p.Start.String()
	}
	return fmt.Sprintf("%s-%s", p.Start, p.End)
}
