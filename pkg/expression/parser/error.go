// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package parser

import (
	"fmt"

	"github.com/Ezward/ExpressionParser/pkg/expression/position"
)

// ErrorKind discriminates the four parse failure kinds the grammar can
// produce.
type ErrorKind int

const (
	// Unknown is a catch-all for unreachable parser states. A correct
	// implementation never returns it; it exists for completeness.
	Unknown ErrorKind = iota
	// EndOfInput means the input ended while a required token was still
	// expected (a closing parenthesis, digits after '.' or 'e', ...).
	EndOfInput
	// ExtraInput means parsing completed but non-whitespace input remained.
	ExtraInput
	// Number means a digit run failed to convert to the target numeric
	// type, or a required digit run was missing.
	Number
)

func (k ErrorKind) String() string {
	switch k {
	case EndOfInput:
		return "Unexpected end of input"
	case ExtraInput:
		return "Unexpected input after expression"
	case Number:
		return "Error parsing number"
	default:
		return "Unknown"
	}
}

// Error is the error type returned by Parse. It always carries a span; the
// human-readable Message is implementation detail, not part of the contract.
type Error struct {
	Kind     ErrorKind
	Position position.Position
	Message  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s at %s", e.Kind, e.Position)
}
