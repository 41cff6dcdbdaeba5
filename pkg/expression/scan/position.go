// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package scan implements the character-level scanning primitives the
// parser is built from: an immutable cursor position plus a handful of
// composable scanners (literal match, zero-or-more, one-or-more, exactly-n)
// and the combinators that glue them into larger scanners (pair, all, any).
package scan

import "fmt"

// Position is an immutable record of where a scan has reached in a source
// string. All five counters are measured from the start of the string and
// are non-decreasing as a scan advances.
type Position struct {
	ByteIndex     int // byte offset of the cursor
	CharIndex     int // rune offset of the cursor
	LineIndex     int // 0-based line number
	LineByteIndex int // byte offset of the start of the current line
	LineCharIndex int // rune offset of the start of the current line
}

// LineByteOffset returns the cursor's byte offset within its current line.
func (p Position) LineByteOffset() int { return p.ByteIndex - p.LineByteIndex }

// LineCharOffset returns the cursor's rune offset within its current line.
func (p Position) LineCharOffset() int { return p.CharIndex - p.LineCharIndex }

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.LineIndex+1, p.LineCharOffset()+1)
}

// Start is the zero Position: the beginning of a source string.
var Start = Position{}

// Context is the result threaded through every scanner call: whether the
// scan matched, and the position it left off at. A scanner that fails
// leaves Position at the first byte that did not match so callers can build
// an error span from it.
type Context struct {
	Matched  bool
	Position Position
}

// At returns a successful Context rooted at p.
func At(p Position) Context { return Context{Matched: true, Position: p} }

// Fail returns a failing Context at p.
func Fail(p Position) Context { return Context{Matched: false, Position: p} }
