// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package scan

import (
	"strings"
	"unicode/utf8"
)

// Predicate reports whether ch should be consumed by a scanner such as
// ZeroOrMore or OneOrMore.
type Predicate func(ch rune) bool

// propagate implements the rule shared by every primitive in this file: a
// scanner never resumes a scan that has already failed, and never reads
// past the end of src.
func propagate(src string, ctx Context) (Context, bool) {
	if !ctx.Matched || ctx.Position.ByteIndex > len(src) {
		return Fail(ctx.Position), true
	}
	return ctx, false
}

// advance moves pos forward by one rune, updating the line counters when
// the consumed rune is '\n'. It mirrors the cursor bookkeeping in a
// hand-written tokenizer's nextch: byte/char indices always move forward,
// and a newline resets the line-start markers to the position just after it.
func advance(src string, pos Position) Position {
	ch, size := utf8.DecodeRuneInString(src[pos.ByteIndex:])
	pos.ByteIndex += size
	pos.CharIndex++
	if ch == '\n' {
		pos.LineIndex++
		pos.LineByteIndex = pos.ByteIndex
		pos.LineCharIndex = pos.CharIndex
	}
	return pos
}

// Literal attempts to match literal exactly at ctx.Position. On any
// character mismatch, or end of input before literal is fully consumed, it
// returns a failing Context positioned at the first mismatching byte.
func Literal(src string, ctx Context, literal string) Context {
	if c, done := propagate(src, ctx); done {
		return c
	}
	pos := ctx.Position
	for _, want := range literal {
		if pos.ByteIndex >= len(src) {
			return Fail(pos)
		}
		got, _ := utf8.DecodeRuneInString(src[pos.ByteIndex:])
		if got != want {
			return Fail(pos)
		}
		pos = advance(src, pos)
	}
	return At(pos)
}

// ZeroOrMore greedily consumes characters satisfying predicate. It always
// matches (possibly consuming nothing) unless the incoming context has
// already failed or is out of range.
func ZeroOrMore(src string, ctx Context, predicate Predicate) Context {
	if c, done := propagate(src, ctx); done {
		return c
	}
	pos := ctx.Position
	for pos.ByteIndex < len(src) {
		ch, _ := utf8.DecodeRuneInString(src[pos.ByteIndex:])
		if !predicate(ch) {
			break
		}
		pos = advance(src, pos)
	}
	return At(pos)
}

// OneOrMore behaves like ZeroOrMore but fails (leaving Position unchanged)
// if no character was consumed.
func OneOrMore(src string, ctx Context, predicate Predicate) Context {
	if c, done := propagate(src, ctx); done {
		return c
	}
	result := ZeroOrMore(src, ctx, predicate)
	if result.Position.ByteIndex == ctx.Position.ByteIndex {
		return Fail(ctx.Position)
	}
	return result
}

// N matches exactly n characters satisfying predicate, failing if fewer are
// available or any of them mismatches.
func N(src string, ctx Context, n int, predicate Predicate) Context {
	if c, done := propagate(src, ctx); done {
		return c
	}
	pos := ctx.Position
	for i := 0; i < n; i++ {
		if pos.ByteIndex >= len(src) {
			return Fail(ctx.Position)
		}
		ch, _ := utf8.DecodeRuneInString(src[pos.ByteIndex:])
		if !predicate(ch) {
			return Fail(ctx.Position)
		}
		pos = advance(src, pos)
	}
	return At(pos)
}

// IsDigit reports whether ch is an ASCII decimal digit.
func IsDigit(ch rune) bool { return '0' <= ch && ch <= '9' }

// IsWhitespace reports whether ch is ASCII whitespace, per the grammar's
// character classification (space, tab, carriage return, newline).
func IsWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

// AtEnd reports whether pos is at or past the end of src.
func AtEnd(src string, pos Position) bool { return pos.ByteIndex >= len(src) }

// Remainder returns the unconsumed suffix of src starting at pos.
func Remainder(src string, pos Position) string { return src[pos.ByteIndex:] }

// TrimmedRemainder reports whether everything left in src from pos on is
// ASCII whitespace.
func TrimmedRemainder(src string, pos Position) bool {
	return strings.TrimFunc(Remainder(src, pos), func(ch rune) bool { return IsWhitespace(ch) }) == ""
}
