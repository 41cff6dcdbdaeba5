// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package scan

import "testing"

func TestLiteral(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		literal string
		want    bool
		wantPos int
	}{
		{"exact match", "abc", "abc", true, 3},
		{"prefix match", "abcdef", "abc", true, 3},
		{"mismatch", "abz", "abc", false, 2},
		{"too short", "ab", "abc", false, 2},
		{"empty literal", "abc", "", true, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := Literal(tt.src, At(Start), tt.literal)
			if ctx.Matched != tt.want {
				t.Fatalf("Literal(%q, %q).Matched = %v, want %v", tt.src, tt.literal, ctx.Matched, tt.want)
			}
			if ctx.Position.ByteIndex != tt.wantPos {
				t.Fatalf("Literal(%q, %q) position = %d, want %d", tt.src, tt.literal, ctx.Position.ByteIndex, tt.wantPos)
			}
		})
	}
}

func TestLiteralTracksLines(t *testing.T) {
	ctx := Literal("a\nb\nc", At(Start), "a\nb\nc")
	if !ctx.Matched {
		t.Fatalf("expected match")
	}
	if ctx.Position.LineIndex != 2 {
		t.Fatalf("LineIndex = %d, want 2", ctx.Position.LineIndex)
	}
	if ctx.Position.LineByteIndex != 4 {
		t.Fatalf("LineByteIndex = %d, want 4", ctx.Position.LineByteIndex)
	}
}

func TestZeroOrMoreAlwaysMatches(t *testing.T) {
	ctx := ZeroOrMore("   ", At(Start), IsWhitespace)
	if !ctx.Matched || ctx.Position.ByteIndex != 3 {
		t.Fatalf("got %+v, want matched at 3", ctx)
	}
	ctx = ZeroOrMore("xyz", At(Start), IsWhitespace)
	if !ctx.Matched || ctx.Position.ByteIndex != 0 {
		t.Fatalf("got %+v, want matched at 0", ctx)
	}
}

func TestOneOrMoreRequiresProgress(t *testing.T) {
	ctx := OneOrMore("123abc", At(Start), IsDigit)
	if !ctx.Matched || ctx.Position.ByteIndex != 3 {
		t.Fatalf("got %+v, want matched at 3", ctx)
	}
	ctx = OneOrMore("abc", At(Start), IsDigit)
	if ctx.Matched {
		t.Fatalf("expected no match, got %+v", ctx)
	}
	if ctx.Position.ByteIndex != 0 {
		t.Fatalf("failure position = %d, want unchanged 0", ctx.Position.ByteIndex)
	}
}

func TestNExactCount(t *testing.T) {
	ctx := N("1234", At(Start), 3, IsDigit)
	if !ctx.Matched || ctx.Position.ByteIndex != 3 {
		t.Fatalf("got %+v, want matched at 3", ctx)
	}
	ctx = N("12", At(Start), 3, IsDigit)
	if ctx.Matched {
		t.Fatalf("expected failure for too few characters")
	}
}

func TestPropagationShortCircuitsOnFailure(t *testing.T) {
	failed := Fail(Position{ByteIndex: 2})
	ctx := Literal("abcdef", failed, "cdef")
	if ctx.Matched {
		t.Fatalf("expected a failing context to stay failed")
	}
	if ctx.Position != failed.Position {
		t.Fatalf("position changed on propagated failure: got %+v, want %+v", ctx.Position, failed.Position)
	}
}

func TestCombinators(t *testing.T) {
	scanA := func(src string, ctx Context) Context { return Literal(src, ctx, "a") }
	scanB := func(src string, ctx Context) Context { return Literal(src, ctx, "b") }
	scanC := func(src string, ctx Context) Context { return Literal(src, ctx, "c") }

	if ctx := Pair(scanA, scanB)("ab", At(Start)); !ctx.Matched || ctx.Position.ByteIndex != 2 {
		t.Fatalf("Pair: got %+v", ctx)
	}
	if ctx := Pair(scanA, scanB)("az", At(Start)); ctx.Matched {
		t.Fatalf("Pair: expected failure")
	}

	if ctx := All(scanA, scanB, scanC)("abc", At(Start)); !ctx.Matched || ctx.Position.ByteIndex != 3 {
		t.Fatalf("All: got %+v", ctx)
	}
	if ctx := All(scanA, scanB, scanC)("abz", At(Start)); ctx.Matched {
		t.Fatalf("All: expected failure")
	}

	any := Any(scanA, scanB, scanC)
	if ctx := any("b", At(Start)); !ctx.Matched || ctx.Position.ByteIndex != 1 {
		t.Fatalf("Any: got %+v", ctx)
	}
	if ctx := any("z", At(Start)); ctx.Matched {
		t.Fatalf("Any: expected failure")
	}
}
