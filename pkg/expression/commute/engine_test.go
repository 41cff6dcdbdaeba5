// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package commute

import (
	"testing"

	"github.com/Ezward/ExpressionParser/pkg/expression/eval"
	"github.com/Ezward/ExpressionParser/pkg/expression/parser"
	"github.com/Ezward/ExpressionParser/pkg/expression/value"
)

func TestCommuteSumContainsAllOrderings(t *testing.T) {
	node, err := parser.Parse("1 + 2 + 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Commute(node)
	want := map[string]bool{
		"1 + 2 + 3": true, "1 + 3 + 2": true, "2 + 1 + 3": true,
		"2 + 3 + 1": true, "3 + 1 + 2": true, "3 + 2 + 1": true,
	}
	if len(got) != 6 {
		t.Fatalf("len(Commute) = %d, want 6", len(got))
	}
	for _, s := range got {
		if !want[s] {
			t.Fatalf("unexpected commutation %q", s)
		}
		delete(want, s)
	}
	if len(want) != 0 {
		t.Fatalf("missing commutations: %v", want)
	}
}

func TestCommuteDifferencePreservesOrder(t *testing.T) {
	node, err := parser.Parse("1 - 2 - 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	got := Commute(node)
	if len(got) != 1 || got[0] != "1 - 2 - 3" {
		t.Fatalf("Commute(1 - 2 - 3) = %v, want exactly [\"1 - 2 - 3\"]", got)
	}
}

func TestCommuteMembersReparseAndEvaluateEqually(t *testing.T) {
	node, err := parser.Parse("1 + 2 * 3")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := eval.Evaluate(node)
	for _, s := range Commute(node) {
		reparsed, rerr := parser.Parse(s)
		if rerr != nil {
			t.Fatalf("Parse(Commute member %q): %v", s, rerr)
		}
		got := eval.Evaluate(reparsed)
		if !value.Equal(got, want) {
			t.Fatalf("Evaluate(%q) = %+v, want %+v", s, got, want)
		}
	}
}

func TestEquivalentScenarios(t *testing.T) {
	tests := []struct {
		target, candidate string
		want              bool
	}{
		{"1 * 2 * 3", "3 * 2 * 1", true},
		{"2 * 3 + 4 * 5", "5 * 4 + 3 * 2", true},
		{"2 - 3", "3 - 2", false},
	}
	for _, tt := range tests {
		t.Run(tt.target+" vs "+tt.candidate, func(t *testing.T) {
			got, err := Equivalent(tt.target, tt.candidate)
			if err != nil {
				t.Fatalf("Equivalent(%q, %q): %v", tt.target, tt.candidate, err)
			}
			if got != tt.want {
				t.Fatalf("Equivalent(%q, %q) = %v, want %v", tt.target, tt.candidate, got, tt.want)
			}
		})
	}
}

func TestEquivalentIsReflexive(t *testing.T) {
	srcs := []string{"1 + 2 + 3", "2 * 3 + 4 * 5", "(1 + 2) * 3", "1 - 2 - 3", "2.0 ^ -1"}
	for _, src := range srcs {
		got, err := Equivalent(src, src)
		if err != nil {
			t.Fatalf("Equivalent(%q, %q): %v", src, src, err)
		}
		if !got {
			t.Fatalf("Equivalent(%q, %q) = false, want true", src, src)
		}
	}
}

func TestEquivalentIsSymmetric(t *testing.T) {
	pairs := [][2]string{
		{"1 * 2 * 3", "3 * 2 * 1"},
		{"2 * 3 + 4 * 5", "5 * 4 + 3 * 2"},
		{"2 - 3", "3 - 2"},
	}
	for _, p := range pairs {
		ab, err := Equivalent(p[0], p[1])
		if err != nil {
			t.Fatalf("Equivalent: %v", err)
		}
		ba, err := Equivalent(p[1], p[0])
		if err != nil {
			t.Fatalf("Equivalent: %v", err)
		}
		if ab != ba {
			t.Fatalf("Equivalent(%q, %q)=%v but Equivalent(%q, %q)=%v", p[0], p[1], ab, p[1], p[0], ba)
		}
	}
}

func TestEquivalentPropagatesParseErrors(t *testing.T) {
	_, err := Equivalent("1 +", "1")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
}

func TestEquivalentStripsRedundantOuterParens(t *testing.T) {
	got, err := Equivalent("(1 + 2)", "1 + 2")
	if err != nil {
		t.Fatalf("Equivalent: %v", err)
	}
	if !got {
		t.Fatalf("Equivalent(\"(1 + 2)\", \"1 + 2\") = false, want true")
	}
}
