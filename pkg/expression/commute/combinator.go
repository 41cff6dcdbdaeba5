// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package commute implements the combinator toolkit the commutation engine
// runs on (Permutations, Cartesian, Concat, Map, Filter) plus the engine
// itself (Commute, Equivalent). Every sequence here is an ordinary Go slice
// used with value semantics: an operation always returns a freshly built
// slice and never mutates its input, which is what spec.md's "persistent
// list" requirement actually demands of these operations — nothing here
// needs structural sharing at the scale a trie-backed persistent vector
// provides, since expression ASTs are small.
package commute

// Permutations returns every ordering of xs. For |xs| <= 1 it returns the
// one-element set {xs} (or, for an empty xs, the empty slice already
// expressed as the single empty ordering). For |xs| = n it returns all n!
// orderings, in no particular order.
func Permutations[T any](xs []T) [][]T {
	if len(xs) <= 1 {
		single := make([]T, len(xs))
		copy(single, xs)
		return [][]T{single}
	}
	var result [][]T
	for i := range xs {
		rest := make([]T, 0, len(xs)-1)
		rest = append(rest, xs[:i]...)
		rest = append(rest, xs[i+1:]...)
		for _, perm := range Permutations(rest) {
			ordering := make([]T, 0, len(xs))
			ordering = append(ordering, xs[i])
			ordering = append(ordering, perm...)
			result = append(result, ordering)
		}
	}
	return result
}

// Cartesian returns every sequence [e1, ..., ek] with ei drawn from xss[i].
// An empty outer sequence yields the single empty tuple; any empty inner
// sequence yields no tuples at all.
func Cartesian[T any](xss [][]T) [][]T {
	result := [][]T{{}}
	for _, xs := range xss {
		if len(xs) == 0 {
			return nil
		}
		var next [][]T
		for _, prefix := range result {
			for _, x := range xs {
				tuple := make([]T, len(prefix), len(prefix)+1)
				copy(tuple, prefix)
				tuple = append(tuple, x)
				next = append(next, tuple)
			}
		}
		result = next
	}
	return result
}

// Concat returns the concatenation of every sequence in xss, in order.
func Concat[T any](xss [][]T) []T {
	var result []T
	for _, xs := range xss {
		result = append(result, xs...)
	}
	return result
}

// Map applies f to every element of xs, returning a freshly built slice.
func Map[T, U any](xs []T, f func(T) U) []U {
	result := make([]U, len(xs))
	for i, x := range xs {
		result[i] = f(x)
	}
	return result
}

// Filter returns the elements of xs for which keep reports true.
func Filter[T any](xs []T, keep func(T) bool) []T {
	var result []T
	for _, x := range xs {
		if keep(x) {
			result = append(result, x)
		}
	}
	return result
}
