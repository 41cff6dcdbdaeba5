// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

package scan

// Scanner is the shape shared by every primitive and combinator in this
// package: take a source string and the context carried in from the
// previous scan, return the context for this one.
type Scanner func(src string, ctx Context) Context

// Pair runs left then, only if left matched, right. It short-circuits on a
// left failure exactly as a hand-written `if !ok { return }` sequence would.
func Pair(left, right Scanner) Scanner {
	return func(src string, ctx Context) Context {
		lctx := left(src, ctx)
		if !lctx.Matched {
			return lctx
		}
		return right(src, lctx)
	}
}

// All runs each scanner in seq in order, short-circuiting on the first
// failure. It is Pair generalized to an arbitrary-length sequence.
func All(seq ...Scanner) Scanner {
	return func(src string, ctx Context) Context {
		cur := ctx
		for _, s := range seq {
			cur = s(src, cur)
			if !cur.Matched {
				return cur
			}
		}
		return cur
	}
}

// Any tries each scanner in seq in order against the same starting context,
// returning the first that succeeds. If none succeed, it returns the last
// attempt's failing context.
func Any(seq ...Scanner) Scanner {
	return func(src string, ctx Context) Context {
		var last Context
		for _, s := range seq {
			result := s(src, ctx)
			if result.Matched {
				return result
			}
			last = result
		}
		return last
	}
}
