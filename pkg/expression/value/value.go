// Copyright 2024 The ExpressionParser Authors. All rights reserved.
// This file is part of ExpressionParser and is licensed under
// the GNU General Public License version 3, which is available at
// https://www.gnu.org/licenses/gpl-3.0.html or in the LICENSE file
// located in the root directory of this source tree.

// Package value implements the closed numeric value type the evaluator and
// commutation engine produce: a tagged variant over Integer, Decimal, and
// NaN, with arithmetic that never traps. Division by zero and any operation
// touching NaN produce NaN rather than an error or a panic.
package value

import "math"

// Kind discriminates the variant held by a Value.
type Kind int

const (
	KindInteger Kind = iota
	KindDecimal
	KindNaN
)

// Value is an immutable tagged number: exactly one of an Integer, a
// Decimal, or NaN. The zero Value is Integer 0.
type Value struct {
	kind    Kind
	integer int32
	decimal float64
}

// Integer returns an Integer-tagged Value.
func Integer(v int32) Value { return Value{kind: KindInteger, integer: v} }

// Decimal returns a Decimal-tagged Value.
func Decimal(v float64) Value { return Value{kind: KindDecimal, decimal: v} }

// NaN returns the NaN-tagged Value.
func NaN() Value { return Value{kind: KindNaN} }

// Kind reports which variant v holds.
func (v Value) Kind() Kind { return v.kind }

// IsNaN reports whether v is the NaN variant.
func (v Value) IsNaN() bool { return v.kind == KindNaN }

// Int returns the integer payload; only meaningful when Kind() == KindInteger.
func (v Value) Int() int32 { return v.integer }

// Float returns the decimal payload; only meaningful when Kind() == KindDecimal.
func (v Value) Float() float64 { return v.decimal }

// AsFloat returns v's value widened to float64, regardless of tag. Calling
// it on NaN returns math.NaN().
func (v Value) AsFloat() float64 {
	switch v.kind {
	case KindInteger:
		return float64(v.integer)
	case KindDecimal:
		return v.decimal
	default:
		return math.NaN()
	}
}

func binary(a, b Value, ints func(int32, int32) Value, floats func(float64, float64) Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if a.kind == KindInteger && b.kind == KindInteger {
		return ints(a.integer, b.integer)
	}
	return floats(a.AsFloat(), b.AsFloat())
}

// Add returns a + b.
func Add(a, b Value) Value {
	return binary(a, b,
		func(x, y int32) Value { return Integer(x + y) },
		func(x, y float64) Value { return Decimal(x + y) })
}

// Sub returns a - b.
func Sub(a, b Value) Value {
	return binary(a, b,
		func(x, y int32) Value { return Integer(x - y) },
		func(x, y float64) Value { return Decimal(x - y) })
}

// Mul returns a * b.
func Mul(a, b Value) Value {
	return binary(a, b,
		func(x, y int32) Value { return Integer(x * y) },
		func(x, y float64) Value { return Decimal(x * y) })
}

// Div returns a / b. Division by an integer 0 or decimal 0.0 yields NaN
// rather than trapping. Integer division truncates toward zero.
func Div(a, b Value) Value {
	return binary(a, b,
		func(x, y int32) Value {
			if y == 0 {
				return NaN()
			}
			return Integer(x / y)
		},
		func(x, y float64) Value {
			if y == 0 {
				return NaN()
			}
			return Decimal(x / y)
		})
}

// Pow returns a raised to the power of b. When both operands are integers
// and the exponent is non-negative, the result is an exact Integer; a
// negative integer exponent yields Integer 0. Otherwise both operands are
// widened to float64 and math.Pow is used.
func Pow(a, b Value) Value {
	if a.IsNaN() || b.IsNaN() {
		return NaN()
	}
	if a.kind == KindInteger && b.kind == KindInteger {
		if b.integer < 0 {
			return Integer(0)
		}
		result := int32(1)
		for i := int32(0); i < b.integer; i++ {
			result *= a.integer
		}
		return Integer(result)
	}
	return Decimal(math.Pow(a.AsFloat(), b.AsFloat()))
}

// Neg returns -v, preserving v's tag (Integer stays Integer, Decimal stays
// Decimal, NaN is absorbing).
func Neg(v Value) Value {
	switch v.kind {
	case KindInteger:
		return Integer(-v.integer)
	case KindDecimal:
		return Decimal(-v.decimal)
	default:
		return NaN()
	}
}

// Equal reports whether a and b hold the same tag and numeric payload.
// Two NaN values are considered equal to each other (value.NaN has no
// concept of IEEE unordered comparison; it is a sentinel, not a float).
func Equal(a, b Value) bool {
	if a.kind != b.kind {
		return false
	}
	switch a.kind {
	case KindInteger:
		return a.integer == b.integer
	case KindDecimal:
		return a.decimal == b.decimal
	default:
		return true
	}
}
