// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package zint declares the integers, represented as int64, as a reference
// instance of the capability hierarchy: an additive abelian group and a
// Euclidean/GCD domain.
//
// int64 is a proper approximation of the integers; operations whose result
// does not fit panic. Generators in law checks stay well inside the
// representable range.
package zint

import (
	"math"

	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
	"github.com/consensys/algebra/ringlike"
)

// Add is the additive structure of the integers.
type Add struct{}

// Mul is the multiplicative structure of the integers.
type Mul struct{}

// Domain is the ring of integers with its full classification ladder, up
// to Euclidean and GCD domain. The integers are not a field: only 1 and -1
// are units.
type Domain struct{}

var (
	_ grouplike.AbelianGroup[operators.Plus, int64]          = Add{}
	_ grouplike.Group[operators.Plus, int64]                 = Add{}
	_ grouplike.Loop[operators.Plus, int64]                  = Add{}
	_ grouplike.AssociativeQuasigroup[operators.Plus, int64] = Add{}
	_ grouplike.CommutativeMonoid[operators.Times, int64]    = Mul{}
	_ ringlike.GCDDomain[int64]                              = Domain{}
	_ ringlike.EuclideanDomain[int64]                        = Domain{}
)

func (Add) Operator() operators.Plus { return operators.Plus{} }

func (Add) Op(x, y int64) int64 { return addChecked(x, y) }

func (Add) OpAssign(x *int64, y int64) { *x = addChecked(*x, y) }

func (Add) Identity() int64 { return 0 }

func (Add) Inverse(x int64) int64 { return negChecked(x) }

func (Add) Associative() {}

func (Add) Commutative() {}

func (Mul) Operator() operators.Times { return operators.Times{} }

func (Mul) Op(x, y int64) int64 { return mulChecked(x, y) }

func (Mul) OpAssign(x *int64, y int64) { *x = mulChecked(*x, y) }

func (Mul) Identity() int64 { return 1 }

func (Mul) Associative() {}

func (Mul) Commutative() {}

func (Domain) Additive() grouplike.AbelianGroup[operators.Plus, int64] { return Add{} }

func (Domain) Multiplicative() grouplike.Monoid[operators.Times, int64] { return Mul{} }

func (Domain) Zero() int64 { return 0 }

func (Domain) One() int64 { return 1 }

func (Domain) LeftInverseMul(x int64) (int64, bool) {
	if x == 1 || x == -1 {
		return x, true
	}
	return 0, false
}

func (d Domain) RightInverseMul(x int64) (int64, bool) { return d.LeftInverseMul(x) }

func (d Domain) InverseMul(x int64) (int64, bool) { return d.LeftInverseMul(x) }

func (Domain) CommutativeMul() {}

// Associates reports whether x = u·y for a unit u, that is x = ±y.
func (Domain) Associates(x, y int64) bool { return x == y || x == -y }

func (Domain) UniqueFactorisation() {}

func (Domain) PrincipalIdeals() {}

// GCD returns the non-negative greatest common divisor of a and b, with
// GCD(0, 0) = 0.
func (Domain) GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		a = negChecked(a)
	}
	return a
}

// Valuation returns |x|.
func (Domain) Valuation(x int64) uint64 {
	if x < 0 {
		return uint64(-x)
	}
	return uint64(x)
}

// Divides reports whether c divides x; zero divides only zero. It is the
// divisibility predicate matching GCD, used by the gcd law checks.
func (Domain) Divides(c, x int64) bool {
	if c == 0 {
		return x == 0
	}
	return x%c == 0
}

// Neg is negation as a standalone unary operation on the integers.
type Neg struct{}

var _ operators.UnaryOperator[operators.Untagged, int64] = Neg{}

func (Neg) Operator() operators.Untagged { return operators.Untagged{} }

func (Neg) UnaryOp(x int64) int64 { return negChecked(x) }

func (Neg) UnaryOpAssign(x *int64) { *x = negChecked(*x) }

func addChecked(x, y int64) int64 {
	z := x + y
	if (z > x) != (y > 0) && y != 0 {
		panic("zint: addition overflows int64")
	}
	return z
}

func negChecked(x int64) int64 {
	if x == math.MinInt64 {
		panic("zint: negation overflows int64")
	}
	return -x
}

func mulChecked(x, y int64) int64 {
	if x == 0 || y == 0 {
		return 0
	}
	if (x == math.MinInt64 && y == -1) || (y == math.MinInt64 && x == -1) {
		panic("zint: multiplication overflows int64")
	}
	z := x * y
	if z/y != x {
		panic("zint: multiplication overflows int64")
	}
	return z
}
