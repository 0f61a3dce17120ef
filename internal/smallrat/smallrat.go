// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package smallrat declares the rational numbers, represented as a pair of
// big.Int, as a reference instance of the field capability. The
// representation is exact, so no operation here can exhaust it short of
// memory.
package smallrat

import (
	"math/big"

	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
	"github.com/consensys/algebra/ringlike"
)

// Rational is a rational number. Values built through [New] or produced by
// the field operations are reduced, with a positive denominator. The zero
// value of the type is not a valid Rational; use New or [Field.Zero].
type Rational struct {
	numerator   big.Int
	denominator big.Int
}

// New returns numerator/denominator in lowest terms. It panics if
// denominator is zero.
func New(numerator, denominator int64) Rational {
	if denominator == 0 {
		panic("smallrat: zero denominator")
	}
	var x Rational
	x.numerator.SetInt64(numerator)
	x.denominator.SetInt64(denominator)
	x.simplify()
	return x
}

// IsZero reports whether x is zero.
func (x Rational) IsZero() bool {
	return x.numerator.Sign() == 0
}

// Equal reports whether x and y denote the same rational. It compares by
// cross-multiplication, so it does not rely on both sides being reduced.
func (x Rational) Equal(y Rational) bool {
	var l, r big.Int
	l.Mul(&x.numerator, &y.denominator)
	r.Mul(&y.numerator, &x.denominator)
	return l.Cmp(&r) == 0
}

func (x Rational) String() string {
	if x.denominator.Cmp(big.NewInt(1)) == 0 {
		return x.numerator.String()
	}
	return x.numerator.String() + "/" + x.denominator.String()
}

// simplify reduces x to lowest terms with a positive denominator. A zero
// denominator (the result of inverting zero, which the contracts forbid)
// is left untouched.
func (x *Rational) simplify() {
	if x.denominator.Sign() == 0 {
		return
	}
	if x.denominator.Sign() < 0 {
		x.numerator.Neg(&x.numerator)
		x.denominator.Neg(&x.denominator)
	}
	var gcd big.Int
	gcd.GCD(nil, nil, new(big.Int).Abs(&x.numerator), &x.denominator)
	if gcd.Sign() != 0 {
		x.numerator.Quo(&x.numerator, &gcd)
		x.denominator.Quo(&x.denominator, &gcd)
	}
}

// Field is the field of rationals over [Rational].
type Field struct{}

var _ ringlike.Field[Rational] = Field{}

func (Field) Additive() grouplike.AbelianGroup[operators.Plus, Rational] { return add{} }

func (Field) Multiplicative() grouplike.Monoid[operators.Times, Rational] { return mul{} }

func (Field) Zero() Rational { return New(0, 1) }

func (Field) One() Rational { return New(1, 1) }

func (Field) LeftInverseMul(x Rational) (Rational, bool) {
	if x.IsZero() {
		return New(0, 1), false
	}
	return reciprocal(x), true
}

func (f Field) RightInverseMul(x Rational) (Rational, bool) { return f.LeftInverseMul(x) }

func (f Field) InverseMul(x Rational) (Rational, bool) { return f.LeftInverseMul(x) }

func (Field) CommutativeMul() {}

// Associates: in a field every nonzero element is a unit, so two elements
// associate iff both are zero or both are nonzero.
func (Field) Associates(x, y Rational) bool { return x.IsZero() == y.IsZero() }

func (Field) UniqueFactorisation() {}

func (Field) PrincipalIdeals() {}

// GCD returns Zero when both arguments are zero and One otherwise; any
// unit is a gcd of elements that are not both zero.
func (Field) GCD(a, b Rational) Rational {
	if a.IsZero() && b.IsZero() {
		return New(0, 1)
	}
	return New(1, 1)
}

// Valuation is 0 on zero and 1 elsewhere; in a field division never leaves
// a nonzero remainder.
func (Field) Valuation(x Rational) uint64 {
	if x.IsZero() {
		return 0
	}
	return 1
}

func (Field) Units() grouplike.Group[operators.Times, Rational] { return units{} }

func (Field) DivRight(x, rhs Rational) Rational { return mul{}.Op(x, reciprocal(rhs)) }

func (Field) DivLeft(x, rhs Rational) Rational { return mul{}.Op(reciprocal(rhs), x) }

func (f Field) Div(x, rhs Rational) Rational { return f.DivRight(x, rhs) }

// reciprocal swaps numerator and denominator. Inverting zero yields a
// value with a zero denominator; every caller sits behind either an IsZero
// check or a documented nonzero precondition.
func reciprocal(x Rational) Rational {
	var z Rational
	z.numerator.Set(&x.denominator)
	z.denominator.Set(&x.numerator)
	z.simplify()
	return z
}

type add struct{}

func (add) Operator() operators.Plus { return operators.Plus{} }

func (add) Op(x, y Rational) Rational {
	var z Rational
	var t big.Int
	z.numerator.Mul(&x.numerator, &y.denominator)
	t.Mul(&y.numerator, &x.denominator)
	z.numerator.Add(&z.numerator, &t)
	z.denominator.Mul(&x.denominator, &y.denominator)
	z.simplify()
	return z
}

func (a add) OpAssign(x *Rational, y Rational) { *x = a.Op(*x, y) }

func (add) Identity() Rational { return New(0, 1) }

func (add) Inverse(x Rational) Rational {
	var z Rational
	z.numerator.Neg(&x.numerator)
	z.denominator.Set(&x.denominator)
	return z
}

func (add) Associative() {}

func (add) Commutative() {}

type mul struct{}

func (mul) Operator() operators.Times { return operators.Times{} }

func (mul) Op(x, y Rational) Rational {
	var z Rational
	z.numerator.Mul(&x.numerator, &y.numerator)
	z.denominator.Mul(&x.denominator, &y.denominator)
	z.simplify()
	return z
}

func (m mul) OpAssign(x *Rational, y Rational) { *x = m.Op(*x, y) }

func (mul) Identity() Rational { return New(1, 1) }

func (mul) Associative() {}

func (mul) Commutative() {}

// units is the multiplicative group of the nonzero rationals.
type units struct{}

func (units) Operator() operators.Times { return operators.Times{} }

func (units) Op(x, y Rational) Rational { return mul{}.Op(x, y) }

func (u units) OpAssign(x *Rational, y Rational) { *x = u.Op(*x, y) }

func (units) Identity() Rational { return New(1, 1) }

func (units) Inverse(x Rational) Rational { return reciprocal(x) }

func (units) Associative() {}

func (units) Commutative() {}
