// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package primefield declares the BN254 scalar field of gnark-crypto as a
// reference instance of the field capability. Unlike the other reference
// instances it is a production arithmetic type, which makes it a useful
// check that the contracts fit code not written for them.
package primefield

import (
	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
	"github.com/consensys/algebra/ringlike"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Field is the BN254 scalar field over [fr.Element].
type Field struct{}

var _ ringlike.Field[fr.Element] = Field{}

func (Field) Additive() grouplike.AbelianGroup[operators.Plus, fr.Element] { return add{} }

func (Field) Multiplicative() grouplike.Monoid[operators.Times, fr.Element] { return mul{} }

func (Field) Zero() fr.Element {
	var z fr.Element
	return z
}

func (Field) One() fr.Element {
	var one fr.Element
	one.SetOne()
	return one
}

func (Field) LeftInverseMul(x fr.Element) (fr.Element, bool) {
	var z fr.Element
	if x.IsZero() {
		return z, false
	}
	z.Inverse(&x)
	return z, true
}

func (f Field) RightInverseMul(x fr.Element) (fr.Element, bool) { return f.LeftInverseMul(x) }

func (f Field) InverseMul(x fr.Element) (fr.Element, bool) { return f.LeftInverseMul(x) }

func (Field) CommutativeMul() {}

func (Field) Associates(x, y fr.Element) bool { return x.IsZero() == y.IsZero() }

func (Field) UniqueFactorisation() {}

func (Field) PrincipalIdeals() {}

func (f Field) GCD(a, b fr.Element) fr.Element {
	if a.IsZero() && b.IsZero() {
		return f.Zero()
	}
	return f.One()
}

func (Field) Valuation(x fr.Element) uint64 {
	if x.IsZero() {
		return 0
	}
	return 1
}

func (Field) Units() grouplike.Group[operators.Times, fr.Element] { return units{} }

func (Field) DivRight(x, rhs fr.Element) fr.Element {
	var z fr.Element
	z.Div(&x, &rhs)
	return z
}

func (f Field) DivLeft(x, rhs fr.Element) fr.Element { return f.DivRight(x, rhs) }

func (f Field) Div(x, rhs fr.Element) fr.Element { return f.DivRight(x, rhs) }

type add struct{}

func (add) Operator() operators.Plus { return operators.Plus{} }

func (add) Op(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Add(&x, &y)
	return z
}

func (add) OpAssign(x *fr.Element, y fr.Element) { x.Add(x, &y) }

func (add) Identity() fr.Element {
	var z fr.Element
	return z
}

func (add) Inverse(x fr.Element) fr.Element {
	var z fr.Element
	z.Neg(&x)
	return z
}

func (add) Associative() {}

func (add) Commutative() {}

type mul struct{}

func (mul) Operator() operators.Times { return operators.Times{} }

func (mul) Op(x, y fr.Element) fr.Element {
	var z fr.Element
	z.Mul(&x, &y)
	return z
}

func (mul) OpAssign(x *fr.Element, y fr.Element) { x.Mul(x, &y) }

func (mul) Identity() fr.Element {
	var one fr.Element
	one.SetOne()
	return one
}

func (mul) Associative() {}

func (mul) Commutative() {}

// units is the multiplicative group of nonzero field elements.
// gnark-crypto maps Inverse(0) to 0; per the division-ring contract the
// zero input is undefined behavior anyway.
type units struct{}

func (units) Operator() operators.Times { return operators.Times{} }

func (units) Op(x, y fr.Element) fr.Element { return mul{}.Op(x, y) }

func (u units) OpAssign(x *fr.Element, y fr.Element) { x.Mul(x, &y) }

func (units) Identity() fr.Element {
	var one fr.Element
	one.SetOne()
	return one
}

func (units) Inverse(x fr.Element) fr.Element {
	var z fr.Element
	z.Inverse(&x)
	return z
}

func (units) Associative() {}

func (units) Commutative() {}
