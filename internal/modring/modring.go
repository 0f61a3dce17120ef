// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package modring declares the integers modulo n as a reference instance of
// the commutative ring capability. For composite n the ring has zero
// divisors (2·2 = 0 mod 4), which makes it the canonical exercise for the
// partial multiplicative inverse queries.
//
// Elements are residues in [0, n) of an unsigned representation; the
// witnesses carry the modulus. Moduli close to the representation's upper
// bound overflow during reduction, the usual representation limit.
package modring

import (
	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
	"github.com/consensys/algebra/ringlike"
	"golang.org/x/exp/constraints"
)

// Ring is Z/nZ for a fixed modulus n >= 2.
type Ring[T constraints.Unsigned] struct {
	modulus T
}

var _ ringlike.CommutativeRing[uint64] = Ring[uint64]{}

// New returns the ring of integers modulo modulus. It panics for a modulus
// below 2; the one-element ring is a separate reference instance.
func New[T constraints.Unsigned](modulus T) Ring[T] {
	if modulus < 2 {
		panic("modring: modulus must be at least 2")
	}
	return Ring[T]{modulus: modulus}
}

// Modulus returns n.
func (r Ring[T]) Modulus() T { return r.modulus }

func (r Ring[T]) Additive() grouplike.AbelianGroup[operators.Plus, T] {
	return add[T]{modulus: r.modulus}
}

func (r Ring[T]) Multiplicative() grouplike.Monoid[operators.Times, T] {
	return mul[T]{modulus: r.modulus}
}

func (r Ring[T]) Zero() T { return 0 }

func (r Ring[T]) One() T { return 1 }

// LeftInverseMul scans for an i with i·x = 1 mod n. The scan is linear in
// the modulus, which is fine for the small moduli a reference instance
// works with.
func (r Ring[T]) LeftInverseMul(x T) (T, bool) {
	x %= r.modulus
	for i := T(1); i < r.modulus; i++ {
		if (i*x)%r.modulus == 1 {
			return i, true
		}
	}
	return 0, false
}

func (r Ring[T]) RightInverseMul(x T) (T, bool) { return r.LeftInverseMul(x) }

func (r Ring[T]) InverseMul(x T) (T, bool) { return r.LeftInverseMul(x) }

func (r Ring[T]) CommutativeMul() {}

type add[T constraints.Unsigned] struct {
	modulus T
}

func (add[T]) Operator() operators.Plus { return operators.Plus{} }

func (a add[T]) Op(x, y T) T { return (x%a.modulus + y%a.modulus) % a.modulus }

func (a add[T]) OpAssign(x *T, y T) { *x = a.Op(*x, y) }

func (a add[T]) Identity() T { return 0 }

func (a add[T]) Inverse(x T) T { return (a.modulus - x%a.modulus) % a.modulus }

func (add[T]) Associative() {}

func (add[T]) Commutative() {}

type mul[T constraints.Unsigned] struct {
	modulus T
}

func (mul[T]) Operator() operators.Times { return operators.Times{} }

func (m mul[T]) Op(x, y T) T { return ((x % m.modulus) * (y % m.modulus)) % m.modulus }

func (m mul[T]) OpAssign(x *T, y T) { *x = m.Op(*x, y) }

func (m mul[T]) Identity() T { return 1 }

func (mul[T]) Associative() {}

func (mul[T]) Commutative() {}
