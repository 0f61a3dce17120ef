// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ringlike

import (
	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
)

// Ring is a set with an additive [grouplike.AbelianGroup] structure and a
// multiplicative [grouplike.Monoid] structure, linked by distributivity:
//
//	x·(y+z) = x·y + x·z and (y+z)·x = y·x + z·x for all x, y, z.
//
// Zero is the additive identity and One the multiplicative identity; both
// must agree with the identities of the corresponding witnesses.
//
// Multiplicative inversion is partial: 2 has no inverse in the integers mod
// 4. The three inverse queries therefore report absence explicitly instead
// of terminating. Proof obligation: whenever LeftInverseMul and
// RightInverseMul are both present for the same element, their values are
// equal and equal InverseMul's result (a consequence of associativity).
type Ring[T any] interface {
	// Additive returns the additive structure of the ring.
	Additive() grouplike.AbelianGroup[operators.Plus, T]

	// Multiplicative returns the multiplicative structure of the ring.
	Multiplicative() grouplike.Monoid[operators.Times, T]

	// Zero returns the additive identity.
	Zero() T

	// One returns the multiplicative identity.
	One() T

	// LeftInverseMul returns an i with i·x = One, and whether one exists.
	LeftInverseMul(x T) (T, bool)

	// RightInverseMul returns an i with x·i = One, and whether one exists.
	RightInverseMul(x T) (T, bool)

	// InverseMul returns the two-sided inverse of x, and whether it exists.
	InverseMul(x T) (T, bool)
}

// InverseAdd returns the additive inverse of x, delegating to the ring's
// additive quasigroup. Additive inversion is total.
func InverseAdd[T any](r Ring[T], x T) T {
	return r.Additive().Inverse(x)
}

// IsUnit reports whether x has a two-sided multiplicative inverse.
func IsUnit[T any](r Ring[T], x T) bool {
	_, ok := r.InverseMul(x)
	return ok
}

// CommutativeRing is a [Ring] whose multiplication is commutative, making
// the multiplicative structure a commutative monoid.
type CommutativeRing[T any] interface {
	Ring[T]

	// CommutativeMul claims x·y = y·x under the multiplicative operation.
	// Implementations leave the body empty.
	CommutativeMul()
}
