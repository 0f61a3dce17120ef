// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package grouplike

import (
	"github.com/consensys/algebra/operators"
)

// Magma is a set with one closed binary operation, defined for all inputs.
// It adds nothing to [operators.BinaryOperator] beyond its name in the
// hierarchy.
type Magma[O operators.Tag, T any] interface {
	operators.BinaryOperator[O, T]
}

// Semigroup is an associative [Magma]:
//
//	(x·y)·z = x·(y·z) for all x, y, z.
//
// Associativity is a proof obligation on the implementer; the marker method
// makes the claim explicit.
type Semigroup[O operators.Tag, T any] interface {
	Magma[O, T]

	// Associative claims (x·y)·z = x·(y·z). Implementations leave the body
	// empty.
	Associative()
}

// Quasigroup is a [Magma] where every element has a two-sided inverse
// relative to the ambient identity:
//
//	x·Inverse(x) = Inverse(x)·x = identity, for all x.
//
// Inverse is total. Unlike the multiplicative inverse queries on a ring,
// there is no absent case to report here: an element without an inverse
// means the type is not a Quasigroup.
type Quasigroup[O operators.Tag, T any] interface {
	Magma[O, T]

	// Inverse returns the two-sided inverse of x.
	Inverse(x T) T
}

// UnitalMagma is a [Magma] with a designated identity element:
//
//	x·Identity() = Identity()·x = x for all x.
type UnitalMagma[O operators.Tag, T any] interface {
	Magma[O, T]

	// Identity returns the identity element of the operation.
	Identity() T
}

// CommutativeMagma is a commutative [Magma]:
//
//	x·y = y·x for all x, y.
type CommutativeMagma[O operators.Tag, T any] interface {
	Magma[O, T]

	// Commutative claims x·y = y·x. Implementations leave the body empty.
	Commutative()
}
