// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package grouplike

import (
	"github.com/consensys/algebra/operators"
)

// Monoid is a [Semigroup] with identity, that is, an associative
// [UnitalMagma]. The naturals under addition form a monoid, as do strings
// under concatenation.
type Monoid[O operators.Tag, T any] interface {
	Semigroup[O, T]
	UnitalMagma[O, T]
}

// AssociativeQuasigroup is a [Quasigroup] whose operation is associative.
type AssociativeQuasigroup[O operators.Tag, T any] interface {
	Semigroup[O, T]
	Quasigroup[O, T]
}

// Loop is a [Quasigroup] with identity.
type Loop[O operators.Tag, T any] interface {
	Quasigroup[O, T]
	UnitalMagma[O, T]
}

// CommutativeMonoid is a commutative [Monoid].
type CommutativeMonoid[O operators.Tag, T any] interface {
	Semigroup[O, T]
	UnitalMagma[O, T]
	CommutativeMagma[O, T]
}
