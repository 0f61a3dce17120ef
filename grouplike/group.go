// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package grouplike

import (
	"github.com/consensys/algebra/operators"
)

// Group is an associative, unital, invertible [Magma]: a [Monoid] where
// every element has a two-sided inverse.
type Group[O operators.Tag, T any] interface {
	Semigroup[O, T]
	UnitalMagma[O, T]
	Quasigroup[O, T]
}

// AbelianGroup is a commutative [Group]. The integers under addition are
// the canonical example.
type AbelianGroup[O operators.Tag, T any] interface {
	Semigroup[O, T]
	UnitalMagma[O, T]
	Quasigroup[O, T]
	CommutativeMagma[O, T]
}
