// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ringlike

import (
	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
)

// DivisionRing is a [Ring] whose nonzero elements form a group under
// multiplication: InverseMul reports absent only for Zero.
//
// DivRight and DivLeft require a nonzero rhs. Passing Zero as rhs is
// undefined behavior; the operations stay branch-free for callers that
// already exclude the zero case, in contrast with the ring's safe,
// absence-reporting inverse queries.
type DivisionRing[T any] interface {
	Ring[T]

	// Units returns the group of units: the nonzero elements under the
	// multiplicative operation. Its Inverse is only defined on nonzero
	// values; calling it on Zero is undefined behavior.
	Units() grouplike.Group[operators.Times, T]

	// DivRight returns x·rhs⁻¹. rhs must be nonzero.
	DivRight(x, rhs T) T

	// DivLeft returns rhs⁻¹·x. rhs must be nonzero.
	DivLeft(x, rhs T) T
}

// Field is a commutative [DivisionRing] that is also a [EuclideanDomain]:
// every nonzero element is invertible under multiplication.
type Field[T any] interface {
	EuclideanDomain[T]
	DivisionRing[T]

	// Div returns x·rhs⁻¹. rhs must be nonzero; passing Zero is undefined
	// behavior, as for [DivisionRing.DivRight].
	Div(x, rhs T) T
}
