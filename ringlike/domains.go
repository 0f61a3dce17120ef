// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package ringlike

// IntegralDomain is a [CommutativeRing] with no zero divisors:
//
//	x·y = Zero implies x = Zero or y = Zero.
//
// The no-zero-divisor law is a proof obligation.
type IntegralDomain[T any] interface {
	CommutativeRing[T]

	// Associates reports whether x = u·y for some unit u. The relation must
	// be an equivalence: reflexive, symmetric and transitive.
	Associates(x, y T) bool
}

// UniqueFactorisationDomain is an [IntegralDomain] in which every nonzero
// non-unit factors into irreducibles uniquely, up to order and associates.
// It adds no operations; downstream algorithms require it as a
// precondition.
type UniqueFactorisationDomain[T any] interface {
	IntegralDomain[T]

	// UniqueFactorisation claims unique factorisation into irreducibles.
	// Implementations leave the body empty.
	UniqueFactorisation()
}

// PrincipalIdealDomain is a [UniqueFactorisationDomain] in which every
// ideal is principal. It adds no operations.
type PrincipalIdealDomain[T any] interface {
	UniqueFactorisationDomain[T]

	// PrincipalIdeals claims every ideal is generated by one element.
	// Implementations leave the body empty.
	PrincipalIdeals()
}

// GCDDomain is a [PrincipalIdealDomain] with a greatest-common-divisor
// operation:
//
//	GCD(a, b) divides a and b, and every common divisor of a and b
//	divides GCD(a, b).
//
// The result is unique only up to [IntegralDomain.Associates], not as a
// literal value; implementations pick a representative.
type GCDDomain[T any] interface {
	PrincipalIdealDomain[T]

	// GCD returns a greatest common divisor of a and b.
	GCD(a, b T) T
}

// EuclideanDomain is a [PrincipalIdealDomain] with a Euclidean valuation,
// supporting division-with-remainder reasoning: the valuation is total and
// strictly decreases across a correct remainder step, which is what lets a
// Euclidean gcd algorithm layered on top terminate.
type EuclideanDomain[T any] interface {
	PrincipalIdealDomain[T]

	// Valuation returns the Euclidean valuation of x.
	Valuation(x T) uint64
}
