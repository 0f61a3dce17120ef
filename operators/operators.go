// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package operators defines the operation capabilities that every algebraic
// structure builds on, together with the marker tags that tell two unrelated
// operations on the same set apart.
//
// A structure is supplied as a witness value, usually a zero-size struct,
// implementing [BinaryOperator] for a given element type and tag. A set that
// carries two operations (a ring has addition and multiplication) gets one
// witness per tag; the tag appears only as a type parameter and carries no
// data. Structures with a single operation use [Untagged].
package operators

// Tag is implemented by operator marker types. Tags exist purely to
// disambiguate independent operation instances on the same element type;
// there is no ordering or precedence between them. TagName is a short label
// for diagnostics and property names, nothing more.
//
// Downstream code is free to declare its own tags; a tag type should be a
// zero-size struct.
type Tag interface {
	TagName() string
}

// Plus tags the additive operation of a two-operation structure.
type Plus struct{}

func (Plus) TagName() string { return "plus" }

// Times tags the multiplicative operation of a two-operation structure.
type Times struct{}

func (Times) TagName() string { return "times" }

// Untagged is the content-free default tag for structures that carry a
// single operation and need no disambiguation (plain groups, monoids, ...).
type Untagged struct{}

func (Untagged) TagName() string { return "op" }

// BinaryOperator is a closed binary operation on T, defined for every pair
// of values in T's representable space.
//
// Op and OpAssign must agree: after OpAssign(&x, y), x holds the value
// Op(x, y) would have returned. Callers pick whichever form fits their
// ownership and performance needs; OpAssign requires exclusive access to *x
// for the duration of the call.
//
// Where T is a fixed-width approximation of an unbounded mathematical set,
// a witness may terminate abnormally on inputs whose result falls outside
// the representable range. That is a representation limit, not a violation
// of the closure contract.
type BinaryOperator[O Tag, T any] interface {
	// Operator pins the witness to its operator tag. The returned value is
	// only useful for its TagName.
	Operator() O

	// Op returns the result of applying the operation to x and y.
	Op(x, y T) T

	// OpAssign applies the operation in place, storing the result in *x.
	OpAssign(x *T, y T)
}

// UnaryOperator is a closed unary operation on T, defined for every value in
// T's representable space. It is the unary counterpart of [BinaryOperator],
// reserved for structures built around a single self-map (pure negation,
// involutions); no capability in grouplike or ringlike requires it today.
type UnaryOperator[O Tag, T any] interface {
	// Operator pins the witness to its operator tag.
	Operator() O

	// UnaryOp returns the result of applying the operation to x.
	UnaryOp(x T) T

	// UnaryOpAssign applies the operation in place.
	UnaryOpAssign(x *T)
}
