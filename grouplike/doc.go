// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package grouplike defines the single-operation algebraic capabilities,
// from [Magma] up to [AbelianGroup].
//
// Every capability here acts on one tagged operation and is total: the
// operation is defined for all inputs, and [Quasigroup.Inverse] never
// reports absence. A type that cannot guarantee a total inverse does not
// satisfy Quasigroup and must not claim it.
//
// Laws such as associativity and commutativity cannot be expressed in Go's
// type system (nor decided in general), so law-only refinements add an
// exported no-op marker method instead: implementing [Semigroup] rather
// than stopping at [Magma] is an explicit claim that the operation is
// associative, exactly like declaring the conformance in a language with
// nominal traits. Passing a witness that violates a claimed law into a
// generic algorithm produces wrong results or panics downstream, never
// memory unsafety.
//
// Refinement is interface embedding and is deliberately diamond-shaped:
// [AbelianGroup] embeds [Semigroup], [UnitalMagma], [Quasigroup] and
// [CommutativeMagma], which all embed [Magma].
package grouplike
