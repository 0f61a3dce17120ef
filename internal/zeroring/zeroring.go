// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package zeroring declares the one-element ring as a reference instance.
//
// The zero ring is the degenerate corner of the hierarchy: Zero and One
// denote the same unique value, every operation returns it, and the unique
// element is its own multiplicative inverse, so it is a unit.
package zeroring

import (
	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
	"github.com/consensys/algebra/ringlike"
)

// Elem is the unique element of the zero ring.
type Elem struct{}

// Ring is the one-element ring over [Elem].
type Ring struct{}

var _ ringlike.CommutativeRing[Elem] = Ring{}

func (Ring) Additive() grouplike.AbelianGroup[operators.Plus, Elem] { return add{} }

func (Ring) Multiplicative() grouplike.Monoid[operators.Times, Elem] { return mul{} }

func (Ring) Zero() Elem { return Elem{} }

func (Ring) One() Elem { return Elem{} }

func (Ring) LeftInverseMul(Elem) (Elem, bool) { return Elem{}, true }

func (Ring) RightInverseMul(Elem) (Elem, bool) { return Elem{}, true }

func (Ring) InverseMul(Elem) (Elem, bool) { return Elem{}, true }

func (Ring) CommutativeMul() {}

type add struct{}

func (add) Operator() operators.Plus { return operators.Plus{} }

func (add) Op(Elem, Elem) Elem { return Elem{} }

func (add) OpAssign(*Elem, Elem) {}

func (add) Identity() Elem { return Elem{} }

func (add) Inverse(Elem) Elem { return Elem{} }

func (add) Associative() {}

func (add) Commutative() {}

type mul struct{}

func (mul) Operator() operators.Times { return operators.Times{} }

func (mul) Op(Elem, Elem) Elem { return Elem{} }

func (mul) OpAssign(*Elem, Elem) {}

func (mul) Identity() Elem { return Elem{} }

func (mul) Associative() {}

func (mul) Commutative() {}
