// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package grouplike_test

import (
	"testing"

	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
	"github.com/consensys/algebra/test"
	"github.com/leanovate/gopter/gen"
)

// concat is the free monoid on strings: associative, identity "", not
// commutative and not invertible.
type concat struct{}

func (concat) Operator() operators.Untagged { return operators.Untagged{} }

func (concat) Op(x, y string) string { return x + y }

func (concat) OpAssign(x *string, y string) { *x += y }

func (concat) Identity() string { return "" }

func (concat) Associative() {}

// parity is Z/2Z under exclusive or: an abelian group in which every
// element is its own inverse.
type parity struct{}

func (parity) Operator() operators.Untagged { return operators.Untagged{} }

func (parity) Op(x, y bool) bool { return x != y }

func (parity) OpAssign(x *bool, y bool) { *x = *x != y }

func (parity) Identity() bool { return false }

func (parity) Inverse(x bool) bool { return x }

func (parity) Associative() {}

func (parity) Commutative() {}

var (
	_ grouplike.Monoid[operators.Untagged, string]          = concat{}
	_ grouplike.AbelianGroup[operators.Untagged, bool]      = parity{}
	_ grouplike.Loop[operators.Untagged, bool]              = parity{}
	_ grouplike.CommutativeMonoid[operators.Untagged, bool] = parity{}
)

func TestConcatMonoidLaws(t *testing.T) {
	properties := test.NewProperties()
	test.MonoidLaws[operators.Untagged, string](properties, concat{}, test.Equal[string], gen.AnyString())
	test.NewAssert(t).CheckProperties(properties)
}

func TestParityGroupLaws(t *testing.T) {
	properties := test.NewProperties()
	test.AbelianGroupLaws[operators.Untagged, bool](properties, parity{}, test.Equal[bool], gen.Bool())
	test.NewAssert(t).CheckProperties(properties)
}
