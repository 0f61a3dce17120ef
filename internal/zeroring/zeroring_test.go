// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package zeroring

import (
	"testing"

	"github.com/consensys/algebra/ringlike"
	"github.com/consensys/algebra/test"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"
)

func TestZeroRingScenario(t *testing.T) {
	assert := require.New(t)

	var r Ring
	// Zero and One denote the same unique value
	assert.Equal(r.Zero(), r.One())

	inv, ok := r.InverseMul(Elem{})
	assert.True(ok)
	assert.Equal(Elem{}, inv)
	assert.True(ringlike.IsUnit[Elem](r, Elem{}))

	assert.Equal(Elem{}, ringlike.InverseAdd[Elem](r, Elem{}))
}

func TestZeroRingLaws(t *testing.T) {
	properties := test.NewProperties()
	test.CommutativeRingLaws[Elem](properties, Ring{}, test.Equal[Elem], gen.Const(Elem{}))
	test.NewAssert(t).CheckProperties(properties)
}
