// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package modring

import (
	"strconv"
	"testing"

	"github.com/consensys/algebra/ringlike"
	"github.com/consensys/algebra/test"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"
)

func TestMod4Scenario(t *testing.T) {
	assert := require.New(t)

	r := New[uint64](4)
	assert.Equal(uint64(0), r.Zero())
	assert.Equal(uint64(1), r.One())

	// 2 is a zero divisor: 2·2 = 0 mod 4, so it has no inverse
	_, ok := r.LeftInverseMul(2)
	assert.False(ok)

	// 3·3 = 9 ≡ 1 mod 4
	inv, ok := r.LeftInverseMul(3)
	assert.True(ok)
	assert.Equal(uint64(3), inv)

	assert.True(ringlike.IsUnit[uint64](r, 1))
	assert.False(ringlike.IsUnit[uint64](r, 2))
}

func TestZeroDivisor(t *testing.T) {
	assert := require.New(t)

	r := New[uint64](4)
	mul := r.Multiplicative()
	assert.Equal(r.Zero(), mul.Op(2, 2))
}

func TestInverseAddDelegates(t *testing.T) {
	assert := require.New(t)

	r := New[uint64](4)
	assert.Equal(uint64(3), ringlike.InverseAdd[uint64](r, 1))
	assert.Equal(uint64(0), ringlike.InverseAdd[uint64](r, 0))
}

func TestRingLaws(t *testing.T) {
	assert := test.NewAssert(t)

	for _, modulus := range []uint64{2, 4, 6, 7, 12} {
		modulus := modulus
		assert.Run(func(assert *test.Assert) {
			r := New[uint64](modulus)
			properties := test.NewProperties()
			test.CommutativeRingLaws[uint64](properties, r, test.Equal[uint64], gen.UInt64Range(0, modulus-1))
			assert.CheckProperties(properties)
		}, "modulus", strconv.FormatUint(modulus, 10))
	}
}

func TestSmallRepresentation(t *testing.T) {
	assert := require.New(t)

	r := New[uint8](4)
	inv, ok := r.InverseMul(uint8(3))
	assert.True(ok)
	assert.Equal(uint8(3), inv)
}
