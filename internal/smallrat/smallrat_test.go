// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package smallrat

import (
	"testing"

	"github.com/consensys/algebra/ringlike"
	"github.com/consensys/algebra/test"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func genRational() gopter.Gen {
	return gopter.CombineGens(gen.Int64Range(-30, 30), gen.Int64Range(1, 30)).
		Map(func(values []interface{}) Rational {
			return New(values[0].(int64), values[1].(int64))
		})
}

// genNonzeroRational never produces the additive identity, the one value
// the division operations exclude by precondition.
func genNonzeroRational() gopter.Gen {
	return gopter.CombineGens(
		gen.OneGenOf(gen.Int64Range(-30, -1), gen.Int64Range(1, 30)),
		gen.Int64Range(1, 30),
	).Map(func(values []interface{}) Rational {
		return New(values[0].(int64), values[1].(int64))
	})
}

func TestNormalisation(t *testing.T) {
	assert := require.New(t)

	assert.True(New(2, 4).Equal(New(1, 2)))
	assert.True(New(-3, -2).Equal(New(3, 2)))
	assert.True(New(3, -2).Equal(New(-3, 2)))
	assert.Equal("3/2", New(-3, -2).String())
	assert.Equal("2", New(4, 2).String())
	assert.Panics(func() { New(1, 0) })
}

func TestFieldLaws(t *testing.T) {
	properties := test.NewProperties()
	g := genRational()
	test.CommutativeRingLaws[Rational](properties, Field{}, Rational.Equal, g)
	properties.Property("associates equivalence", test.AssociatesEquivalence[Rational](Field{}, g))
	properties.Property("gcd divides and is divided", test.GCDLaws[Rational](Field{}, divides, g))
	test.NewAssert(t).CheckProperties(properties)
}

// divides is divisibility in the field of rationals: zero divides only
// zero, everything else divides everything.
func divides(c, x Rational) bool {
	if c.IsZero() {
		return x.IsZero()
	}
	return true
}

func TestDivisionScenario(t *testing.T) {
	assert := require.New(t)

	var f Field
	assert.True(f.DivRight(New(6, 1), New(2, 1)).Equal(New(3, 1)))
	assert.True(f.Div(New(1, 2), New(3, 4)).Equal(New(2, 3)))
	assert.True(f.DivLeft(New(6, 1), New(2, 1)).Equal(New(3, 1)))
}

func TestDivisionLaws(t *testing.T) {
	properties := test.NewProperties()
	var f Field
	properties.Property("div undoes multiplication", prop.ForAll(
		func(a, b Rational) bool {
			product := f.Multiplicative().Op(a, b)
			return f.DivRight(product, b).Equal(a)
		},
		genRational(), genNonzeroRational(),
	))
	properties.Property("x·x⁻¹ = 1 for nonzero x", prop.ForAll(
		func(x Rational) bool {
			units := f.Units()
			return units.Op(x, units.Inverse(x)).Equal(f.One())
		},
		genNonzeroRational(),
	))
	test.NewAssert(t).CheckProperties(properties)
}

func TestInverseQueries(t *testing.T) {
	assert := require.New(t)

	var f Field
	_, ok := f.InverseMul(f.Zero())
	assert.False(ok)

	inv, ok := f.InverseMul(New(2, 3))
	assert.True(ok)
	assert.True(inv.Equal(New(3, 2)))
	assert.True(ringlike.IsUnit[Rational](f, New(2, 3)))
	assert.False(ringlike.IsUnit[Rational](f, f.Zero()))
}

func TestValuation(t *testing.T) {
	assert := require.New(t)

	var f Field
	assert.Equal(uint64(0), f.Valuation(f.Zero()))
	assert.Equal(uint64(1), f.Valuation(New(-7, 3)))
}
