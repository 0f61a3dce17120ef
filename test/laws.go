// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package test

import (
	"github.com/consensys/algebra/grouplike"
	"github.com/consensys/algebra/operators"
	"github.com/consensys/algebra/ringlike"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/prop"
)

// OpConsistency checks that the pure and in-place forms of the operation
// agree: after OpAssign(&x, y), x equals Op(x, y).
func OpConsistency[O operators.Tag, T any](op operators.BinaryOperator[O, T], eq func(a, b T) bool, g gopter.Gen) gopter.Prop {
	return prop.ForAll(func(x, y T) bool {
		pure := op.Op(x, y)
		z := x
		op.OpAssign(&z, y)
		return eq(pure, z)
	}, g, g)
}

// Associativity checks (x·y)·z = x·(y·z).
func Associativity[O operators.Tag, T any](s grouplike.Semigroup[O, T], eq func(a, b T) bool, g gopter.Gen) gopter.Prop {
	return prop.ForAll(func(x, y, z T) bool {
		return eq(s.Op(s.Op(x, y), z), s.Op(x, s.Op(y, z)))
	}, g, g, g)
}

// Commutativity checks x·y = y·x.
func Commutativity[O operators.Tag, T any](c grouplike.CommutativeMagma[O, T], eq func(a, b T) bool, g gopter.Gen) gopter.Prop {
	return prop.ForAll(func(x, y T) bool {
		return eq(c.Op(x, y), c.Op(y, x))
	}, g, g)
}

// Identity checks x·e = e·x = x for the designated identity e.
func Identity[O operators.Tag, T any](m grouplike.UnitalMagma[O, T], eq func(a, b T) bool, g gopter.Gen) gopter.Prop {
	return prop.ForAll(func(x T) bool {
		e := m.Identity()
		return eq(m.Op(x, e), x) && eq(m.Op(e, x), x)
	}, g)
}

// Inverses checks x·Inverse(x) = Inverse(x)·x = identity. The structure
// must expose the ambient identity, hence [grouplike.Loop] rather than bare
// [grouplike.Quasigroup].
func Inverses[O operators.Tag, T any](l grouplike.Loop[O, T], eq func(a, b T) bool, g gopter.Gen) gopter.Prop {
	return prop.ForAll(func(x T) bool {
		inv := l.Inverse(x)
		e := l.Identity()
		return eq(l.Op(x, inv), e) && eq(l.Op(inv, x), e)
	}, g)
}

// Distributivity checks x·(y+z) = x·y + x·z and (y+z)·x = y·x + z·x.
func Distributivity[T any](r ringlike.Ring[T], eq func(a, b T) bool, g gopter.Gen) gopter.Prop {
	add := r.Additive()
	mul := r.Multiplicative()
	return prop.ForAll(func(x, y, z T) bool {
		left := eq(mul.Op(x, add.Op(y, z)), add.Op(mul.Op(x, y), mul.Op(x, z)))
		right := eq(mul.Op(add.Op(y, z), x), add.Op(mul.Op(y, x), mul.Op(z, x)))
		return left && right
	}, g, g, g)
}

// InverseAgreement checks that whenever both one-sided multiplicative
// inverses of an element are present, they are equal and equal the
// two-sided inverse, and that a present two-sided inverse implies both
// one-sided ones.
func InverseAgreement[T any](r ringlike.Ring[T], eq func(a, b T) bool, g gopter.Gen) gopter.Prop {
	return prop.ForAll(func(x T) bool {
		left, lok := r.LeftInverseMul(x)
		right, rok := r.RightInverseMul(x)
		two, tok := r.InverseMul(x)
		if tok && !(lok && rok) {
			return false
		}
		if lok && rok {
			return tok && eq(left, right) && eq(left, two)
		}
		return true
	}, g)
}

// GCDLaws checks that GCD(a, b) divides a and b and that every common
// divisor divides it. Divisibility is not an operation of the capability,
// so the caller supplies the predicate.
func GCDLaws[T any](d ringlike.GCDDomain[T], divides func(c, x T) bool, g gopter.Gen) gopter.Prop {
	return prop.ForAll(func(a, b, c T) bool {
		gcd := d.GCD(a, b)
		if !divides(gcd, a) || !divides(gcd, b) {
			return false
		}
		if divides(c, a) && divides(c, b) && !divides(c, gcd) {
			return false
		}
		return true
	}, g, g, g)
}

// AssociatesEquivalence checks that Associates is reflexive, symmetric and
// transitive.
func AssociatesEquivalence[T any](d ringlike.IntegralDomain[T], g gopter.Gen) gopter.Prop {
	return prop.ForAll(func(x, y, z T) bool {
		if !d.Associates(x, x) {
			return false
		}
		if d.Associates(x, y) != d.Associates(y, x) {
			return false
		}
		if d.Associates(x, y) && d.Associates(y, z) && !d.Associates(x, z) {
			return false
		}
		return true
	}, g, g, g)
}

// MonoidLaws registers the obligations of a [grouplike.Monoid]:
// pure/in-place consistency, associativity and identity.
func MonoidLaws[O operators.Tag, T any](properties *gopter.Properties, m grouplike.Monoid[O, T], eq func(a, b T) bool, g gopter.Gen) {
	var o O
	properties.Property("op/opassign consistency ("+o.TagName()+")", OpConsistency[O, T](m, eq, g))
	properties.Property("associativity ("+o.TagName()+")", Associativity[O, T](m, eq, g))
	properties.Property("identity ("+o.TagName()+")", Identity[O, T](m, eq, g))
}

// GroupLaws registers the obligations of a [grouplike.Group]: the monoid
// laws plus total two-sided inverses.
func GroupLaws[O operators.Tag, T any](properties *gopter.Properties, grp grouplike.Group[O, T], eq func(a, b T) bool, g gopter.Gen) {
	var o O
	MonoidLaws[O, T](properties, grp, eq, g)
	properties.Property("inverses ("+o.TagName()+")", Inverses[O, T](grp, eq, g))
}

// AbelianGroupLaws registers the obligations of a [grouplike.AbelianGroup]:
// the group laws plus commutativity.
func AbelianGroupLaws[O operators.Tag, T any](properties *gopter.Properties, grp grouplike.AbelianGroup[O, T], eq func(a, b T) bool, g gopter.Gen) {
	var o O
	GroupLaws[O, T](properties, grp, eq, g)
	properties.Property("commutativity ("+o.TagName()+")", Commutativity[O, T](grp, eq, g))
}

// RingLaws registers the obligations of a [ringlike.Ring]: the additive
// abelian group laws, the multiplicative monoid laws, distributivity and
// one-sided inverse agreement.
func RingLaws[T any](properties *gopter.Properties, r ringlike.Ring[T], eq func(a, b T) bool, g gopter.Gen) {
	AbelianGroupLaws[operators.Plus, T](properties, r.Additive(), eq, g)
	MonoidLaws[operators.Times, T](properties, r.Multiplicative(), eq, g)
	properties.Property("distributivity", Distributivity[T](r, eq, g))
	properties.Property("one-sided inverse agreement", InverseAgreement[T](r, eq, g))
}

// CommutativeRingLaws registers the ring laws plus multiplicative
// commutativity.
func CommutativeRingLaws[T any](properties *gopter.Properties, r ringlike.CommutativeRing[T], eq func(a, b T) bool, g gopter.Gen) {
	RingLaws[T](properties, r, eq, g)
	mul := r.Multiplicative()
	properties.Property("commutativity (times)", prop.ForAll(func(x, y T) bool {
		return eq(mul.Op(x, y), mul.Op(y, x))
	}, g, g))
}
