// Package algebra provides composable capability contracts for algebraic
// structures: magmas, semigroups, monoids, groups, rings and fields.
//
// The contracts are meant to be consumed two ways:
//   - concrete types (modular integers, polynomials, matrices, ...) declare
//     conformance by supplying the required operations and constants;
//   - generic algorithms are written once against a named capability
//     ("any Field", "any GCDDomain") and work over every conforming type.
//
// The package tree mirrors the shape of the hierarchy:
//   - operators: operator tags and the binary/unary operation capabilities
//   - grouplike: single-operation structures (Magma through AbelianGroup)
//   - ringlike: two-operation structures (Ring through Field)
//   - test: property-based law checks for conforming types
//
// Algebraic laws (associativity, commutativity, distributivity) are proof
// obligations on the implementer and are not checked by the type system;
// the test package validates them on concrete reference instances instead.
package algebra

import (
	"github.com/blang/semver/v4"
)

var Version = semver.MustParse("0.1.0")
