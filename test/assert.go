// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package test provides property-based law checks for conforming algebraic
// types.
//
// Laws like associativity or distributivity are proof obligations on an
// implementer and cannot be checked statically; this package lets library
// authors validate them on concrete instances instead. Each law is a
// gopter property over a caller-supplied generator for the element type,
// and the *Laws helpers register a capability's full obligation set at
// once:
//
//	properties := test.NewProperties()
//	test.RingLaws[int64](properties, myRing{}, test.Equal[int64], gen.Int64Range(-100, 100))
//	test.NewAssert(t).CheckProperties(properties)
//
// Generators must stay inside the domain the structure guarantees: values
// small enough not to exhaust a fixed-width representation, and never the
// additive identity on the right of a division.
package test

import (
	"strings"
	"testing"

	"github.com/consensys/algebra/logger"
	"github.com/leanovate/gopter"
	"github.com/stretchr/testify/require"
)

// Assert is a helper to validate conforming algebraic types.
type Assert struct {
	t *testing.T
	*require.Assertions
}

// NewAssert returns an Assert helper embedding a testify/require object for
// convenience.
func NewAssert(t *testing.T) *Assert {
	return &Assert{t: t, Assertions: require.New(t)}
}

// Run runs the test function fn as a subtest. The subtest is parametrized
// by the description strings descs.
func (a *Assert) Run(fn func(assert *Assert), descs ...string) {
	desc := strings.Join(descs, "/")
	a.t.Run(desc, func(t *testing.T) {
		assert := &Assert{t, require.New(t)}
		fn(assert)
	})
}

// CheckProperties runs the registered properties against the embedded
// testing.T.
func (a *Assert) CheckProperties(properties *gopter.Properties) {
	a.t.Helper()
	log := logger.Logger()
	log.Debug().Str("test", a.t.Name()).Msg("checking algebraic laws")
	properties.TestingRun(a.t, gopter.ConsoleReporter(false))
}

// NewProperties returns a gopter property set with the default parameters
// used throughout the module.
func NewProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100
	return gopter.NewProperties(parameters)
}

// Equal is an equality predicate for comparable element types, suitable as
// the eq argument of the law checks.
func Equal[T comparable](a, b T) bool {
	return a == b
}
