// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

package test

import (
	"testing"

	"github.com/consensys/algebra/operators"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/stretchr/testify/require"
)

// subtraction falsely claims associativity: (x-y)-z != x-(y-z) in general.
// The law checks exist to catch exactly this kind of wrong conformance.
type subtraction struct{}

func (subtraction) Operator() operators.Untagged { return operators.Untagged{} }

func (subtraction) Op(x, y int64) int64 { return x - y }

func (subtraction) OpAssign(x *int64, y int64) { *x -= y }

func (subtraction) Associative() {}

func TestAssociativityCatchesViolation(t *testing.T) {
	assert := require.New(t)

	properties := NewProperties()
	properties.Property("subtraction associativity", Associativity[operators.Untagged, int64](
		subtraction{}, Equal[int64], gen.Int64Range(-100, 100)))
	assert.False(properties.Run(quietReporter{}))
}

func TestOpConsistencyHolds(t *testing.T) {
	assert := require.New(t)

	properties := NewProperties()
	properties.Property("subtraction op/opassign", OpConsistency[operators.Untagged, int64](
		subtraction{}, Equal[int64], gen.Int64Range(-100, 100)))
	assert.True(properties.Run(quietReporter{}))
}

// quietReporter drops gopter output; these tests only care about the
// overall verdict.
type quietReporter struct{}

func (quietReporter) ReportTestResult(propName string, result *gopter.TestResult) {}
