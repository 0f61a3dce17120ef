// Copyright 2020-2025 Consensys Software Inc.
// Licensed under the Apache License, Version 2.0. See the LICENSE file for details.

// Package ringlike defines the two-operation algebraic capabilities, from
// [Ring] up to [Field].
//
// A ring-like structure carries two independently tagged grouplike
// structures on the same element type: an additive one under
// [operators.Plus] and a multiplicative one under [operators.Times], linked
// by distributivity. Because one Go type cannot implement the same generic
// interface twice, the two structures are exposed through accessors
// ([Ring.Additive], [Ring.Multiplicative]) returning the tagged witnesses,
// rather than by embedding both operation contracts directly.
//
// Two failure idioms are kept deliberately distinct:
//
//   - Genuine algebraic non-existence surfaces as a present/absent result:
//     the multiplicative inverse queries on [Ring] return (value, ok)
//     because not every ring element is a unit, and callers routinely
//     branch on absence.
//   - [DivisionRing.DivRight], [DivisionRing.DivLeft] and [Field.Div]
//     instead carry a documented nonzero precondition on the right-hand
//     operand and stay branch-free; invoking them with the additive
//     identity is undefined behavior the caller must avoid. Callers that
//     cannot exclude the zero case use the safe inverse queries first.
//
// Distributivity, the absence of zero divisors and the classification
// claims (unique factorisation, principal ideals) are proof obligations,
// documented on each capability and validated only by property tests on
// concrete instances.
package ringlike
