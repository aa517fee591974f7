// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   - Only sentinel variables are exposed; callers branch with errors.Is.
//   - Implementations attach context with %w ("Cycle: n=2 < min=3: ...").
//   - Constructors never panic; validation panics live in option constructors.
//
// Priority when several validations fail:
//   ErrTooFewVertices, then ErrInvalidProbability, then ErrNeedRandSource,
//   then errors surfaced by the trust graph, then ErrConstructFailed.

package builder

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is below
// the minimum for the requested constructor.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates a probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires an RNG
// (set WithSeed or WithRand).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates a nil constructor or a trust-graph rejection
// that the constructor could not avoid.
var ErrConstructFailed = errors.New("builder: construction failed")
