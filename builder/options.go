// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// options.go - functional options for the builder package.
//
// Contract:
//   - Options are functional (type BuilderOption func(*builderConfig)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors themselves never panic.
//   - Seeding is explicit via WithSeed or WithRand.

package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/influence/trust"
)

// BuilderOption customizes fixture construction.
type BuilderOption func(*builderConfig)

// WithIDScheme sets the label generator: global node index -> label.
// Panics on nil.
func WithIDScheme(fn IDFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) {
		c.idFn = fn
	}
}

// WithRand provides an explicit RNG for stochastic builders and functions.
// Panics on nil; prefer WithSeed for reproducible runs.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithTrustFn overrides the per-edge trust generator. Panics on nil.
func WithTrustFn(fn TrustFn) BuilderOption {
	if fn == nil {
		panic("builder: WithTrustFn(nil)")
	}
	return func(c *builderConfig) {
		c.trustFn = fn
	}
}

// WithTrust gives every edge the same weight w ∈ (0,1]. Panics otherwise.
func WithTrust(w float64) BuilderOption {
	return WithTrustFn(ConstantTrustFn(w))
}

// WithAttributeFn overrides the per-node trait generator. Panics on nil.
func WithAttributeFn(fn AttributeFn) BuilderOption {
	if fn == nil {
		panic("builder: WithAttributeFn(nil)")
	}
	return func(c *builderConfig) {
		c.attrFn = fn
	}
}

// WithAttributes gives every node the same traits. Panics if a is out of range.
func WithAttributes(a trust.Attributes) BuilderOption {
	if err := a.Validate(); err != nil {
		panic(fmt.Sprintf("builder: WithAttributes: %v", err))
	}
	return WithAttributeFn(ConstantAttributes(a))
}

// WithIdentityFn sets the identity-class generator. Panics on nil.
func WithIdentityFn(fn IdentityFn) BuilderOption {
	if fn == nil {
		panic("builder: WithIdentityFn(nil)")
	}
	return func(c *builderConfig) {
		c.identityFn = fn
	}
}
