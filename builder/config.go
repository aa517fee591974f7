// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   - idFn       = DefaultIDFn        ("0","1","2",...)
//   - rng        = nil                (pure/deterministic unless seeded)
//   - trustFn    = DefaultTrustFn     (DefaultTrust for every edge)
//   - attrFn     = DefaultAttributeFn (neutral traits)
//   - identityFn = NoIdentity         (no shared identity classes)

package builder

import (
	"math/rand"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	idFn       IDFn
	rng        *rand.Rand // nil means "no randomness"
	trustFn    TrustFn
	attrFn     AttributeFn
	identityFn IdentityFn
}

// newBuilderConfig applies opts in order over the defaults (last wins).
// Complexity: O(len(opts)).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		idFn:       DefaultIDFn,
		rng:        nil,
		trustFn:    DefaultTrustFn,
		attrFn:     DefaultAttributeFn,
		identityFn: NoIdentity,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
