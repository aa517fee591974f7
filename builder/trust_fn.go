// Package builder provides helper functions and types
// for configuring trust-weight distributions in fixture constructors.
package builder

import (
	"fmt"
	"math/rand"
)

// DefaultTrust is the weight given to each edge when no TrustFn is set.
const DefaultTrust = 0.5

// TrustFn produces an edge weight in (0,1] given an optional RNG.
type TrustFn func(rng *rand.Rand) float64

// DefaultTrustFn always returns DefaultTrust.
func DefaultTrustFn(_ *rand.Rand) float64 {
	return DefaultTrust
}

// ConstantTrustFn returns a TrustFn that always yields w.
// Panics unless 0 < w ≤ 1.
func ConstantTrustFn(w float64) TrustFn {
	if w <= 0 || w > 1 {
		panic(fmt.Sprintf("ConstantTrustFn: w must be in (0,1], got %g", w))
	}

	return func(_ *rand.Rand) float64 {
		return w
	}
}

// UniformTrustFn returns a TrustFn sampling uniformly in [lo, hi).
// Panics unless 0 < lo ≤ hi ≤ 1. With a nil rng it yields DefaultTrust.
func UniformTrustFn(lo, hi float64) TrustFn {
	if lo <= 0 || hi > 1 || hi < lo {
		panic(fmt.Sprintf("UniformTrustFn: require 0 < lo ≤ hi ≤ 1, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil {
			return DefaultTrust
		}
		if hi == lo {
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}
