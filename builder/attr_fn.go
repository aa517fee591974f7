// Package builder provides helper functions and types
// for configuring personal traits and identity classes of fixture nodes.
package builder

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/influence/trust"
)

// Neutral is the trait set used when no AttributeFn is set.
var Neutral = trust.Attributes{
	PoliticalLeaning:        0,
	CriticalThinking:        0.5,
	EmotionalSusceptibility: 0.5,
	Education:               0.5,
	SocialActivity:          0.5,
}

// AttributeFn produces the traits of the node with global index idx.
type AttributeFn func(idx int, rng *rand.Rand) trust.Attributes

// DefaultAttributeFn returns Neutral for every node.
func DefaultAttributeFn(_ int, _ *rand.Rand) trust.Attributes {
	return Neutral
}

// ConstantAttributes returns an AttributeFn that always yields a.
func ConstantAttributes(a trust.Attributes) AttributeFn {
	return func(_ int, _ *rand.Rand) trust.Attributes {
		return a
	}
}

// RandomAttributes draws political leaning from U[-1,1) and every other trait
// from U[0,1). With a nil rng it yields Neutral.
func RandomAttributes(_ int, rng *rand.Rand) trust.Attributes {
	if rng == nil {
		return Neutral
	}

	return trust.Attributes{
		PoliticalLeaning:        rng.Float64()*2 - 1,
		CriticalThinking:        rng.Float64(),
		EmotionalSusceptibility: rng.Float64(),
		Education:               rng.Float64(),
		SocialActivity:          rng.Float64(),
	}
}

// IdentityFn assigns an identity class to the node with global index idx.
// An empty class never matches another node.
type IdentityFn func(idx int) string

// NoIdentity leaves every node without an identity class.
func NoIdentity(_ int) string { return "" }

// CyclicIdentity assigns classes[idx % len(classes)]. Panics on an empty list.
func CyclicIdentity(classes ...string) IdentityFn {
	if len(classes) == 0 {
		panic("CyclicIdentity: at least one class is required")
	}
	cp := append([]string(nil), classes...)

	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("CyclicIdentity: idx must be ≥ 0, got %d", idx))
		}
		return cp[idx%len(cp)]
	}
}
