// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// api.go - public entry point for fixture assembly.
//
// Design contract:
//   - One orchestrator: BuildGraph(gopts, bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/trust"
)

// Constructor applies a deterministic mutation to g using the resolved
// builderConfig. Constructors validate parameters before touching g and
// return sentinel errors.
type Constructor func(g *trust.Graph, cfg builderConfig) error

// BuildGraph creates a new trust.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildGraph: %w" and returned
// immediately; the partially built graph is discarded.
//
// Complexity: O(len(bopts)) + Σ cost of each constructor.
func BuildGraph(gopts []trust.Option, bopts []BuilderOption, cons ...Constructor) (*trust.Graph, error) {
	g := trust.New(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// MustBuild is BuildGraph for package-level fixtures and examples; it panics
// on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *trust.Graph {
	g, err := BuildGraph(nil, bopts, cons...)
	if err != nil {
		panic(err)
	}

	return g
}
