// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Adds n nodes in ascending index order.
//   - Emits edges in stable order i—(i+1)%n for i=0..n-1.
//
// Complexity: O(n) nodes + O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/trust"
)

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds an n-node ring of trust.
func Cycle(n int) Constructor {
	return func(g *trust.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(g, cfg, methodCycle, n)
		if err != nil {
			return err
		}

		// Close the ring at i == n-1.
		for i := 0; i < n; i++ {
			if err = connect(g, cfg, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
