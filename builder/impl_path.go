// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Emits edges 0—1, 1—2, ..., (n-2)—(n-1) in that order.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/trust"
)

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds a chain of n nodes.
func Path(n int) Constructor {
	return func(g *trust.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(g, cfg, methodPath, n)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = connect(g, cfg, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
