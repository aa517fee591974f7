// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_star.go - implementation of Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - The hub is the first node the constructor adds; leaves follow.
//   - Emits spokes hub—leaf[i] in ascending leaf order.
//
// Complexity: O(n) nodes + O(n-1) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/trust"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds one hub trusted by n-1 leaves.
func Star(n int) Constructor {
	return func(g *trust.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(g, cfg, methodStar, n)
		if err != nil {
			return err
		}
		hub := ids[0]
		for _, leaf := range ids[1:] {
			if err = connect(g, cfg, methodStar, hub, leaf); err != nil {
				return err
			}
		}

		return nil
	}
}
