// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_wheel.go - implementation of Wheel(n) constructor.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices).
//   - Hub first, then an (n-1)-ring. Emits ring edges first, then spokes.
//
// Complexity: O(n) nodes + O(2n-2) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/trust"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds a ring of n-1 nodes around a hub.
func Wheel(n int) Constructor {
	return func(g *trust.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodWheel, n, minWheelNodes, ErrTooFewVertices)
		}

		ids, err := addNodes(g, cfg, methodWheel, n)
		if err != nil {
			return err
		}
		hub, rim := ids[0], ids[1:]
		for i := range rim {
			if err = connect(g, cfg, methodWheel, rim[i], rim[(i+1)%len(rim)]); err != nil {
				return err
			}
		}
		for _, v := range rim {
			if err = connect(g, cfg, methodWheel, hub, v); err != nil {
				return err
			}
		}

		return nil
	}
}
