// SPDX-License-Identifier: MIT
// Package: influence/builder
//
// impl_grid.go - implementation of Grid(rows, cols) constructor.
//
// Contract:
//   - rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   - Nodes in row-major order; node (r,c) has local index r*cols+c.
//   - For each node in row-major order emits the right edge, then the down edge.
//
// Complexity: O(R·C) nodes + O(R·C) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/trust"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

// Grid returns a Constructor that builds a 4-neighborhood lattice, the
// shape of a neighborhood where people know only those next door.
func Grid(rows, cols int) Constructor {
	return func(g *trust.Graph, cfg builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d cols=%d < min=%d: %w", methodGrid, rows, cols, minGridDim, ErrTooFewVertices)
		}

		ids, err := addNodes(g, cfg, methodGrid, rows*cols)
		if err != nil {
			return err
		}
		at := func(r, c int) trust.NodeID { return ids[r*cols+c] }
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				if c+1 < cols {
					if err = connect(g, cfg, methodGrid, at(r, c), at(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err = connect(g, cfg, methodGrid, at(r, c), at(r+1, c)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
