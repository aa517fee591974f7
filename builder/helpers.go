// Package builder provides internal helper functions
// used by Constructor implementations.
package builder

import (
	"fmt"

	"github.com/katalvlaran/influence/trust"
)

// addNodes appends n nodes to g. Their global indices continue after the
// nodes already present, so labels stay unique across composed constructors.
// Returns the new ids in insertion order.
// Complexity: O(n).
func addNodes(g *trust.Graph, cfg builderConfig, method string, n int) ([]trust.NodeID, error) {
	base := g.Len()
	ids := make([]trust.NodeID, n)
	for i := 0; i < n; i++ {
		idx := base + i
		label := cfg.idFn(idx)
		id, err := g.AddNode(label, cfg.identityFn(idx), cfg.attrFn(idx, cfg.rng))
		if err != nil {
			return nil, fmt.Errorf("%s: AddNode(%s): %w", method, label, err)
		}
		ids[i] = id
	}

	return ids, nil
}

// connect adds u—v with a weight drawn from cfg.trustFn.
func connect(g *trust.Graph, cfg builderConfig, method string, u, v trust.NodeID) error {
	w := cfg.trustFn(cfg.rng)
	if err := g.AddTrust(u, v, w); err != nil {
		return fmt.Errorf("%s: AddTrust(%d—%d, w=%g): %w", method, u, v, w, err)
	}

	return nil
}
