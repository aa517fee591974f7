// File: methods_clone.go
// Role: Deep copy. Cascade runs mutate a clone so the caller's graph keeps its states.

package trust

// Clone returns a deep copy of g: nodes (including state), labels, edges and arcs.
// NodeIDs and edge indices are preserved, so Arc.Key values match across clones.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph{
		nodes:  make([]Node, len(g.nodes)),
		labels: make(map[string]NodeID, len(g.labels)),
		edges:  make([]Edge, len(g.edges)),
		pairs:  make(map[pairKey]int, len(g.pairs)),
		arcs:   make([][]Arc, len(g.arcs)),
	}
	copy(c.nodes, g.nodes)
	copy(c.edges, g.edges)
	for k, v := range g.labels {
		c.labels[k] = v
	}
	for k, v := range g.pairs {
		c.pairs[k] = v
	}
	for i, a := range g.arcs {
		c.arcs[i] = append([]Arc(nil), a...)
	}

	return c
}
