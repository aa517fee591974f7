// File: methods_edges.go
// Role: Trust edge lifecycle & queries.
//
// Invariant:
//   - For every edge index i with record {A,B,w}: arcs[A] holds {To:B, Trust:w, Edge:i, Reverse:false}
//     and arcs[B] holds {To:A, Trust:w, Edge:i, Reverse:true}. Nothing else lives in arcs.
//
// Concurrency:
//   - Mutations under the write lock; the three records are updated together.

package trust

import "fmt"

// AddTrust records a symmetric trust relationship u—v with weight w ∈ (0,1].
//
// Errors:
//   - ErrNodeNotFound if either endpoint is unknown.
//   - ErrLoopNotAllowed if u == v.
//   - ErrBadTrust if w ∉ (0,1].
//   - ErrDuplicateEdge if u and v are already connected.
//
// Complexity: O(1) amortized.
func (g *Graph) AddTrust(u, v NodeID, w float64) error {
	if !validTrust(w) {
		return fmt.Errorf("%w: %d—%d w=%g", ErrBadTrust, u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(u) || !g.has(v) {
		return fmt.Errorf("%w: %d—%d", ErrNodeNotFound, u, v)
	}
	if u == v {
		return fmt.Errorf("%w: %d", ErrLoopNotAllowed, u)
	}
	key := makePair(u, v)
	if _, ok := g.pairs[key]; ok {
		return fmt.Errorf("%w: %d—%d", ErrDuplicateEdge, u, v)
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{A: key.lo, B: key.hi, Trust: w})
	g.pairs[key] = idx
	g.arcs[key.lo] = append(g.arcs[key.lo], Arc{To: key.hi, Trust: w, Edge: idx})
	g.arcs[key.hi] = append(g.arcs[key.hi], Arc{To: key.lo, Trust: w, Edge: idx, Reverse: true})

	return nil
}

// SetTrust changes the weight of an existing relationship u—v, keeping the
// edge record and both arcs in agreement. Both endpoints get fresh arc slices,
// so slices already handed out by Neighbors keep the old weight.
// Complexity: O(deg(u) + deg(v)).
func (g *Graph) SetTrust(u, v NodeID, w float64) error {
	if !validTrust(w) {
		return fmt.Errorf("%w: %d—%d w=%g", ErrBadTrust, u, v, w)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(u) || !g.has(v) {
		return fmt.Errorf("%w: %d—%d", ErrNodeNotFound, u, v)
	}
	idx, ok := g.pairs[makePair(u, v)]
	if !ok {
		return fmt.Errorf("%w: %d—%d", ErrEdgeNotFound, u, v)
	}
	e := &g.edges[idx]
	e.Trust = w
	for _, end := range [2]NodeID{e.A, e.B} {
		arcs := append([]Arc(nil), g.arcs[end]...)
		for i := range arcs {
			if arcs[i].Edge == idx {
				arcs[i].Trust = w
			}
		}
		g.arcs[end] = arcs
	}

	return nil
}

// Trust returns the weight of u—v and whether the edge exists.
// Complexity: O(1).
func (g *Graph) Trust(u, v NodeID) (float64, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	idx, ok := g.pairs[makePair(u, v)]
	if !ok {
		return 0, false
	}

	return g.edges[idx].Trust, true
}

// Neighbors returns u's arcs in insertion order. The slice is the graph's own
// storage: read it, never modify it. Writers never touch its elements, so it
// stays a consistent snapshot after the lock is released.
// Complexity: O(1).
func (g *Graph) Neighbors(u NodeID) ([]Arc, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(u) {
		return nil, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}

	return g.arcs[u], nil
}

// Degree returns the number of trust relationships of u.
func (g *Graph) Degree(u NodeID) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(u) {
		return 0, fmt.Errorf("%w: %d", ErrNodeNotFound, u)
	}

	return len(g.arcs[u]), nil
}

// Edges returns a copy of the edge catalog in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of trust relationships.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

func validTrust(w float64) bool {
	return w > 0 && w <= 1
}
