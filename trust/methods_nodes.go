// File: methods_nodes.go
// Role: Node lifecycle & queries.
//
// Determinism:
//   - NodeIDs are assigned densely in insertion order.
//   - Nodes() returns nodes ordered by NodeID.

package trust

import "fmt"

// AddNode appends a node with the given label, identity class and attributes
// and returns its NodeID. The node starts Susceptible.
//
// Errors:
//   - ErrEmptyLabel, ErrDuplicateLabel for bad labels.
//   - ErrBadAttribute (wrapped) when an attribute is out of range.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(label, identity string, attrs Attributes) (NodeID, error) {
	if label == "" {
		return -1, ErrEmptyLabel
	}
	if err := attrs.Validate(); err != nil {
		return -1, fmt.Errorf("node %q: %w", label, err)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.labels[label]; ok {
		return -1, fmt.Errorf("%w: %q", ErrDuplicateLabel, label)
	}
	id := NodeID(len(g.nodes))
	g.nodes = append(g.nodes, Node{
		ID:       id,
		Label:    label,
		Identity: identity,
		Attrs:    attrs,
		State:    Susceptible,
	})
	g.arcs = append(g.arcs, nil)
	g.labels[label] = id

	return id, nil
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.nodes)
}

// Has reports whether id refers to a node of g.
func (g *Graph) Has(id NodeID) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.has(id)
}

func (g *Graph) has(id NodeID) bool {
	return id >= 0 && int(id) < len(g.nodes)
}

// Node returns a copy of the node with the given id.
func (g *Graph) Node(id NodeID) (Node, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return Node{}, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.nodes[id], nil
}

// Lookup resolves a label to its NodeID.
func (g *Graph) Lookup(label string) (NodeID, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.labels[label]
	if !ok {
		return -1, fmt.Errorf("%w: label %q", ErrNodeNotFound, label)
	}

	return id, nil
}

// Label returns the label of id, or "" if id is unknown.
func (g *Graph) Label(id NodeID) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return ""
	}

	return g.nodes[id].Label
}

// Nodes returns a snapshot copy of all nodes ordered by NodeID.
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Node, len(g.nodes))
	copy(out, g.nodes)

	return out
}
