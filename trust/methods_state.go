// File: methods_state.go
// Role: Propagation state accessors. Only cascade runs (on clones) and callers
// preparing a scenario write state; search components only read it.

package trust

import "fmt"

// State returns the propagation state of id.
func (g *Graph) State(id NodeID) (State, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if !g.has(id) {
		return Susceptible, fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}

	return g.nodes[id].State, nil
}

// SetState overwrites the propagation state of id.
func (g *Graph) SetState(id NodeID, s State) error {
	if s > Resistant {
		return fmt.Errorf("%w: %d", ErrBadState, s)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if !g.has(id) {
		return fmt.Errorf("%w: %d", ErrNodeNotFound, id)
	}
	g.nodes[id].State = s

	return nil
}

// States returns a snapshot of every node's state, indexed by NodeID.
func (g *Graph) States() []State {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]State, len(g.nodes))
	for i := range g.nodes {
		out[i] = g.nodes[i].State
	}

	return out
}

// ResetStates marks every node Susceptible.
func (g *Graph) ResetStates() {
	g.mu.Lock()
	defer g.mu.Unlock()

	for i := range g.nodes {
		g.nodes[i].State = Susceptible
	}
}

// Susceptible returns the ids of all Susceptible nodes in ascending order.
func (g *Graph) Susceptible() []NodeID {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]NodeID, 0, len(g.nodes))
	for i := range g.nodes {
		if g.nodes[i].State == Susceptible {
			out = append(out, NodeID(i))
		}
	}

	return out
}

// CountStates returns how many nodes are in each state, indexed by State.
func (g *Graph) CountStates() [4]int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	var c [4]int
	for i := range g.nodes {
		c[g.nodes[i].State]++
	}

	return c
}
