package spread

import (
	"fmt"

	"github.com/katalvlaran/influence/acceptance"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/trust"
)

// link is one arc with its precomputed acceptance probability.
type link struct {
	to  trust.NodeID
	key uint64
	p   float64
}

// Model is an immutable snapshot of a graph and a content item, ready for
// simulation. Later changes to the graph do not affect it.
type Model struct {
	item  string
	links [][]link
}

// Prepare snapshots g and precomputes, for every arc u→v, the probability
// that v accepts item from u.
// Complexity: O(V + E).
func Prepare(g *trust.Graph, item meme.Content) (*Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	nodes := g.Nodes()
	m := &Model{item: item.ID, links: make([][]link, len(nodes))}
	for _, n := range nodes {
		arcs, err := g.Neighbors(n.ID)
		if err != nil {
			return nil, err
		}
		ls := make([]link, len(arcs))
		for i, a := range arcs {
			ls[i] = link{
				to:  a.To,
				key: a.Key(),
				p:   acceptance.Probability(nodes[a.To].Attrs, item.Attributes, a.Trust),
			}
		}
		m.links[n.ID] = ls
	}

	return m, nil
}

// Len returns the number of nodes in the snapshot.
func (m *Model) Len() int { return len(m.links) }

// Item returns the id of the content item the model was prepared for.
func (m *Model) Item() string { return m.item }

func (m *Model) checkSeeds(seeds []trust.NodeID) error {
	for _, s := range seeds {
		if s < 0 || int(s) >= len(m.links) {
			return fmt.Errorf("%w: seed %d: %w", ErrUnknownNode, s, trust.ErrNodeNotFound)
		}
	}

	return nil
}

// cascade is reusable per-worker scratch space for single runs. Every
// infected node is appended to queue exactly once, so len(queue) is the
// infected count.
type cascade struct {
	m     *Model
	stamp []uint32 // stamp[v] == gen ⇔ v infected in the current run
	gen   uint32
	queue []trust.NodeID
	head  int
}

func newCascade(m *Model) *cascade {
	return &cascade{
		m:     m,
		stamp: make([]uint32, len(m.links)),
		queue: make([]trust.NodeID, 0, len(m.links)),
	}
}

// begin starts a new run with nobody infected.
func (c *cascade) begin() {
	c.gen++
	if c.gen == 0 {
		clear(c.stamp)
		c.gen = 1
	}
	c.queue = c.queue[:0]
	c.head = 0
}

func (c *cascade) infect(v trust.NodeID) {
	if c.stamp[v] != c.gen {
		c.stamp[v] = c.gen
		c.queue = append(c.queue, v)
	}
}

// drain processes the FIFO queue until no live arc leads to a new node.
// Calling infect then drain again extends the same run.
func (c *cascade) drain(key uint64) {
	for ; c.head < len(c.queue); c.head++ {
		u := c.queue[c.head]
		for _, l := range c.m.links[u] {
			if c.stamp[l.to] == c.gen {
				continue
			}
			if uniform(key, l.key) < l.p {
				c.stamp[l.to] = c.gen
				c.queue = append(c.queue, l.to)
			}
		}
	}
}

// run simulates one cascade from seeds and returns the infected count.
func (c *cascade) run(seeds []trust.NodeID, key uint64) int {
	c.begin()
	for _, s := range seeds {
		c.infect(s)
	}
	c.drain(key)

	return len(c.queue)
}

// extend adds v to the current run and returns the new infected count.
// Arcs keep their live/dead outcome, so the result equals a fresh run from
// the enlarged seed set.
func (c *cascade) extend(v trust.NodeID, key uint64) int {
	c.infect(v)
	c.drain(key)

	return len(c.queue)
}
