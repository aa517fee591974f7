package pathfind

import (
	"fmt"
	"math"

	"github.com/katalvlaran/influence/acceptance"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/trust"
)

// Trust-mode constants.
const (
	TrustMinCost = 0.05
	TrustMaxCost = 2.0

	sharedIdentityFactor = 0.8
	politicalCostWeight  = 0.3
	activityCostWeight   = 0.2

	identityDistance      = 0.5
	politicalHeuristic    = 0.5
	directTrustHeuristic  = 0.5
	noConnectionHeuristic = 1.0
	activityHeuristic     = 0.3
)

// Content-mode heuristic weights.
const (
	biasHeuristic       = 1.5
	criticalHeuristic   = 0.8
	complexityHeuristic = 0.4
	emotionHeuristic    = 0.3
	directSocialWeight  = 0.3
	noSocialHeuristic   = 0.8
)

// trustTerms itemizes one trust-mode edge cost.
type trustTerms struct {
	Trust, Identity, Political, Activity, Cost float64
}

func sameIdentity(a, b trust.Node) bool {
	return a.Identity != "" && a.Identity == b.Identity
}

func trustEdge(u, v trust.Node, w float64) trustTerms {
	t := trustTerms{Trust: w, Identity: 1}
	if sameIdentity(u, v) {
		t.Identity = sharedIdentityFactor
	}
	t.Political = 1 + politicalCostWeight*math.Abs(u.Attrs.PoliticalLeaning-v.Attrs.PoliticalLeaning)
	t.Activity = 1 - activityCostWeight*v.Attrs.SocialActivity
	t.Cost = clamp((1-w)*t.Identity*t.Political*t.Activity, TrustMinCost, TrustMaxCost)

	return t
}

func contentEdge(v trust.Node, c *meme.Attributes, w float64) float64 {
	return 1 - acceptance.ProbabilityWithComplexity(v.Attrs, *c, w)
}

func trustHeuristic(u, t trust.Node, direct float64, connected bool) float64 {
	h := 0.0
	if !sameIdentity(u, t) {
		h += identityDistance
	}
	h += politicalHeuristic * math.Abs(u.Attrs.PoliticalLeaning-t.Attrs.PoliticalLeaning)
	if connected {
		h += (1 - direct) * directTrustHeuristic
	} else {
		h += noConnectionHeuristic
	}
	h += activityHeuristic * (1 - t.Attrs.SocialActivity)

	return h
}

func contentHeuristic(t trust.Node, c *meme.Attributes, direct float64, connected bool) float64 {
	h := biasHeuristic * math.Abs(t.Attrs.PoliticalLeaning-c.PoliticalBias)
	if c.Misinformation() {
		h += t.Attrs.CriticalThinking * criticalHeuristic
	}
	h += complexityHeuristic * math.Abs(c.Complexity-t.Attrs.Education)
	h += emotionHeuristic * (1 - t.Attrs.EmotionalSusceptibility) * (1 - c.Virality)
	if connected {
		h += directSocialWeight * (1 - direct)
	} else {
		h += noSocialHeuristic
	}

	return h
}

// coster evaluates edge costs and heuristic estimates for one search.
type coster struct {
	nodes  []trust.Node
	opts   Options
	target trust.NodeID
	direct map[trust.NodeID]float64 // trust of each neighbor of target
	entry  float64                  // cheapest edge into target
}

func newCoster(g *trust.Graph, target trust.NodeID, opts Options) (*coster, error) {
	c := &coster{
		nodes:  g.Nodes(),
		opts:   opts,
		target: target,
		entry:  math.Inf(1),
	}
	arcs, err := g.Neighbors(target)
	if err != nil {
		return nil, err
	}
	c.direct = make(map[trust.NodeID]float64, len(arcs))
	for _, a := range arcs {
		c.direct[a.To] = a.Trust
		// cost(w→t) uses the same trust weight as the arc t→w.
		if cost := c.edge(a.To, target, a.Trust); cost < c.entry {
			c.entry = cost
		}
	}

	return c, nil
}

func (c *coster) edge(u, v trust.NodeID, w float64) float64 {
	if c.opts.Mode == ModeContent {
		return contentEdge(c.nodes[v], c.opts.Content, w)
	}
	return trustEdge(c.nodes[u], c.nodes[v], w).Cost
}

// raw returns the hand-tuned estimate from u to the target.
func (c *coster) raw(u trust.NodeID) float64 {
	if u == c.target {
		return 0
	}
	direct, connected := c.direct[u]
	if c.opts.Mode == ModeContent {
		return contentHeuristic(c.nodes[c.target], c.opts.Content, direct, connected)
	}
	return trustHeuristic(c.nodes[u], c.nodes[c.target], direct, connected)
}

// heuristic returns the estimate used by the search under the selected policy.
func (c *coster) heuristic(u trust.NodeID) float64 {
	h := c.raw(u)
	if c.opts.Heuristic == HeuristicBounded && h > c.entry {
		return c.entry
	}
	return h
}

// EdgeCost returns the cost of stepping from u to its neighbor v under opts.
func EdgeCost(g *trust.Graph, u, v trust.NodeID, opts ...Option) (float64, error) {
	o, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	if g == nil {
		return 0, ErrNilGraph
	}
	w, ok := g.Trust(u, v)
	if !ok {
		return 0, fmt.Errorf("%w: %d→%d", ErrBadPath, u, v)
	}
	nu, err := g.Node(u)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnknownNode, err)
	}
	nv, err := g.Node(v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnknownNode, err)
	}
	if o.Mode == ModeContent {
		return contentEdge(nv, o.Content, w), nil
	}

	return trustEdge(nu, nv, w).Cost, nil
}

// Heuristic returns the estimate from u to target that a search with opts uses.
func Heuristic(g *trust.Graph, u, target trust.NodeID, opts ...Option) (float64, error) {
	c, err := costerFor(g, u, target, opts)
	if err != nil {
		return 0, err
	}

	return c.heuristic(u), nil
}

// RawHeuristic returns the uncapped hand-tuned estimate from u to target.
func RawHeuristic(g *trust.Graph, u, target trust.NodeID, opts ...Option) (float64, error) {
	c, err := costerFor(g, u, target, opts)
	if err != nil {
		return 0, err
	}

	return c.raw(u), nil
}

func costerFor(g *trust.Graph, u, target trust.NodeID, opts []Option) (*coster, error) {
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.Has(u) || !g.Has(target) {
		return nil, fmt.Errorf("%w: %d or %d: %w", ErrUnknownNode, u, target, trust.ErrNodeNotFound)
	}

	return newCoster(g, target, o)
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
