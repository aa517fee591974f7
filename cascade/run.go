package cascade

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/influence/acceptance"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/trust"
)

// Run simulates item spreading from seeds on a clone of g.
//
// Nodes already Infected or Exposed in g take part as if seeded on day 0;
// Resistant nodes stay out. Seeds that are Resistant are rejected.
// Complexity: O(Days · (V + E)).
func Run(ctx context.Context, g *trust.Graph, item meme.Content, seeds []trust.NodeID, opts ...Option) (*Outcome, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if g == nil {
		return nil, ErrNilGraph
	}

	r, err := newRunner(g.Clone(), item, o)
	if err != nil {
		return nil, err
	}
	for _, s := range seeds {
		if err = r.seed(s); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	out, err := r.run(ctx)
	if err != nil {
		return nil, err
	}
	final := out.Final()
	o.Logger.Info("cascade: run finished",
		zap.String("item", item.ID),
		zap.Int("seeds", len(seeds)),
		zap.Int("days", final.Day),
		zap.Int("reached", out.Reached),
		zap.Int("resistant", final.Resistant),
		zap.Bool("quiescent", out.Quiescent),
		zap.Duration("elapsed", time.Since(start)),
	)

	return out, nil
}

// runner holds the working copy of one run.
type runner struct {
	g     *trust.Graph
	item  meme.Content
	opts  Options
	rng   *rand.Rand
	nodes []trust.Node // attributes and states before seeding
	arcs  [][]trust.Arc
	state []trust.State
	since []int // day each node became Infected
}

func newRunner(g *trust.Graph, item meme.Content, o Options) (*runner, error) {
	r := &runner{
		g:     g,
		item:  item,
		opts:  o,
		rng:   rand.New(rand.NewSource(o.Seed)),
		nodes: g.Nodes(),
		state: g.States(),
		since: make([]int, g.Len()),
	}
	r.arcs = make([][]trust.Arc, len(r.nodes))
	for _, n := range r.nodes {
		arcs, err := g.Neighbors(n.ID)
		if err != nil {
			return nil, err
		}
		r.arcs[n.ID] = arcs
	}

	return r, nil
}

func (r *runner) seed(id trust.NodeID) error {
	if !r.g.Has(id) {
		return fmt.Errorf("%w: seed %d: %w", ErrUnknownNode, id, trust.ErrNodeNotFound)
	}
	if r.state[id] == trust.Resistant {
		return fmt.Errorf("%w: %d", ErrSeedResistant, id)
	}
	r.state[id] = trust.Infected

	return nil
}

func (r *runner) run(ctx context.Context) (*Outcome, error) {
	out := &Outcome{Graph: r.g}
	out.History = append(out.History, census(0, r.state))

	for day := 1; day <= r.opts.Days; day++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if r.quiet() {
			out.Quiescent = true
			break
		}
		d := r.step(day)
		out.History = append(out.History, d)
		r.opts.Metrics.ObserveCascadeStep()
		r.opts.Logger.Debug("cascade: day simulated",
			zap.Int("day", day),
			zap.Int("shares", d.Shares),
			zap.Int("new_exposures", d.NewExposures),
			zap.Int("infected", d.Infected),
		)
	}

	for id, s := range r.state {
		if err := r.g.SetState(trust.NodeID(id), s); err != nil {
			return nil, err
		}
	}
	for _, n := range r.nodes {
		if n.State == trust.Susceptible && r.state[n.ID] != trust.Susceptible {
			out.Reached++
		}
	}

	return out, nil
}

// step advances one day and returns its census.
func (r *runner) step(day int) Day {
	for u, s := range r.state {
		switch s {
		case trust.Exposed:
			r.state[u], r.since[u] = trust.Infected, day
		case trust.Infected:
			if day-r.since[u] >= r.opts.RecoveryDays {
				r.state[u] = trust.Resistant
			}
		}
	}

	var shares, exposed int
	c := r.item.Attributes
	for u, s := range r.state {
		if s != trust.Infected {
			continue
		}
		p := acceptance.Transmission(r.nodes[u].Attrs, c, float64(day-r.since[u]))
		if r.rng.Float64() >= p {
			continue
		}
		shares++
		for _, a := range r.arcs[u] {
			if r.state[a.To] != trust.Susceptible {
				continue
			}
			if r.rng.Float64() < acceptance.Probability(r.nodes[a.To].Attrs, c, a.Trust) {
				r.state[a.To] = trust.Exposed
				exposed++
			}
		}
	}

	d := census(day, r.state)
	d.Shares, d.NewExposures = shares, exposed

	return d
}

func (r *runner) quiet() bool {
	for _, s := range r.state {
		if s == trust.Exposed || s == trust.Infected {
			return false
		}
	}
	return true
}
