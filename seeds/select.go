package seeds

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/spread"
	"github.com/katalvlaran/influence/trust"
)

// Gain-evaluation phases reported to metrics.
const (
	phaseInit = "init"
	phaseLazy = "lazy"
)

// Select chooses budget seeds for item on g. See the package documentation
// for the validation order and the algorithms.
func Select(ctx context.Context, g *trust.Graph, item meme.Content, budget int, opts ...Option) (*Result, error) {
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
	if o.Simulations < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadSimulations, o.Simulations)
	}
	cands, err := candidates(g, o.Candidates)
	if err != nil {
		return nil, err
	}
	if len(cands) == 0 {
		return &Result{}, ErrNoCandidates
	}
	if budget < 1 {
		return nil, fmt.Errorf("%w: %d", ErrBadBudget, budget)
	}
	if budget > len(cands) {
		return nil, fmt.Errorf("%w: budget %d > %d candidates", ErrBudgetExceedsPopulation, budget, len(cands))
	}

	est := o.Estimator
	if est == nil {
		if est, err = spread.New(spread.WithLogger(o.Logger), spread.WithMetrics(o.Metrics)); err != nil {
			return nil, err
		}
	}
	model, err := spread.Prepare(g, item)
	if err != nil {
		return nil, err
	}

	s := &selector{
		ctx:   ctx,
		est:   est,
		model: model,
		runs:  o.Simulations,
		opts:  o,
		seeds: make([]trust.NodeID, 0, budget),
		gains: make([]int64, 0, budget),
	}
	start := time.Now()
	switch o.Algorithm {
	case CELFPlusPlus:
		err = s.celfpp(cands, budget)
	case Greedy:
		err = s.greedy(cands, budget)
	default:
		err = s.celf(cands, budget)
	}
	if err != nil {
		return nil, err
	}

	res := s.result()
	o.Logger.Info("seeds: selection finished",
		zap.String("algorithm", o.Algorithm.String()),
		zap.String("item", item.ID),
		zap.Int("budget", budget),
		zap.Int("candidates", len(cands)),
		zap.Float64("spread", res.Spread),
		zap.Int("spread_calls", res.Stats.SpreadCalls),
		zap.Int("lookahead_hits", res.Stats.LookaheadHits),
		zap.Duration("elapsed", time.Since(start)),
	)

	return res, nil
}

// candidates resolves the pool: the susceptible members of ids (deduplicated,
// order kept) or every susceptible node in ascending id order.
func candidates(g *trust.Graph, ids []trust.NodeID) ([]trust.NodeID, error) {
	if ids == nil {
		return g.Susceptible(), nil
	}
	out := make([]trust.NodeID, 0, len(ids))
	seen := make(map[trust.NodeID]bool, len(ids))
	for _, id := range ids {
		st, err := g.State(id)
		if err != nil {
			return nil, fmt.Errorf("%w: candidate %d: %w", ErrUnknownNode, id, err)
		}
		if st != trust.Susceptible || seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}

	return out, nil
}

// selector holds the mutable state of one selection.
type selector struct {
	ctx   context.Context
	est   *spread.Estimator
	model *spread.Model
	runs  int
	opts  Options

	seeds []trust.NodeID
	gains []int64
	total int64 // σ(S) as a run total
	stats Stats
}

// with returns S ∪ {u} without aliasing s.seeds.
func (s *selector) with(u trust.NodeID) []trust.NodeID {
	return append(s.seeds[:len(s.seeds):len(s.seeds)], u)
}

func (s *selector) count(phase string) {
	s.stats.SpreadCalls++
	if phase == phaseInit {
		s.stats.InitCalls++
	} else {
		s.stats.LazyCalls++
	}
	s.opts.Metrics.ObserveGain(s.opts.Algorithm.String(), phase)
}

// evaluate returns σ(S ∪ {u}).
func (s *selector) evaluate(u trust.NodeID, phase string) (int64, error) {
	t, err := s.est.Total(s.ctx, s.model, s.with(u), s.runs)
	if err != nil {
		return 0, err
	}
	s.count(phase)

	return t, nil
}

// evaluateAhead returns σ(S ∪ {u}) and σ(S ∪ {u, best}) from one pass.
func (s *selector) evaluateAhead(u, best trust.NodeID, phase string) (int64, int64, error) {
	t, t2, err := s.est.Joint(s.ctx, s.model, s.with(u), best, s.runs)
	if err != nil {
		return 0, 0, err
	}
	s.count(phase)
	s.stats.Lookaheads++

	return t, t2, nil
}

// accept makes c the next seed.
func (s *selector) accept(c *candidate) {
	s.seeds = append(s.seeds, c.id)
	s.gains = append(s.gains, c.gain)
	s.total = c.total
	s.opts.Metrics.ObserveSeed(s.opts.Algorithm.String())
	s.opts.Logger.Debug("seeds: seed chosen",
		zap.Int("round", len(s.seeds)),
		zap.Int("node", int(c.id)),
		zap.Float64("gain", s.mean(c.gain)),
		zap.Int("spread_calls", s.stats.SpreadCalls),
	)
}

func (s *selector) mean(total int64) float64 {
	return float64(total) / float64(s.runs)
}

func (s *selector) result() *Result {
	res := &Result{
		Seeds:  s.seeds,
		Gains:  make([]float64, len(s.gains)),
		Spread: s.mean(s.total),
		Stats:  s.stats,
	}
	for i, g := range s.gains {
		res.Gains[i] = s.mean(g)
	}

	return res
}
