package spread

import (
	"context"
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/trust"
)

// noExtra marks a simulation without a look-ahead node.
const noExtra trust.NodeID = -1

// Estimator runs Monte-Carlo spread estimates. It is safe for concurrent use.
type Estimator struct {
	opts  Options
	calls atomic.Int64
	epoch atomic.Uint64
}

// New builds an Estimator. It returns ErrOptionViolation for invalid options.
func New(opts ...Option) (*Estimator, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	return &Estimator{opts: o}, nil
}

// Options returns the resolved configuration.
func (e *Estimator) Options() Options { return e.opts }

// Calls returns how many simulation passes the estimator has made. A pass
// is one Estimate, Total or Joint call that ran simulations; estimates of
// the empty seed set are not counted.
func (e *Estimator) Calls() int64 { return e.calls.Load() }

// Estimate prepares a snapshot of g for item and returns the mean number of
// convinced nodes over runs simulations seeded at seeds.
func (e *Estimator) Estimate(ctx context.Context, g *trust.Graph, seeds []trust.NodeID, item meme.Content, runs int) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if runs < 1 {
		return 0, ErrBadSimulations
	}
	m, err := Prepare(g, item)
	if err != nil {
		return 0, err
	}

	return e.EstimateModel(ctx, m, seeds, runs)
}

// EstimateModel is Estimate over a prepared snapshot. Callers estimating many
// seed sets against one graph should prepare once and call this.
//
// The empty seed set spreads to nobody: it returns 0 without simulating.
// Duplicate seeds count once.
func (e *Estimator) EstimateModel(ctx context.Context, m *Model, seeds []trust.NodeID, runs int) (float64, error) {
	total, err := e.Total(ctx, m, seeds, runs)
	if err != nil {
		return 0, err
	}

	return float64(total) / float64(runs), nil
}

// Total returns the summed infected count over runs simulations, the exact
// integer behind EstimateModel. Comparing totals instead of means keeps
// marginal gains free of rounding.
func (e *Estimator) Total(ctx context.Context, m *Model, seeds []trust.NodeID, runs int) (int64, error) {
	if err := e.check(m, seeds, runs); err != nil {
		return 0, err
	}
	if len(seeds) == 0 {
		return 0, nil
	}
	base, _, err := e.pass(ctx, m, seeds, noExtra, runs)

	return base, err
}

// Joint returns, from a single pass of runs simulations, the totals for
// seeds and for seeds ∪ {extra}. Each run first cascades from seeds, then
// continues the same run from extra.
func (e *Estimator) Joint(ctx context.Context, m *Model, seeds []trust.NodeID, extra trust.NodeID, runs int) (base, joint int64, err error) {
	if err = e.check(m, append(seeds[:len(seeds):len(seeds)], extra), runs); err != nil {
		return 0, 0, err
	}

	return e.pass(ctx, m, seeds, extra, runs)
}

// Run replays run number run of the current epoch and returns its infected
// count. Summing Run over 0..R-1 gives what Total returns with shared draws.
func (e *Estimator) Run(m *Model, seeds []trust.NodeID, run int) (int, error) {
	if err := e.check(m, seeds, 1); err != nil {
		return 0, err
	}

	return newCascade(m).run(seeds, runKey(e.opts.Seed, e.epoch.Load(), run)), nil
}

func (e *Estimator) check(m *Model, seeds []trust.NodeID, runs int) error {
	if m == nil {
		return ErrNilGraph
	}
	if runs < 1 {
		return fmt.Errorf("%w: %d", ErrBadSimulations, runs)
	}

	return m.checkSeeds(seeds)
}

// pass runs one simulation pass and does the bookkeeping.
func (e *Estimator) pass(ctx context.Context, m *Model, seeds []trust.NodeID, extra trust.NodeID, runs int) (int64, int64, error) {
	var epoch uint64
	if e.opts.IndependentDraws {
		epoch = e.epoch.Add(1)
	} else {
		epoch = e.epoch.Load()
	}

	base, joint, err := e.simulate(ctx, m, seeds, extra, runs, epoch)
	if err != nil {
		return 0, 0, err
	}
	e.calls.Add(1)
	e.opts.Metrics.ObserveEstimate(runs)
	e.opts.Logger.Debug("spread: pass",
		zap.String("item", m.item),
		zap.Int("seeds", len(seeds)),
		zap.Bool("lookahead", extra != noExtra),
		zap.Int("runs", runs),
		zap.Uint64("epoch", epoch),
		zap.Int64("total", base),
	)

	return base, joint, nil
}

// simulate splits runs into contiguous chunks, one per worker. Integer totals
// make the sums independent of how runs are split.
func (e *Estimator) simulate(ctx context.Context, m *Model, seeds []trust.NodeID, extra trust.NodeID, runs int, epoch uint64) (int64, int64, error) {
	workers := min(e.opts.Workers, runs)
	type sums struct{ base, joint int64 }
	partial := make([]sums, workers)
	chunk := (runs + workers - 1) / workers

	grp, gctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		lo, hi := w*chunk, min((w+1)*chunk, runs)
		if lo >= hi {
			continue
		}
		w := w
		grp.Go(func() error {
			c := newCascade(m)
			var s sums
			for r := lo; r < hi; r++ {
				if err := gctx.Err(); err != nil {
					return err
				}
				key := runKey(e.opts.Seed, epoch, r)
				s.base += int64(c.run(seeds, key))
				if extra != noExtra {
					s.joint += int64(c.extend(extra, key))
				}
			}
			partial[w] = s
			return nil
		})
	}
	if err := grp.Wait(); err != nil {
		return 0, 0, err
	}

	var base, joint int64
	for _, s := range partial {
		base += s.base
		joint += s.joint
	}

	return base, joint, nil
}

// Estimate is a convenience wrapper using a fresh default Estimator.
func Estimate(ctx context.Context, g *trust.Graph, seeds []trust.NodeID, item meme.Content, runs int) (float64, error) {
	e, err := New()
	if err != nil {
		return 0, err
	}

	return e.Estimate(ctx, g, seeds, item, runs)
}
