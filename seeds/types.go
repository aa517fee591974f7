package seeds

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/influence/metrics"
	"github.com/katalvlaran/influence/spread"
	"github.com/katalvlaran/influence/trust"
)

// Sentinel errors for seed selection.
var (
	ErrNilGraph                = errors.New("seeds: graph is nil")
	ErrNoCandidates            = errors.New("seeds: no susceptible candidates")
	ErrBadBudget               = errors.New("seeds: budget must be ≥ 1")
	ErrBudgetExceedsPopulation = errors.New("seeds: budget exceeds candidate population")
	ErrBadSimulations          = errors.New("seeds: simulation count must be ≥ 1")
	ErrUnknownNode             = errors.New("seeds: unknown node")
	ErrOptionViolation         = errors.New("seeds: invalid option supplied")
)

// DefaultSimulations is the Monte-Carlo run count per spread estimate.
const DefaultSimulations = 100

// Algorithm selects the greedy variant.
type Algorithm int

const (
	CELF Algorithm = iota
	CELFPlusPlus
	Greedy
)

// String returns "celf", "celfpp" or "greedy".
func (a Algorithm) String() string {
	switch a {
	case CELF:
		return "celf"
	case CELFPlusPlus:
		return "celfpp"
	case Greedy:
		return "greedy"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// ParseAlgorithm maps "celf", "celfpp"/"celf++" or "greedy" to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "celf", "":
		return CELF, nil
	case "celfpp", "celf++":
		return CELFPlusPlus, nil
	case "greedy":
		return Greedy, nil
	}
	return CELF, fmt.Errorf("%w: algorithm %q", ErrOptionViolation, s)
}

// Options configures a selection.
type Options struct {
	Algorithm   Algorithm
	Simulations int
	// Estimator runs the simulations; nil builds a default one per call.
	Estimator  *spread.Estimator
	Candidates []trust.NodeID
	Logger     *zap.Logger
	Metrics    *metrics.Metrics

	err error
}

// Option configures Select via functional arguments.
type Option func(*Options)

// DefaultOptions returns CELF with DefaultSimulations runs and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Algorithm:   CELF,
		Simulations: DefaultSimulations,
		Logger:      zap.NewNop(),
	}
}

// WithAlgorithm selects CELF, CELFPlusPlus or Greedy.
func WithAlgorithm(a Algorithm) Option {
	return func(o *Options) {
		if a < CELF || a > Greedy {
			o.err = fmt.Errorf("%w: algorithm %d", ErrOptionViolation, int(a))
			return
		}
		o.Algorithm = a
	}
}

// WithSimulations sets the run count per estimate. Values below one are
// reported as ErrBadSimulations by Select.
func WithSimulations(n int) Option {
	return func(o *Options) { o.Simulations = n }
}

// WithEstimator shares an estimator, e.g. to fix its seed or worker count.
func WithEstimator(e *spread.Estimator) Option {
	return func(o *Options) {
		if e == nil {
			o.err = fmt.Errorf("%w: nil estimator", ErrOptionViolation)
			return
		}
		o.Estimator = e
	}
}

// WithCandidates restricts the pool to the susceptible members of ids.
// Use it to bound latency on large graphs.
func WithCandidates(ids ...trust.NodeID) Option {
	return func(o *Options) {
		o.Candidates = append([]trust.NodeID{}, ids...)
	}
}

// WithLogger attaches a structured logger.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics attaches Prometheus collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// Stats counts the work a selection performed.
type Stats struct {
	// SpreadCalls is the number of simulation passes, InitCalls + LazyCalls.
	SpreadCalls int
	// InitCalls are passes spent on first-round gains.
	InitCalls int
	// LazyCalls are passes spent refreshing stale gains in later rounds.
	LazyCalls int
	// Recomputations counts refreshed heap tops, with or without a pass.
	Recomputations int
	// Lookaheads counts mg2 values computed (CELF++ only).
	Lookaheads int
	// LookaheadHits counts refreshes served from mg2 without a pass.
	LookaheadHits int
}

// Result is the outcome of a selection.
type Result struct {
	// Seeds in selection order, first-chosen first.
	Seeds []trust.NodeID
	// Gains[i] is the estimated marginal gain of Seeds[i] when it was chosen.
	Gains []float64
	// Spread is the estimated spread of all Seeds.
	Spread float64
	Stats  Stats
}
