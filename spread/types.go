package spread

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/influence/metrics"
)

// Sentinel errors for spread estimation.
var (
	// ErrNilGraph indicates a nil graph.
	ErrNilGraph = errors.New("spread: graph is nil")

	// ErrBadSimulations indicates a simulation count below one.
	ErrBadSimulations = errors.New("spread: simulation count must be ≥ 1")

	// ErrUnknownNode indicates a seed id that is not in the graph.
	ErrUnknownNode = errors.New("spread: unknown node")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = errors.New("spread: invalid option supplied")
)

// DefaultSeed is the base seed when none is configured.
const DefaultSeed int64 = 1

// Options configures an Estimator.
type Options struct {
	// Seed is the base of every draw.
	Seed int64
	// Workers is the number of goroutines sharing the runs of one estimate.
	Workers int
	// IndependentDraws advances the epoch on every Estimate call.
	IndependentDraws bool
	Logger           *zap.Logger
	Metrics          *metrics.Metrics

	err error
}

// Option configures an Estimator via functional arguments.
type Option func(*Options)

// DefaultOptions returns seed DefaultSeed, one worker, shared draws and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Seed:    DefaultSeed,
		Workers: 1,
		Logger:  zap.NewNop(),
	}
}

// WithSeed sets the base seed.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
}

// WithWorkers spreads the runs of each estimate over n goroutines (n ≥ 1).
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithIndependentDraws gives every Estimate call fresh randomness.
func WithIndependentDraws() Option {
	return func(o *Options) { o.IndependentDraws = true }
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
