package cascade

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/katalvlaran/influence/metrics"
	"github.com/katalvlaran/influence/trust"
)

// Sentinel errors for cascade runs.
var (
	ErrNilGraph        = errors.New("cascade: graph is nil")
	ErrUnknownNode     = errors.New("cascade: unknown node")
	ErrSeedResistant   = errors.New("cascade: seed is resistant")
	ErrOptionViolation = errors.New("cascade: invalid option supplied")
)

// Defaults.
const (
	DefaultDays               = 14
	DefaultRecoveryDays       = 7
	DefaultSeed         int64 = 1
)

// Options configures a Run.
type Options struct {
	Days         int
	RecoveryDays int
	Seed         int64
	Logger       *zap.Logger
	Metrics      *metrics.Metrics

	err error
}

// Option configures Run via functional arguments.
type Option func(*Options)

// DefaultOptions returns DefaultDays, DefaultRecoveryDays, DefaultSeed and a
// no-op logger.
func DefaultOptions() Options {
	return Options{
		Days:         DefaultDays,
		RecoveryDays: DefaultRecoveryDays,
		Seed:         DefaultSeed,
		Logger:       zap.NewNop(),
	}
}

// WithDays bounds the run to n days (n ≥ 1).
func WithDays(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: days must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.Days = n
	}
}

// WithRecoveryDays sets how long a node stays Infected (n ≥ 1).
func WithRecoveryDays(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: recovery days must be ≥ 1 (%d)", ErrOptionViolation, n)
			return
		}
		o.RecoveryDays = n
	}
}

// WithSeed seeds the random source.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.Seed = seed }
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

// Day is the state census at the end of one simulated day.
type Day struct {
	Day         int `json:"day"`
	Susceptible int `json:"susceptible"`
	Exposed     int `json:"exposed"`
	Infected    int `json:"infected"`
	Resistant   int `json:"resistant"`
	// Shares counts infected nodes that shared that day.
	Shares int `json:"shares"`
	// NewExposures counts nodes that accepted the item that day.
	NewExposures int `json:"new_exposures"`
}

// Outcome is the result of a Run.
type Outcome struct {
	// Graph is the clone the run mutated, holding the final states.
	Graph *trust.Graph
	// History[0] is the census after seeding; History[d] the end of day d.
	History []Day
	// Reached counts nodes that left Susceptible during the run, seeds
	// included.
	Reached int
	// Quiescent reports that the run ended early with nothing Exposed or
	// Infected.
	Quiescent bool
}

// Final returns the last census.
func (o *Outcome) Final() Day {
	return o.History[len(o.History)-1]
}

func census(day int, states []trust.State) Day {
	d := Day{Day: day}
	for _, s := range states {
		switch s {
		case trust.Susceptible:
			d.Susceptible++
		case trust.Exposed:
			d.Exposed++
		case trust.Infected:
			d.Infected++
		case trust.Resistant:
			d.Resistant++
		}
	}

	return d
}
