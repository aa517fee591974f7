// Package metrics defines Prometheus collectors for the influence engines.
//
// A *Metrics is optional everywhere: every method is safe on a nil receiver,
// so engines call it unconditionally.
package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "influence"

// Metrics groups the collectors updated by pathfind, spread, seeds and cascade.
type Metrics struct {
	Searches         *prometheus.CounterVec
	SearchExpansions *prometheus.CounterVec
	SpreadEstimates  prometheus.Counter
	SimulationRuns   prometheus.Counter
	GainEvaluations  *prometheus.CounterVec
	LookaheadHits    prometheus.Counter
	SeedsSelected    *prometheus.CounterVec
	CascadeSteps     prometheus.Counter
}

// New creates the collectors and registers them with reg. A nil reg leaves
// them unregistered, which is convenient for tests that read values directly.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_searches_total",
				Help:      "Pathfinder invocations by cost mode and outcome",
			},
			[]string{"mode", "success"},
		),
		SearchExpansions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "path_expansions_total",
				Help:      "Nodes finalized by the pathfinder",
			},
			[]string{"mode"},
		),
		SpreadEstimates: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "spread_estimates_total",
				Help:      "Calls to the Monte-Carlo spread estimator",
			},
		),
		SimulationRuns: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "spread_simulation_runs_total",
				Help:      "Independent cascade runs simulated",
			},
		),
		GainEvaluations: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "seed_gain_evaluations_total",
				Help:      "Marginal gain evaluations by selection algorithm and phase",
			},
			[]string{"algorithm", "phase"},
		),
		LookaheadHits: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "seed_lookahead_hits_total",
				Help:      "CELF++ marginal gains reused from the look-ahead cache",
			},
		),
		SeedsSelected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "seeds_selected_total",
				Help:      "Seeds chosen by selection algorithm",
			},
			[]string{"algorithm"},
		),
		CascadeSteps: prometheus.NewCounter(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "cascade_steps_total",
				Help:      "Days simulated by time-stepped cascade runs",
			},
		),
	}
	if reg != nil {
		reg.MustRegister(
			m.Searches, m.SearchExpansions,
			m.SpreadEstimates, m.SimulationRuns,
			m.GainEvaluations, m.LookaheadHits, m.SeedsSelected,
			m.CascadeSteps,
		)
	}

	return m
}

// ObserveSearch records one pathfinder invocation.
func (m *Metrics) ObserveSearch(mode string, explored int, success bool) {
	if m == nil {
		return
	}
	m.Searches.WithLabelValues(mode, strconv.FormatBool(success)).Inc()
	m.SearchExpansions.WithLabelValues(mode).Add(float64(explored))
}

// ObserveEstimate records one spread estimate made of runs simulations.
func (m *Metrics) ObserveEstimate(runs int) {
	if m == nil {
		return
	}
	m.SpreadEstimates.Inc()
	m.SimulationRuns.Add(float64(runs))
}

// ObserveGain records one marginal gain evaluation; phase is "init" or "lazy".
func (m *Metrics) ObserveGain(algorithm, phase string) {
	if m == nil {
		return
	}
	m.GainEvaluations.WithLabelValues(algorithm, phase).Inc()
}

// ObserveLookaheadHit records one CELF++ cache reuse.
func (m *Metrics) ObserveLookaheadHit() {
	if m == nil {
		return
	}
	m.LookaheadHits.Inc()
}

// ObserveSeed records one selected seed.
func (m *Metrics) ObserveSeed(algorithm string) {
	if m == nil {
		return
	}
	m.SeedsSelected.WithLabelValues(algorithm).Inc()
}

// ObserveCascadeStep records one simulated day.
func (m *Metrics) ObserveCascadeStep() {
	if m == nil {
		return
	}
	m.CascadeSteps.Inc()
}
