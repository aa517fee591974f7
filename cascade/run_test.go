package cascade_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/cascade"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/metrics"
	"github.com/katalvlaran/influence/trust"
)

var rumor = meme.Content{
	ID: "rumor",
	Attributes: meme.Attributes{
		EmotionalIntensity: 1,
		FactualAccuracy:    1,
		Virality:           1,
		SourceCredibility:  1,
	},
}

func town(t *testing.T, seed int64) *trust.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithTrustFn(builder.UniformTrustFn(0.5, 1)),
		builder.WithAttributeFn(builder.RandomAttributes),
	}, builder.RandomSparse(40, 0.12))
	require.NoError(t, err)

	return g
}

func TestRunLeavesCallerGraph(t *testing.T) {
	g := town(t, 3)
	require.NoError(t, g.SetState(5, trust.Resistant))
	before, edges := g.States(), g.Edges()

	out, err := cascade.Run(context.Background(), g, rumor, []trust.NodeID{0, 1})
	require.NoError(t, err)
	require.Equal(t, before, g.States())
	require.Equal(t, edges, g.Edges())
	require.NotSame(t, g, out.Graph)

	st, err := out.Graph.State(5)
	require.NoError(t, err)
	require.Equal(t, trust.Resistant, st, "resistant nodes never change")
	require.Equal(t, out.Graph.CountStates()[trust.Susceptible], out.Final().Susceptible)
}

// TestRunCensus checks the bookkeeping that holds on every run: exposures
// last exactly one day, and I + R grows by yesterday's E.
func TestRunCensus(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g := town(t, seed)
		out, err := cascade.Run(context.Background(), g, rumor, []trust.NodeID{0}, cascade.WithSeed(seed), cascade.WithDays(30))
		require.NoError(t, err)

		h := out.History
		require.Equal(t, 1, h[0].Infected)
		require.Equal(t, g.Len()-1, h[0].Susceptible)
		for d := range h {
			require.Equal(t, d, h[d].Day)
			require.Equal(t, g.Len(), h[d].Susceptible+h[d].Exposed+h[d].Infected+h[d].Resistant)
			if d == 0 {
				continue
			}
			require.Equal(t, h[d].NewExposures, h[d].Exposed)
			require.Equal(t, h[d-1].Susceptible-h[d].Susceptible, h[d].NewExposures)
			require.Equal(t, h[d-1].Infected+h[d-1].Resistant+h[d-1].Exposed, h[d].Infected+h[d].Resistant)
			require.LessOrEqual(t, h[d].Shares, h[d].Infected)
		}
		require.Equal(t, g.Len()-out.Final().Susceptible, out.Reached)
		if out.Quiescent {
			require.Zero(t, out.Final().Infected)
			require.Zero(t, out.Final().Exposed)
		}
	}
}

func TestRunDeterministic(t *testing.T) {
	g := town(t, 4)
	seeds := []trust.NodeID{2, 9}
	a, err := cascade.Run(context.Background(), g, rumor, seeds, cascade.WithSeed(77))
	require.NoError(t, err)
	b, err := cascade.Run(context.Background(), g, rumor, seeds, cascade.WithSeed(77))
	require.NoError(t, err)
	require.Equal(t, a.History, b.History)
	require.Equal(t, a.Graph.States(), b.Graph.States())
}

func TestRunReaches(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{
		builder.WithTrust(1),
		builder.WithAttributes(trust.Attributes{EmotionalSusceptibility: 1, Education: 0.5, SocialActivity: 1}),
	}, builder.Complete(8))

	best := 0
	for seed := int64(1); seed <= 10; seed++ {
		out, err := cascade.Run(context.Background(), g, rumor, []trust.NodeID{0}, cascade.WithSeed(seed))
		require.NoError(t, err)
		best = max(best, out.Reached)
	}
	require.Greater(t, best, 1)
}

func TestRunRecovery(t *testing.T) {
	g := trust.New()
	for _, l := range []string{"a", "b", "c"} {
		_, err := g.AddNode(l, "", trust.Attributes{})
		require.NoError(t, err)
	}

	out, err := cascade.Run(context.Background(), g, rumor, []trust.NodeID{0}, cascade.WithRecoveryDays(3), cascade.WithDays(10))
	require.NoError(t, err)
	require.True(t, out.Quiescent)
	require.Len(t, out.History, 4)
	require.Equal(t, 1, out.History[2].Infected)
	require.Equal(t, 1, out.History[3].Resistant)
	require.Equal(t, 1, out.Reached)

	out, err = cascade.Run(context.Background(), g, rumor, nil)
	require.NoError(t, err)
	require.True(t, out.Quiescent)
	require.Len(t, out.History, 1)
	require.Zero(t, out.Reached)
}

func TestRunPreInfected(t *testing.T) {
	g := trust.New()
	for _, l := range []string{"a", "b"} {
		_, err := g.AddNode(l, "", trust.Attributes{})
		require.NoError(t, err)
	}
	require.NoError(t, g.SetState(1, trust.Infected))

	out, err := cascade.Run(context.Background(), g, rumor, nil, cascade.WithRecoveryDays(2))
	require.NoError(t, err)
	require.Equal(t, 1, out.History[0].Infected)
	require.Equal(t, 1, out.Final().Resistant)
	require.Zero(t, out.Reached, "only nodes that were susceptible count as reached")
}

func TestRunErrors(t *testing.T) {
	ctx := context.Background()
	g := builder.MustBuild(nil, builder.Path(3))

	_, err := cascade.Run(ctx, nil, rumor, nil)
	require.ErrorIs(t, err, cascade.ErrNilGraph)

	_, err = cascade.Run(ctx, g, rumor, []trust.NodeID{7})
	require.ErrorIs(t, err, cascade.ErrUnknownNode)
	require.ErrorIs(t, err, trust.ErrNodeNotFound)

	_, err = cascade.Run(ctx, g, rumor, nil, cascade.WithDays(0))
	require.ErrorIs(t, err, cascade.ErrOptionViolation)

	_, err = cascade.Run(ctx, g, rumor, nil, cascade.WithRecoveryDays(-1))
	require.ErrorIs(t, err, cascade.ErrOptionViolation)

	require.NoError(t, g.SetState(2, trust.Resistant))
	_, err = cascade.Run(ctx, g, rumor, []trust.NodeID{2})
	require.ErrorIs(t, err, cascade.ErrSeedResistant)

	canceled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = cascade.Run(canceled, g, rumor, []trust.NodeID{0})
	require.ErrorIs(t, err, context.Canceled)
}

func TestRunObservability(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := metrics.New(prometheus.NewRegistry())
	g := town(t, 6)

	out, err := cascade.Run(context.Background(), g, rumor, []trust.NodeID{0},
		cascade.WithLogger(zap.New(core)), cascade.WithMetrics(m))
	require.NoError(t, err)

	days := len(out.History) - 1
	require.Equal(t, float64(days), testutil.ToFloat64(m.CascadeSteps))
	require.Equal(t, days, logs.FilterMessage("cascade: day simulated").Len())
	done := logs.FilterMessage("cascade: run finished").All()
	require.Len(t, done, 1)
	require.Equal(t, int64(out.Reached), done[0].ContextMap()["reached"])
}
