package spread_test

import (
	"context"
	"math/rand"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/metrics"
	"github.com/katalvlaran/influence/spread"
	"github.com/katalvlaran/influence/trust"
)

var news = meme.Content{
	ID: "news",
	Attributes: meme.Attributes{
		PoliticalBias:     0,
		FactualAccuracy:   0.9,
		Complexity:        0.5,
		Virality:          0.5,
		SourceCredibility: 1,
	},
}

func community(t *testing.T, seed int64, n int, p float64) *trust.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithTrustFn(builder.UniformTrustFn(0.3, 1)),
		builder.WithAttributeFn(builder.RandomAttributes),
	}, builder.RandomSparse(n, p))
	require.NoError(t, err)

	return g
}

func mustEstimator(t *testing.T, opts ...spread.Option) *spread.Estimator {
	t.Helper()
	e, err := spread.New(opts...)
	require.NoError(t, err)

	return e
}

// A lone neighbor accepts with p = 0.3 × 0.5 × 1 × 1.25 × 1 = 0.1875.
func TestEstimate_ConvergesOnPair(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(2))
	got, err := spread.Estimate(context.Background(), g, []trust.NodeID{0}, news, 20000)
	require.NoError(t, err)
	require.InDelta(t, 1.1875, got, 0.015)
}

func TestEstimate_Bounds(t *testing.T) {
	g := community(t, 3, 30, 0.1)
	e := mustEstimator(t)
	ctx := context.Background()

	for _, seeds := range [][]trust.NodeID{{0}, {1, 2, 3}, {4, 4, 4}} {
		got, err := e.Estimate(ctx, g, seeds, news, 200)
		require.NoError(t, err)
		uniq := map[trust.NodeID]bool{}
		for _, s := range seeds {
			uniq[s] = true
		}
		require.GreaterOrEqual(t, got, float64(len(uniq)))
		require.LessOrEqual(t, got, float64(g.Len()))
	}

	got, err := e.Estimate(ctx, g, nil, news, 10)
	require.NoError(t, err)
	require.Zero(t, got)
	require.Equal(t, int64(3), e.Calls(), "empty seed set is not simulated")
}

func TestEstimate_IsolatedNode(t *testing.T) {
	g := builder.MustBuild(nil, builder.Complete(1))
	got, err := spread.Estimate(context.Background(), g, []trust.NodeID{0}, news, 5)
	require.NoError(t, err)
	require.Equal(t, 1.0, got)
}

func TestEstimate_Errors(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(3))
	ctx := context.Background()

	_, err := spread.Estimate(ctx, nil, []trust.NodeID{0}, news, 10)
	require.ErrorIs(t, err, spread.ErrNilGraph)

	_, err = spread.Estimate(ctx, g, []trust.NodeID{0}, news, 0)
	require.ErrorIs(t, err, spread.ErrBadSimulations)

	_, err = spread.Estimate(ctx, g, []trust.NodeID{0, 8}, news, 10)
	require.ErrorIs(t, err, spread.ErrUnknownNode)
	require.ErrorIs(t, err, trust.ErrNodeNotFound)

	_, err = spread.New(spread.WithWorkers(0))
	require.ErrorIs(t, err, spread.ErrOptionViolation)

	ctx2, cancel := context.WithCancel(ctx)
	cancel()
	_, err = spread.Estimate(ctx2, g, []trust.NodeID{0}, news, 10)
	require.ErrorIs(t, err, context.Canceled)
}

func TestEstimate_DeterministicAcrossWorkers(t *testing.T) {
	g := community(t, 5, 40, 0.08)
	m, err := spread.Prepare(g, news)
	require.NoError(t, err)
	seeds := []trust.NodeID{0, 7, 19}

	var ref float64
	for i, workers := range []int{1, 2, 3, 8, 64} {
		e := mustEstimator(t, spread.WithSeed(99), spread.WithWorkers(workers))
		got, err := e.EstimateModel(context.Background(), m, seeds, 301)
		require.NoError(t, err)
		if i == 0 {
			ref = got
			continue
		}
		require.Equal(t, ref, got, "workers=%d", workers)
	}

	// Replaying individual runs reproduces the mean.
	e := mustEstimator(t, spread.WithSeed(99))
	total := 0
	for r := 0; r < 301; r++ {
		c, err := e.Run(m, seeds, r)
		require.NoError(t, err)
		total += c
	}
	require.Equal(t, ref, float64(total)/301)

	other := mustEstimator(t, spread.WithSeed(100))
	require.NotEqual(t, runs(t, e, m, seeds), runs(t, other, m, seeds), "a different seed samples different cascades")
}

// runs replays the first 64 runs of the estimator's current epoch.
func runs(t *testing.T, e *spread.Estimator, m *spread.Model, seeds []trust.NodeID) []int {
	t.Helper()
	out := make([]int, 64)
	for r := range out {
		c, err := e.Run(m, seeds, r)
		require.NoError(t, err)
		out[r] = c
	}

	return out
}

func TestEstimate_IndependentDraws(t *testing.T) {
	g := community(t, 8, 40, 0.1)
	m, err := spread.Prepare(g, news)
	require.NoError(t, err)
	seeds := []trust.NodeID{0, 1}
	e := mustEstimator(t, spread.WithIndependentDraws())
	ctx := context.Background()

	_, err = e.EstimateModel(ctx, m, seeds, 10)
	require.NoError(t, err)
	first := runs(t, e, m, seeds)
	_, err = e.EstimateModel(ctx, m, seeds, 10)
	require.NoError(t, err)
	require.NotEqual(t, first, runs(t, e, m, seeds))

	shared := mustEstimator(t)
	a, err := shared.EstimateModel(ctx, m, seeds, 100)
	require.NoError(t, err)
	b, err := shared.EstimateModel(ctx, m, seeds, 100)
	require.NoError(t, err)
	require.Equal(t, a, b)
}

// With shared draws σ̂ is a coverage function: monotone and submodular for
// every sample, not only in expectation.
func TestEstimate_MonotoneSubmodular(t *testing.T) {
	g := community(t, 13, 25, 0.12)
	m, err := spread.Prepare(g, news)
	require.NoError(t, err)
	e := mustEstimator(t, spread.WithSeed(4))
	ctx := context.Background()
	rng := rand.New(rand.NewSource(2))

	sigma := func(set []trust.NodeID) float64 {
		v, err := e.EstimateModel(ctx, m, set, 64)
		require.NoError(t, err)
		return v
	}
	for trial := 0; trial < 40; trial++ {
		perm := rng.Perm(g.Len())
		S := toIDs(perm[:2])
		T := toIDs(perm[:5])
		u := trust.NodeID(perm[6])

		gainS := sigma(append(append([]trust.NodeID{}, S...), u)) - sigma(S)
		gainT := sigma(append(append([]trust.NodeID{}, T...), u)) - sigma(T)
		require.LessOrEqual(t, gainT, gainS+1e-9, "trial %d", trial)
		require.GreaterOrEqual(t, gainT, -1e-9, "monotone, trial %d", trial)
	}
}

func TestEstimate_LeavesGraphUntouched(t *testing.T) {
	g := community(t, 21, 20, 0.2)
	require.NoError(t, g.SetState(3, trust.Resistant))
	before, edges := g.States(), g.Edges()

	_, err := spread.Estimate(context.Background(), g, []trust.NodeID{0, 3}, news, 50)
	require.NoError(t, err)
	require.Equal(t, before, g.States())
	require.Equal(t, edges, g.Edges())
}

func TestEstimate_Metrics(t *testing.T) {
	m := metrics.New(prometheus.NewRegistry())
	e := mustEstimator(t, spread.WithMetrics(m))
	g := builder.MustBuild(nil, builder.Cycle(4))

	for i := 0; i < 3; i++ {
		_, err := e.Estimate(context.Background(), g, []trust.NodeID{0}, news, 25)
		require.NoError(t, err)
	}
	require.Equal(t, 3.0, testutil.ToFloat64(m.SpreadEstimates))
	require.Equal(t, 75.0, testutil.ToFloat64(m.SimulationRuns))
}

func toIDs(xs []int) []trust.NodeID {
	out := make([]trust.NodeID, len(xs))
	for i, x := range xs {
		out[i] = trust.NodeID(x)
	}

	return out
}

func TestJoint_MatchesSeparateTotals(t *testing.T) {
	g := community(t, 17, 30, 0.12)
	m, err := spread.Prepare(g, news)
	require.NoError(t, err)
	e := mustEstimator(t, spread.WithSeed(8), spread.WithWorkers(3))
	ctx := context.Background()

	for _, tc := range []struct {
		seeds []trust.NodeID
		extra trust.NodeID
	}{
		{[]trust.NodeID{0}, 5},
		{[]trust.NodeID{2, 9}, 11},
		{[]trust.NodeID{4}, 4},
		{nil, 3},
	} {
		before := e.Calls()
		base, joint, err := e.Joint(ctx, m, tc.seeds, tc.extra, 120)
		require.NoError(t, err)
		require.Equal(t, before+1, e.Calls(), "one pass")

		wantBase, err := e.Total(ctx, m, tc.seeds, 120)
		require.NoError(t, err)
		wantJoint, err := e.Total(ctx, m, append(append([]trust.NodeID{}, tc.seeds...), tc.extra), 120)
		require.NoError(t, err)
		require.Equal(t, wantBase, base)
		require.Equal(t, wantJoint, joint)
		require.GreaterOrEqual(t, joint, base)
	}

	_, _, err = e.Joint(ctx, m, []trust.NodeID{0}, 99, 10)
	require.ErrorIs(t, err, spread.ErrUnknownNode)
}
