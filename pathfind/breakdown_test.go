package pathfind_test

import (
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/metrics"
	"github.com/katalvlaran/influence/pathfind"
	"github.com/katalvlaran/influence/trust"
)

func TestBreakdown_TrustGolden(t *testing.T) {
	g := builder.MustBuild(nil, builder.Cycle(5))

	got, err := pathfind.Breakdown(g, []trust.NodeID{0, 1, 2})
	require.NoError(t, err)
	want := "trust path 0 → 1 → 2\n" +
		"  0 → 1: trust=0.500 identity=×1.00 political=×1.000 activity=×0.900 cost=0.4500\n" +
		"  1 → 2: trust=0.500 identity=×1.00 political=×1.000 activity=×0.900 cost=0.4500\n" +
		"  total=0.9000 hops=2"
	require.Equal(t, want, got)
}

func TestBreakdown_ContentAndErrors(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(3))

	got, err := pathfind.Breakdown(g, []trust.NodeID{0, 1, 2},
		pathfind.WithMode(pathfind.ModeContent), pathfind.WithContent(rumor))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(got, "content path 0 → 1 → 2\n"))
	require.Equal(t, 2, strings.Count(got, " p="))
	require.Contains(t, got, "hops=2")

	_, err = pathfind.Breakdown(g, nil)
	require.ErrorIs(t, err, pathfind.ErrBadPath)
	_, err = pathfind.Breakdown(g, []trust.NodeID{0, 2})
	require.ErrorIs(t, err, pathfind.ErrBadPath)
	_, err = pathfind.Breakdown(g, []trust.NodeID{0, 9})
	require.ErrorIs(t, err, pathfind.ErrUnknownNode)
}

// Breakdown totals agree with Find costs on the same path.
func TestBreakdown_MatchesFind(t *testing.T) {
	g := randomGraph(t, 21, 10, 0.4)
	res, err := pathfind.Find(g, 0, 9)
	if err != nil {
		t.Skip("fixture disconnected")
	}
	text, err := pathfind.Breakdown(g, res.Path)
	require.NoError(t, err)

	sum := 0.0
	for i := 1; i < len(res.Path); i++ {
		c, err := pathfind.EdgeCost(g, res.Path[i-1], res.Path[i])
		require.NoError(t, err)
		sum += c
	}
	require.InDelta(t, res.Cost, sum, eps)
	require.Contains(t, text, "total=")
}

func TestFind_ObservesMetricsAndLogs(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	m := metrics.New(prometheus.NewRegistry())
	g := builder.MustBuild(nil, builder.Cycle(4), builder.Path(2))

	_, err := pathfind.Find(g, 0, 2, pathfind.WithLogger(zap.New(core)), pathfind.WithMetrics(m))
	require.NoError(t, err)
	_, err = pathfind.Find(g, 0, 5, pathfind.WithLogger(zap.New(core)), pathfind.WithMetrics(m))
	require.ErrorIs(t, err, pathfind.ErrNoPath)

	require.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("trust", "true")))
	require.Equal(t, 1.0, testutil.ToFloat64(m.Searches.WithLabelValues("trust", "false")))
	require.Equal(t, 2, logs.FilterMessage("pathfind: search finished").Len())
}
