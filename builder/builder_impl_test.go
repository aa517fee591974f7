// Package builder_test contains functional tests for all Constructor
// implementations, verifying topology, counts, composition and determinism.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/trust"
)

// hasEdge reports whether u—v exists in g.
func hasEdge(g *trust.Graph, u, v trust.NodeID) bool {
	_, ok := g.Trust(u, v)
	return ok
}

func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		ctor        builder.Constructor
		wantV       int
		wantE       int
		sampleCheck func(t *testing.T, g *trust.Graph)
	}{
		{
			name:  "Cycle(5)",
			ctor:  builder.Cycle(5),
			wantV: 5, wantE: 5,
			sampleCheck: func(t *testing.T, g *trust.Graph) {
				for i := 0; i < 5; i++ {
					u, v := trust.NodeID(i), trust.NodeID((i+1)%5)
					w, ok := g.Trust(u, v)
					require.True(t, ok, "missing ring edge %d—%d", u, v)
					require.Equal(t, builder.DefaultTrust, w)
				}
			},
		},
		{
			name:  "Path(4)",
			ctor:  builder.Path(4),
			wantV: 4, wantE: 3,
			sampleCheck: func(t *testing.T, g *trust.Graph) {
				require.True(t, hasEdge(g, 0, 1))
				require.True(t, hasEdge(g, 2, 3))
				require.False(t, hasEdge(g, 3, 0))
			},
		},
		{
			name:  "Star(6)",
			ctor:  builder.Star(6),
			wantV: 6, wantE: 5,
			sampleCheck: func(t *testing.T, g *trust.Graph) {
				d, err := g.Degree(0)
				require.NoError(t, err)
				require.Equal(t, 5, d)
				require.False(t, hasEdge(g, 1, 2))
			},
		},
		{
			name:  "Wheel(5)",
			ctor:  builder.Wheel(5),
			wantV: 5, wantE: 8,
			sampleCheck: func(t *testing.T, g *trust.Graph) {
				require.True(t, hasEdge(g, 4, 1), "rim closes")
				d, err := g.Degree(0)
				require.NoError(t, err)
				require.Equal(t, 4, d)
			},
		},
		{
			name:  "Complete(5)",
			ctor:  builder.Complete(5),
			wantV: 5, wantE: 10,
		},
		{
			name:  "Grid(2,3)",
			ctor:  builder.Grid(2, 3),
			wantV: 6, wantE: 7,
			sampleCheck: func(t *testing.T, g *trust.Graph) {
				require.True(t, hasEdge(g, 0, 3), "down edge")
				require.True(t, hasEdge(g, 4, 5), "right edge")
				require.False(t, hasEdge(g, 2, 3), "no wrap between rows")
			},
		},
		{
			name:  "RandomSparse(6,1)",
			ctor:  builder.RandomSparse(6, 1),
			wantV: 6, wantE: 15,
		},
		{
			name:  "RandomSparse(6,0)",
			ctor:  builder.RandomSparse(6, 0),
			wantV: 6, wantE: 0,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, nil, tc.ctor)
			require.NoError(t, err)
			require.Equal(t, tc.wantV, g.Len())
			require.Equal(t, tc.wantE, g.EdgeCount())
			require.NoError(t, g.Validate())
			if tc.sampleCheck != nil {
				tc.sampleCheck(t, g)
			}
		})
	}
}

func TestBuilders_Errors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		ctor builder.Constructor
		want error
	}{
		{"Cycle(2)", builder.Cycle(2), builder.ErrTooFewVertices},
		{"Path(1)", builder.Path(1), builder.ErrTooFewVertices},
		{"Star(1)", builder.Star(1), builder.ErrTooFewVertices},
		{"Wheel(3)", builder.Wheel(3), builder.ErrTooFewVertices},
		{"Complete(0)", builder.Complete(0), builder.ErrTooFewVertices},
		{"Grid(0,3)", builder.Grid(0, 3), builder.ErrTooFewVertices},
		{"RandomSparse(0,.5)", builder.RandomSparse(0, 0.5), builder.ErrTooFewVertices},
		{"RandomSparse(5,1.5)", builder.RandomSparse(5, 1.5), builder.ErrInvalidProbability},
		{"RandomSparse(5,.5) no rng", builder.RandomSparse(5, 0.5), builder.ErrNeedRandSource},
		{"nil constructor", nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		_, err := builder.BuildGraph(nil, nil, tc.ctor)
		require.ErrorIs(t, err, tc.want, tc.name)
	}
}

func TestBuildGraph_ComposesDisjointComponents(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(3), builder.Path(2))
	require.NoError(t, err)
	require.Equal(t, 5, g.Len())
	require.Equal(t, 4, g.EdgeCount())
	require.True(t, hasEdge(g, 3, 4))
	for u := trust.NodeID(0); u < 3; u++ {
		for v := trust.NodeID(3); v < 5; v++ {
			require.False(t, hasEdge(g, u, v))
		}
	}
	require.Equal(t, "4", g.Label(4))
}

func TestBuildGraph_DuplicateLabels(t *testing.T) {
	constant := func(int) string { return "same" }
	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithIDScheme(constant)}, builder.Path(2))
	require.ErrorIs(t, err, trust.ErrDuplicateLabel)
}

func TestRandomSparse_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{
		builder.WithSeed(42),
		builder.WithTrustFn(builder.UniformTrustFn(0.1, 0.9)),
		builder.WithAttributeFn(builder.RandomAttributes),
	}
	g1, err := builder.BuildGraph(nil, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	opts[0] = builder.WithSeed(42)
	g2, err := builder.BuildGraph(nil, opts, builder.RandomSparse(12, 0.3))
	require.NoError(t, err)

	require.Equal(t, g1.Edges(), g2.Edges())
	require.Equal(t, g1.Nodes(), g2.Nodes())
	require.NoError(t, g1.Validate())
}

func TestIdentityAndAttributes(t *testing.T) {
	a := builder.Neutral
	a.SocialActivity = 0.9
	g := builder.MustBuild([]builder.BuilderOption{
		builder.WithAttributes(a),
		builder.WithIdentityFn(builder.CyclicIdentity("red", "blue")),
		builder.WithSymbNumb("p"),
	}, builder.Path(3))

	n, err := g.Node(2)
	require.NoError(t, err)
	require.Equal(t, "p2", n.Label)
	require.Equal(t, "red", n.Identity)
	require.Equal(t, 0.9, n.Attrs.SocialActivity)

	n, err = g.Node(1)
	require.NoError(t, err)
	require.Equal(t, "blue", n.Identity)
}
