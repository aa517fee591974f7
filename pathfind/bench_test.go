package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/pathfind"
	"github.com/katalvlaran/influence/trust"
)

// BenchmarkFind runs corner-to-corner searches on a 40×40 neighborhood grid
// in both cost modes.
func BenchmarkFind(b *testing.B) {
	const side = 40
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(3),
		builder.WithTrustFn(builder.UniformTrustFn(0.1, 1)),
		builder.WithAttributeFn(builder.RandomAttributes),
		builder.WithIdentityFn(builder.CyclicIdentity("a", "b", "c")),
	}, builder.Grid(side, side))
	if err != nil {
		b.Fatal(err)
	}
	target := trust.NodeID(side*side - 1)
	item := meme.Content{ID: "bench", Attributes: meme.Attributes{
		FactualAccuracy: 0.7, Complexity: 0.4, Virality: 0.5, SourceCredibility: 0.5,
	}}

	cases := map[string][]pathfind.Option{
		"trust":   nil,
		"content": {pathfind.WithMode(pathfind.ModeContent), pathfind.WithContent(item)},
	}
	for name, opts := range cases {
		b.Run(name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(g.Len() + g.EdgeCount()))
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				if _, err := pathfind.Find(g, 0, target, opts...); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
