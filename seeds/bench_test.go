package seeds_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/seeds"
)

// BenchmarkSelect compares CELF and CELF++ picking 5 seeds among 300 people.
// passes/op reports simulation passes per selection.
func BenchmarkSelect(b *testing.B) {
	g, err := builder.BuildGraph(nil, []builder.BuilderOption{
		builder.WithSeed(7),
		builder.WithTrustFn(builder.UniformTrustFn(0.3, 1)),
		builder.WithAttributeFn(builder.RandomAttributes),
	}, builder.RandomSparse(300, 0.02))
	if err != nil {
		b.Fatal(err)
	}
	ctx := context.Background()

	for _, alg := range []seeds.Algorithm{seeds.CELF, seeds.CELFPlusPlus} {
		b.Run(alg.String(), func(b *testing.B) {
			passes := 0
			b.ReportAllocs()
			b.ResetTimer()

			for i := 0; i < b.N; i++ {
				res, err := seeds.Select(ctx, g, viral, 5,
					seeds.WithAlgorithm(alg),
					seeds.WithSimulations(50),
				)
				if err != nil {
					b.Fatal(err)
				}
				passes += res.Stats.SpreadCalls
			}
			b.ReportMetric(float64(passes)/float64(b.N), "passes/op")
		})
	}
}
