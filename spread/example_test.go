package spread_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/influence/builder"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/spread"
	"github.com/katalvlaran/influence/trust"
)

// ExampleEstimator shows that the estimate does not depend on how many
// workers share the runs.
func ExampleEstimator() {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithTrust(0.9)}, builder.Star(8))
	item := meme.Content{ID: "flyer", Attributes: meme.Attributes{FactualAccuracy: 1, Virality: 1, SourceCredibility: 1}}

	one, _ := spread.New(spread.WithSeed(3))
	four, _ := spread.New(spread.WithSeed(3), spread.WithWorkers(4))
	a, _ := one.Estimate(context.Background(), g, []trust.NodeID{0}, item, 1000)
	b, _ := four.Estimate(context.Background(), g, []trust.NodeID{0}, item, 1000)
	fmt.Println(a == b, a > 1, a <= 8)
	// Output: true true true
}
