package cascade_test

import (
	"context"
	"fmt"

	"github.com/katalvlaran/influence/cascade"
	"github.com/katalvlaran/influence/meme"
	"github.com/katalvlaran/influence/trust"
)

// ExampleRun follows a seed with no neighbors until it recovers.
func ExampleRun() {
	g := trust.New()
	for _, l := range []string{"ann", "bob"} {
		if _, err := g.AddNode(l, "", trust.Attributes{}); err != nil {
			panic(err)
		}
	}

	out, err := cascade.Run(context.Background(), g, meme.Content{ID: "memo"}, []trust.NodeID{0},
		cascade.WithRecoveryDays(2))
	if err != nil {
		panic(err)
	}
	for _, d := range out.History {
		fmt.Printf("day %d: S=%d I=%d R=%d\n", d.Day, d.Susceptible, d.Infected, d.Resistant)
	}
	fmt.Println(out.Quiescent)
	// Output:
	// day 0: S=1 I=1 R=0
	// day 1: S=1 I=1 R=0
	// day 2: S=1 I=0 R=1
	// true
}
