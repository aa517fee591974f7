package trust_test

import (
	"fmt"

	"github.com/katalvlaran/influence/trust"
)

// ExampleGraph builds a two-person trust relationship and reads it back.
func ExampleGraph() {
	g := trust.New()
	alice, _ := g.AddNode("alice", "urban", trust.Attributes{SocialActivity: 0.8})
	bob, _ := g.AddNode("bob", "urban", trust.Attributes{SocialActivity: 0.3})
	_ = g.AddTrust(alice, bob, 0.7)

	w, ok := g.Trust(bob, alice)
	arcs, _ := g.Neighbors(alice)
	fmt.Println(w, ok, len(arcs), g.Label(arcs[0].To))
	// Output: 0.7 true 1 bob
}
