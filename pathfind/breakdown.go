package pathfind

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/influence/acceptance"
	"github.com/katalvlaran/influence/trust"
)

// Breakdown renders one line per hop of path with every factor of the edge
// cost, followed by a total. It recomputes costs under opts, so a path found
// in one mode can be explained in the other.
//
// Errors: ErrBadPath if path is empty or two consecutive ids are not
// connected; ErrUnknownNode for ids outside the graph.
func Breakdown(g *trust.Graph, path []trust.NodeID, opts ...Option) (string, error) {
	o, err := resolve(opts)
	if err != nil {
		return "", err
	}
	if g == nil {
		return "", ErrNilGraph
	}
	if len(path) == 0 {
		return "", fmt.Errorf("%w: empty", ErrBadPath)
	}
	nodes := make([]trust.Node, len(path))
	for i, id := range path {
		n, err := g.Node(id)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrUnknownNode, err)
		}
		nodes[i] = n
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s path %s\n", o.Mode, joinLabels(nodes))
	total := 0.0
	for i := 1; i < len(path); i++ {
		u, v := nodes[i-1], nodes[i]
		w, ok := g.Trust(u.ID, v.ID)
		if !ok {
			return "", fmt.Errorf("%w: %s→%s", ErrBadPath, u.Label, v.Label)
		}
		var cost float64
		switch o.Mode {
		case ModeContent:
			t := acceptance.Explain(v.Attrs, *o.Content, w, true)
			cost = 1 - t.Probability
			fmt.Fprintf(&b, "  %s → %s: %s cost=%.4f\n", u.Label, v.Label, t, cost)
		default:
			t := trustEdge(u, v, w)
			cost = t.Cost
			fmt.Fprintf(&b, "  %s → %s: trust=%.3f identity=×%.2f political=×%.3f activity=×%.3f cost=%.4f\n",
				u.Label, v.Label, t.Trust, t.Identity, t.Political, t.Activity, cost)
		}
		total += cost
	}
	fmt.Fprintf(&b, "  total=%.4f hops=%d", total, len(path)-1)

	return b.String(), nil
}

func joinLabels(nodes []trust.Node) string {
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		labels[i] = n.Label
	}

	return strings.Join(labels, " → ")
}
