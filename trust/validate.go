package trust

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks every attribute against its documented range.
func (a Attributes) Validate() error {
	if err := validate.Struct(a); err != nil {
		return fmt.Errorf("%w: %s", ErrBadAttribute, describe(err))
	}

	return nil
}

// describe flattens validator field errors into "field tag=param" fragments.
func describe(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s %s=%s (got %v)", fe.Field(), fe.Tag(), fe.Param(), fe.Value()))
	}

	return strings.Join(parts, "; ")
}

// Validate checks the structural invariants of g:
//   - every node attribute is in range;
//   - every edge has A < B, a trust in (0,1], and exactly one matching arc at each end;
//   - every arc references an edge whose endpoints and trust agree with it.
//
// Complexity: O(V + E).
func (g *Graph) Validate() error {
	g.mu.RLock()
	defer g.mu.RUnlock()

	for i := range g.nodes {
		if err := g.nodes[i].Attrs.Validate(); err != nil {
			return fmt.Errorf("node %q: %w", g.nodes[i].Label, err)
		}
	}

	seen := make([]int, len(g.edges))
	for u, arcs := range g.arcs {
		for _, a := range arcs {
			if a.Edge < 0 || a.Edge >= len(g.edges) {
				return fmt.Errorf("%w: arc %d→%d references edge %d", ErrInconsistent, u, a.To, a.Edge)
			}
			e := g.edges[a.Edge]
			from, to := e.A, e.B
			if a.Reverse {
				from, to = to, from
			}
			if from != NodeID(u) || to != a.To {
				return fmt.Errorf("%w: arc %d→%d does not match edge %d—%d", ErrInconsistent, u, a.To, e.A, e.B)
			}
			if a.Trust != e.Trust {
				return fmt.Errorf("%w: arc %d→%d trust %g, edge trust %g", ErrInconsistent, u, a.To, a.Trust, e.Trust)
			}
			seen[a.Edge]++
		}
	}
	for i, e := range g.edges {
		if e.A >= e.B || !validTrust(e.Trust) {
			return fmt.Errorf("%w: edge %d (%d—%d w=%g)", ErrInconsistent, i, e.A, e.B, e.Trust)
		}
		if seen[i] != 2 {
			return fmt.Errorf("%w: edge %d has %d arcs", ErrInconsistent, i, seen[i])
		}
	}

	return nil
}
