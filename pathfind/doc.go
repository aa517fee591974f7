// Package pathfind implements a dual-mode A* search for the cheapest route to
// convince one target node, starting from a source node.
//
// Cost regimes:
//
//	ModeTrust   (trust distance)
//	    cost(u→v) = clamp((1 − trust) × identity × political × activity, 0.05, 2.0)
//	        identity  = 0.8 if u and v share an identity class, else 1.0
//	        political = 1 + 0.3 × |leaning(u) − leaning(v)|
//	        activity  = 1 − 0.2 × social_activity(v)
//	    h(u→t) = identityDistance(0 | 0.5) + 0.5 × |Δleaning| + connection + 0.3 × (1 − social_activity(t))
//	        connection = 0.5 × (1 − trust(u,t)) if u—t exists, else 1.0
//
//	ModeContent (acceptance distance for a content item c)
//	    cost(u→v) = 1 − acceptance.ProbabilityWithComplexity(v, c, trust(u,v))   ∈ [0.05, 0.95]
//	    h(u→t) = 1.5 × |leaning(t) − bias(c)|
//	           + 0.8 × critical_thinking(t)              if accuracy(c) < 0.5
//	           + 0.4 × |complexity(c) − education(t)|
//	           + 0.3 × (1 − emotional_susceptibility(t)) × (1 − virality(c))
//	           + social,   social = 0.3 × (1 − trust(u,t)) if u—t exists, else 0.8
//
// Heuristic policy:
//
//	The hand-tuned formulas above are not lower bounds on their own (a
//	two-hop trust path can cost less than the 1.0 connection term). Under
//	HeuristicBounded (default) every estimate for u ≠ t is capped by
//	entry(t), the cheapest cost of any edge into t. Every route to t ends
//	with such an edge, so the capped value never overestimates and A*
//	returns an optimal path. HeuristicRaw uses the formulas unchanged.
//
//	The capped heuristic is admissible but not always consistent, so a
//	finalized node is reopened when a strictly cheaper route to it appears.
//	Result.Explored counts distinct finalized nodes.
//
// Tie-breaking:
//
//	Frontier entries are ordered by f, then by insertion order (FIFO among
//	equal f). Among several equal-cost paths the one whose last entry was
//	pushed first is returned.
//
// Errors:
//
//	ErrUnknownNode    - source or target not in the graph (no search performed)
//	ErrNoPath         - frontier exhausted; Result.Explored holds the count
//	ErrMissingContent - ModeContent without WithContent
//	ErrOptionViolation- invalid option value
//
// Complexity:
//
//	Time O((V + E) log V) with lazy decrease-key, Space O(V + E).
//	Recording frames adds O(V) per iteration.
package pathfind
