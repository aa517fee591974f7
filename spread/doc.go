// Package spread estimates how many people end up convinced when a content
// item is planted on a seed set, by Monte-Carlo simulation of independent
// cascades over a trust graph.
//
// One run:
//
//	infected ← seeds; queue ← seeds (FIFO)
//	while queue not empty:
//	    u ← dequeue
//	    for each arc u→v with v not infected:
//	        if draw(run, u→v) < acceptance.Probability(v, item, trust(u,v)):
//	            infect v; enqueue v
//	return |infected|
//
// Estimate returns the arithmetic mean over runs 0..R-1.
//
// Randomness:
//
//	Draws are not consumed from a stream. Each draw is a pure function of
//	(seed, epoch, run, arc) mixed with SplitMix64, so an arc is either live
//	or dead for the whole run regardless of visit order. Consequences:
//	  - A run's outcome is the set reachable from the seeds over live arcs.
//	  - Estimates are reproducible and independent of the worker count.
//	  - With a fixed epoch (the default) every Estimate call shares the same
//	    live-arc samples, so the estimate is exactly monotone and submodular
//	    in the seed set. Greedy selectors comparing candidates see no
//	    sampling noise between candidates.
//	WithIndependentDraws advances the epoch on every call for fresh samples.
//
// The graph is never mutated; node states are ignored.
//
// Errors:
//
//	ErrNilGraph        - nil graph
//	ErrBadSimulations  - runs < 1
//	ErrUnknownNode     - a seed id outside the graph (wraps trust.ErrNodeNotFound)
//	ErrOptionViolation - invalid option value
//
// Complexity: O(R · (V + E)) per estimate; Prepare is O(V + E).
package spread
