// Package seeds chooses up to a budget of starting nodes that maximize the
// expected spread of a content item, by lazy greedy submodular maximization.
//
// Algorithms:
//
//	CELF          lazy forward selection. Every candidate's gain σ({u}) is
//	              computed once; afterwards only the top of a max-heap is
//	              refreshed, and a top whose gain is current for |S| is taken.
//	CELFPlusPlus  CELF plus a look-ahead: when u is refreshed while cur_best
//	              is known, the same simulation pass also yields
//	              mg2(u) = σ(S ∪ {cur_best, u}) − σ(S ∪ {cur_best}). If cur_best
//	              becomes the next seed, mg2 is u's exact new gain and no
//	              simulation is needed.
//	Greedy        plain greedy; re-evaluates every candidate every round.
//	              Reference for tests and small graphs.
//
// All three choose, in each round, the candidate with the largest marginal
// gain, breaking ties by the smaller NodeID. Gains are compared as integer
// totals from spread.Estimator.Total, so with shared draws (the estimator
// default) σ̂ is exactly monotone and submodular and the three algorithms
// return identical seeds. CELF++ performs strictly fewer simulation passes
// than CELF whenever at least one look-ahead is reused.
//
// Guarantee: with an exact σ the result is within (1 − 1/e) of optimal;
// Monte-Carlo error is a separate source of loss.
//
// Candidates are the susceptible nodes of the graph (or the susceptible
// subset of WithCandidates). The graph is read-only: the selector simulates
// on a snapshot and never touches node state.
//
// Errors, checked before any simulation:
//
//	ErrOptionViolation         - invalid option
//	ErrNilGraph                - nil graph
//	ErrBadSimulations          - simulations < 1
//	ErrUnknownNode             - WithCandidates names an id outside the graph
//	ErrNoCandidates            - no susceptible candidate (empty Result)
//	ErrBadBudget               - budget < 1
//	ErrBudgetExceedsPopulation - budget > number of candidates
package seeds
