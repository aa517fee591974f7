// Package acceptance implements the probabilistic belief model shared by the
// pathfinder, the spread estimator and the cascade run.
//
// Two quantities are computed, both pure and deterministic:
//
//	Probability(node, content, trust)        chance that node accepts content
//	                                         shared by a neighbor it trusts
//	                                         with weight trust; in [0.05, 0.95]
//	Transmission(node, content, days)        chance that an already convinced
//	                                         node re-shares content days after
//	                                         accepting it; in [0, 1]
//
// Acceptance formula:
//
//	alignment   = 1 − |leaning − bias|
//	critical    = critical_thinking × (1 − accuracy)     if accuracy < 0.5, else 0
//	score       = alignment × (1 − critical)
//	virality    = 1 + virality × emotional_susceptibility
//	credibility = 0.7 + 0.3 × source_credibility
//	raw         = 0.3 × trust × score × virality × credibility
//	p           = clamp(raw, 0.05, 0.95)
//
// The content-aware path cost additionally multiplies raw by
// (1 − complexity_penalty) with complexity_penalty = 0.3 × |complexity − education|
// before clamping (ProbabilityWithComplexity).
//
// The clamp keeps every belief uncertain: a probability of exactly 0 or 1 would
// turn the content-aware path cost 1 − p into an infinite or zero edge.
//
// The model never draws random numbers; callers own all randomness.
package acceptance
