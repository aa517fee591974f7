// Package builder assembles deterministic trust-graph fixtures for tests,
// examples and the command-line tool.
//
// A fixture is described as a list of Constructor closures applied in order
// to a fresh *trust.Graph by BuildGraph:
//
//	g, err := builder.BuildGraph(nil,
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithTrustFn(builder.UniformTrustFn(0.2, 0.9))},
//		builder.Cycle(5),
//		builder.Star(4),
//	)
//
// Composition yields disjoint components: every constructor numbers its nodes
// after the ones already present, so Cycle(5) above owns NodeIDs 0..4 and
// Star(4) owns 5..8 with its hub at 5.
//
// Components:
//
//   - Topologies: Cycle, Path, Star, Wheel, Complete, Grid, RandomSparse.
//   - Labels (IDFn): DefaultIDFn ("0","1",…), SymbolNumberIDFn ("v0",…),
//     ExcelColumnIDFn ("A",…,"Z","AA",…).
//   - Trust weights (TrustFn): ConstantTrustFn, UniformTrustFn.
//   - Personal traits (AttributeFn): ConstantAttributes, RandomAttributes.
//   - Identity classes (IdentityFn): NoIdentity, CyclicIdentity.
//
// Guarantees:
//
//   - Same options, same seed, same constructor order ⇒ identical graphs.
//   - Option constructors panic on meaningless values; constructors return
//     sentinel errors and never panic.
//   - Edges are emitted in a documented, stable order per topology.
package builder
