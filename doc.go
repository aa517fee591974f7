// Package influence models how content travels through a network of people
// who trust each other, and answers three questions about it:
//
//   - Which chain of people carries a message to someone most reliably?
//   - How many people will a given set of early adopters convince?
//   - Which k people should receive the content first to convince the most?
//
// 🚀 What is inside?
//
//	trust/      — the trust graph: people, traits, symmetric trust ties, propagation state
//	meme/       — content items and their lineage
//	acceptance/ — the probability that a person accepts an item from someone they trust
//	pathfind/   — A* over trust-only or content-aware edge costs, with cost breakdowns
//	spread/     — Monte-Carlo spread estimation with reproducible, worker-independent draws
//	seeds/      — CELF, CELF++ and plain greedy seed selection
//	cascade/    — a day-by-day S/E/I/R run on a clone of the graph
//	builder/    — deterministic graph constructors for tests and scenarios
//	config/     — YAML + INFLUENCE_* configuration with validation
//	metrics/    — Prometheus collectors shared by every engine
//	cmd/influence — the command-line front end
//
// ✨ Guarantees
//
//   - Algorithms never mutate node state on the caller's graph.
//   - Spread estimates are a deterministic function of (seed, seed set), so
//     CELF, CELF++ and greedy agree on every selection.
//   - Every engine takes a zap logger and nil-safe metrics via options.
//
// Quick start:
//
//	go install github.com/katalvlaran/influence/cmd/influence@latest
//	influence seeds --random 200 --budget 5
package influence
