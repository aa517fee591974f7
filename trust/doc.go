// Package trust defines the Trust Graph: people-nodes with bounded personal
// attributes, symmetric weighted trust relationships, and a mutable
// propagation state.
//
// Representation:
//
//   - Nodes live in an arena indexed by a dense NodeID (0..Len()-1) assigned in
//     insertion order. IDs are stable for the lifetime of the graph and of every
//     clone made from it.
//   - Each trust relationship is stored exactly once as an Edge record and
//     mirrored into two Arc entries (one per endpoint). Arc.Trust is a copy of
//     Edge.Trust; SetTrust updates all three places under one write lock and
//     Validate checks that they agree.
//   - Labels are unique human-readable names used by the CLI and examples.
//
// Lifecycle:
//
//	Graphs are produced by an external generator (see package builder) and are
//	read-only to the search components (pathfind, spread, seeds). Only a
//	cascade run mutates node state, and it does so on a Clone.
//
// Concurrency:
//
//	A single sync.RWMutex guards nodes, edges and arcs. Queries take the read
//	lock. Neighbors returns the stored arc slice without copying; AddTrust only
//	appends past its length and SetTrust replaces the endpoint slices, so a
//	slice already returned is never written and algorithms may run alongside
//	writers.
//
// Errors:
//
//	ErrNodeNotFound    - NodeID outside the arena.
//	ErrDuplicateLabel  - label already used by another node.
//	ErrEmptyLabel      - zero-length label.
//	ErrBadTrust        - trust weight outside (0,1].
//	ErrLoopNotAllowed  - trust edge from a node to itself.
//	ErrDuplicateEdge   - second edge between the same pair.
//	ErrEdgeNotFound    - no edge between the pair.
//	ErrBadAttribute    - attribute outside its documented range.
//	ErrInconsistent    - arc and edge records disagree.
package trust
