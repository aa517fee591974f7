// Package cascade simulates the day-by-day diffusion of one content item
// through a trust graph.
//
// Where spread estimates an expected reach from many collapsed runs, Run
// plays out a single run in time on a clone of the graph:
//
//   - Seeds start Infected on day 0.
//   - Each day, Exposed nodes become Infected, and Infected nodes that have
//     been infected for RecoveryDays become Resistant.
//   - Every remaining Infected node then decides to share with
//     acceptance.Transmission (novelty decays with days since infection).
//     On a share, each Susceptible neighbor accepts with
//     acceptance.Probability and becomes Exposed.
//
// The run stops after Days days or as soon as nothing is Exposed or Infected.
// The caller's graph is never modified; the final states live on
// Outcome.Graph.
//
// Draws come from a math/rand source seeded with Options.Seed and are taken
// in ascending NodeID and arc order, so a run is reproducible.
package cascade
