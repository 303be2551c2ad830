// Package aco implements Ant Colony Optimization for shortest closed tours,
// executed by a fixed pool of worker colonies reporting to one coordinator.
//
// Each worker owns a private pheromone table. Per iteration it lets a batch
// of ants build tours (probabilistic node selection weighted by
// pheromone^Alpha · (1/distance)^Beta), reinforces the edges of the
// BestAnts shortest tours, and sends the single best tour of the batch to
// the coordinator. The coordinator receives exactly one report per worker
// per iteration, in ascending worker order, keeps the all-time best and
// decays its own pheromone table.
//
// Entry points:
//
//   - Solve: validate inputs, start workers and coordinator, return the best tour.
//   - ConstructTour / Constructor: single-ant tour construction.
//   - Deposit / Decay: pheromone updates over a caller-owned matrix.
//   - Worker / Coordinator / Mailbox: the building blocks Solve wires together,
//     exported so other transports can be plugged in.
//
// Distances:
//
//   - A square matrix.Matrix with N ≥ 2, +Inf on the diagonal.
//   - Off-diagonal entries are positive; +Inf marks a missing edge that no ant
//     will ever take.
//
// Determinism: every worker draws from its own *rand.Rand derived from
// Options.Seed, and the coordinator consumes reports in a fixed order, so a
// given (distances, Options) pair always yields the same Result regardless
// of goroutine scheduling.
package aco
