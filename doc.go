// Package antcolony searches short closed tours with cooperating ant
// colonies.
//
// A fixed set of workers each run their own colony: every iteration a
// worker lets its ants build tours guided by pheromone and inverse
// distance, reinforces the shortest of them and reports its best tour to a
// coordinator, which keeps the all-time best.
//
// Packages:
//
//	aco/          tour construction, pheromone updates, worker and coordinator loops, Solve
//	matrix/       dense float64 storage for distances and pheromone
//	tsplib/       TSPLIB problem files → distance matrices
//	report/       tour normalization, text and JSON output
//	store/        SQLite run history
//	config/       YAML + ACO_* environment settings
//	internal/cli/ the antcolony command (solve, history, version)
//
// Quick example, a ring whose shortest tour is 0→1→2→3→0 (length 10):
//
//	      1
//	  0 ───── 1
//	  │       │
//	4 │       │ 2
//	  │       │
//	  3 ───── 2
//	      3
//
//	res, err := aco.Solve(ctx, dist, opts)
//
//	go install github.com/katalvlaran/antcolony/cmd/antcolony@latest
package antcolony
