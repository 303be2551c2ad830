package aco

import (
	"strconv"
	"strings"
)

// Edge is a directed move between two node indices. It indexes both the
// distance and the pheromone matrix and is the unit of tour representation.
type Edge struct {
	From int `json:"from"`
	To   int `json:"to"`
}

// Tour is a closed path of exactly N edges: it leaves the start node, visits
// every other node once and returns to the start. tour[i].To == tour[i+1].From.
type Tour []Edge

// Nodes returns the visiting sequence including the closing start node,
// i.e. len(Nodes()) == len(t)+1 and Nodes()[0] == Nodes()[len(t)].
func (t Tour) Nodes() []int {
	if len(t) == 0 {
		return nil
	}
	out := make([]int, 0, len(t)+1)
	for _, e := range t {
		out = append(out, e.From)
	}

	return append(out, t[len(t)-1].To)
}

// String renders the tour as "0-1-2-0".
func (t Tour) String() string {
	var sb strings.Builder
	for i, v := range t.Nodes() {
		if i > 0 {
			sb.WriteByte('-')
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// TourResult pairs a tour with its total distance (sum of edge distances).
type TourResult struct {
	Tour     Tour    `json:"tour"`
	Distance float64 `json:"distance"`
}

// Report is one worker's best tour for one iteration, as seen by the
// coordinator.
type Report struct {
	Iteration int        `json:"iteration"`
	Worker    int        `json:"worker"`
	Result    TourResult `json:"result"`
}

// Result is the outcome of a Solve run.
type Result struct {
	// Best is the all-time shortest tour reported by any worker.
	Best TourResult `json:"best"`

	// BestIteration and BestWorker locate the report Best came from.
	BestIteration int `json:"best_iteration"`
	BestWorker    int `json:"best_worker"`

	// Iterations and Workers echo the run shape; Reports == Iterations*Workers.
	Iterations int `json:"iterations"`
	Workers    int `json:"workers"`
	Reports    int `json:"reports"`
}
