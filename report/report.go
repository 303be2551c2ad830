// Package report turns solver results into user-facing output.
//
// Normalize rewrites a tour as a closed node sequence that begins and ends
// at the start node; Text and JSON render a Summary. Node labels are 0-based
// matrix indices unless Options.OneBased selects TSPLIB's 1-based labels.
package report

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/antcolony/aco"
)

// ErrEmptyTour is returned when there is no tour to report.
var ErrEmptyTour = errors.New("report: empty tour")

// Route is a normalized tour: Nodes[0] == Nodes[len(Nodes)-1] == start.
type Route struct {
	Nodes    []int   `json:"nodes"`
	Distance float64 `json:"distance"`
}

// Normalize rotates r's tour so that it leaves from and returns to start.
// The edge order of the cycle is preserved.
func Normalize(r aco.TourResult, start int) (Route, error) {
	nodes := r.Tour.Nodes()
	if len(nodes) == 0 {
		return Route{}, ErrEmptyTour
	}
	cycle := nodes[:len(nodes)-1] // open form

	at := -1
	for i, v := range cycle {
		if v == start {
			at = i
			break
		}
	}
	if at < 0 {
		return Route{}, fmt.Errorf("report: start node %d not on tour %s", start, r.Tour)
	}

	out := make([]int, 0, len(nodes))
	out = append(out, cycle[at:]...)
	out = append(out, cycle[:at]...)
	out = append(out, start)

	return Route{Nodes: out, Distance: r.Distance}, nil
}

// Options controls rendering.
type Options struct {
	// OneBased prints node i as i+1, matching TSPLIB node labels.
	OneBased bool
}

// Summary is everything printed about one run.
type Summary struct {
	Name          string  `json:"name,omitempty"`
	RunID         string  `json:"run_id,omitempty"`
	Route         Route   `json:"route"`
	BestIteration int     `json:"best_iteration"`
	BestWorker    int     `json:"best_worker"`
	Iterations    int     `json:"iterations"`
	Workers       int     `json:"workers"`
	Reports       int     `json:"reports"`
	ElapsedMillis float64 `json:"elapsed_ms,omitempty"`
}

// FromResult builds a Summary for res with the route normalized to start.
func FromResult(name string, res aco.Result, start int) (Summary, error) {
	route, err := Normalize(res.Best, start)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Name:          name,
		Route:         route,
		BestIteration: res.BestIteration,
		BestWorker:    res.BestWorker,
		Iterations:    res.Iterations,
		Workers:       res.Workers,
		Reports:       res.Reports,
	}, nil
}

// Path renders nodes as "1-2-3-1" under opts.
func Path(nodes []int, opts Options) string {
	var sb strings.Builder
	for i, v := range nodes {
		if i > 0 {
			sb.WriteByte('-')
		}
		if opts.OneBased {
			v++
		}
		sb.WriteString(strconv.Itoa(v))
	}

	return sb.String()
}

// Text writes the human-readable form of s.
func Text(w io.Writer, s Summary, opts Options) error {
	var sb strings.Builder
	if s.Name != "" {
		fmt.Fprintf(&sb, "Instance: %s\n", s.Name)
	}
	if s.RunID != "" {
		fmt.Fprintf(&sb, "Run: %s\n", s.RunID)
	}
	fmt.Fprintf(&sb, "The shortest path in the graph is %s with length %s\n",
		Path(s.Route.Nodes, opts), strconv.FormatFloat(s.Route.Distance, 'f', -1, 64))
	fmt.Fprintf(&sb, "Found by worker %d in iteration %d (%d reports over %d iterations, %d workers)\n",
		s.BestWorker, s.BestIteration, s.Reports, s.Iterations, s.Workers)
	if s.ElapsedMillis > 0 {
		fmt.Fprintf(&sb, "Elapsed: %.1fms\n", s.ElapsedMillis)
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// JSON writes s as indented JSON followed by a newline. With
// opts.OneBased the route nodes are relabeled.
func JSON(w io.Writer, s Summary, opts Options) error {
	if opts.OneBased {
		nodes := make([]int, len(s.Route.Nodes))
		for i, v := range s.Route.Nodes {
			nodes[i] = v + 1
		}
		s.Route.Nodes = nodes
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(s)
}
