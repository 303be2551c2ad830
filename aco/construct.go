// Package aco - probabilistic tour construction.
//
// One ant builds one closed tour: starting from the start node it repeatedly
// scores every unvisited candidate with
//
//	w(j) = τ[cur][j]^Alpha · (1/d[cur][j])^Beta
//
// normalizes the scores into a distribution and samples the next node from
// it (roulette wheel over Source.Float64). Visited candidates and candidates
// behind a missing (+Inf) edge get weight 0. After n−1 moves the closing
// edge back to the start node is appended.
//
// Failure policy:
//   - A zero or non-finite weight sum yields ErrDegenerateDistribution; no
//     NaN or Inf weight ever reaches the sampling step.
//   - GenerateBatch retries a degenerate tour up to MaxConstructAttempts
//     times with fresh draws before giving up.
//
// Complexity: O(n²) per tour, O(n) scratch reused across tours.
package aco

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// Constructor builds tours over one immutable distance matrix.
// It owns scratch buffers and a Source and must not be shared between goroutines.
type Constructor struct {
	n        int
	dist     [][]float64 // row snapshot of the immutable distance matrix
	alpha    float64
	beta     float64
	attempts int
	rng      Source

	// scratch, reused across tours
	visited []bool
	weights []float64
	tauRow  []float64
}

// NewConstructor validates dist and opts (Alpha, Beta, MaxConstructAttempts)
// and snapshots the distance rows.
func NewConstructor(dist matrix.Matrix, opts Options, rng Source) (*Constructor, error) {
	n, err := validateDistances(dist)
	if err != nil {
		return nil, err
	}
	if !isFiniteNonNegative(opts.Alpha) || !isFiniteNonNegative(opts.Beta) {
		return nil, fmt.Errorf("alpha=%g beta=%g: %w", opts.Alpha, opts.Beta, ErrInvalidConfiguration)
	}
	if opts.MaxConstructAttempts <= 0 {
		return nil, fmt.Errorf("max construct attempts=%d: %w", opts.MaxConstructAttempts, ErrInvalidConfiguration)
	}
	if rng == nil {
		rng = rngFromSeed(opts.Seed)
	}

	rows := make([][]float64, n)
	var i, j int
	for i = 0; i < n; i++ {
		rows[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			rows[i][j], _ = dist.At(i, j) // bounds already validated
		}
	}

	return &Constructor{
		n:        n,
		dist:     rows,
		alpha:    opts.Alpha,
		beta:     opts.Beta,
		attempts: opts.MaxConstructAttempts,
		rng:      rng,
		visited:  make([]bool, n),
		weights:  make([]float64, n),
		tauRow:   make([]float64, n),
	}, nil
}

// ConstructTour is the single-shot form of Constructor.ConstructTour.
func ConstructTour(pheromone, dist matrix.Matrix, start int, alpha, beta float64, rng Source) (Tour, error) {
	opts := DefaultOptions()
	opts.Alpha, opts.Beta = alpha, beta
	c, err := NewConstructor(dist, opts, rng)
	if err != nil {
		return nil, err
	}

	return c.ConstructTour(pheromone, start)
}

// Nodes returns the number of nodes the constructor builds tours over.
func (c *Constructor) Nodes() int { return c.n }

// ConstructTour lets one ant build a closed tour from start using the
// current pheromone. pheromone is read, never written.
func (c *Constructor) ConstructTour(pheromone matrix.Matrix, start int) (Tour, error) {
	if err := c.checkPheromone(pheromone); err != nil {
		return nil, err
	}
	if start < 0 || start >= c.n {
		return nil, fmt.Errorf("start node %d with %d nodes: %w", start, c.n, ErrStartOutOfRange)
	}

	var (
		i    int
		cur  = start
		next int
		tau  []float64
		err  error
		path = make(Tour, 0, c.n)
	)
	for i = range c.visited {
		c.visited[i] = false
	}
	c.visited[start] = true

	for i = 0; i < c.n-1; i++ {
		if tau, err = c.pheromoneRow(pheromone, cur); err != nil {
			return nil, err
		}
		if next, err = c.pickMove(tau, c.dist[cur], c.visited); err != nil {
			return nil, fmt.Errorf("step %d from node %d: %w", i, cur, err)
		}
		path = append(path, Edge{From: cur, To: next})
		c.visited[next] = true
		cur = next
	}

	return append(path, Edge{From: cur, To: start}), nil
}

// pickMove samples the next node from the unvisited candidates of one row.
// It never returns a visited node: visited candidates carry weight 0 and only
// strictly positive weights can be selected.
func (c *Constructor) pickMove(tau, dist []float64, visited []bool) (int, error) {
	var (
		j    int
		w    float64
		sum  float64
		last = -1 // last candidate with positive weight (rounding fallback)
	)

	// Stage 1: score candidates.
	for j = 0; j < c.n; j++ {
		c.weights[j] = 0
		if visited[j] || math.IsInf(dist[j], 1) {
			continue // zeroed: visited, or no edge
		}
		w = math.Pow(tau[j], c.alpha) * math.Pow(1/dist[j], c.beta)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, fmt.Errorf("weight for node %d is %g: %w", j, w, ErrDegenerateDistribution)
		}
		if w > 0 {
			c.weights[j] = w
			sum += w
			last = j
		}
	}

	// Stage 2: normalization guard.
	if last < 0 || sum <= 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		return 0, fmt.Errorf("weight sum %g: %w", sum, ErrDegenerateDistribution)
	}

	// Stage 3: roulette wheel. r ∈ [0,1) scaled to the unnormalized sum.
	var (
		r   = c.rng.Float64() * sum
		acc float64
	)
	for j = 0; j < c.n; j++ {
		if c.weights[j] == 0 {
			continue
		}
		acc += c.weights[j]
		if r < acc {
			return j, nil
		}
	}

	return last, nil
}

// GenerateBatch lets count ants build tours from start and pairs each tour
// with its total distance. A tour that fails with ErrDegenerateDistribution
// is retried with fresh draws, up to the configured attempts.
func (c *Constructor) GenerateBatch(pheromone matrix.Matrix, start, count int) ([]TourResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("batch size %d: %w", count, ErrInvalidConfiguration)
	}
	out := make([]TourResult, 0, count)

	var (
		ant, attempt int
		t            Tour
		err          error
	)
	for ant = 0; ant < count; ant++ {
		for attempt = 1; ; attempt++ {
			t, err = c.ConstructTour(pheromone, start)
			if err == nil {
				break
			}
			if !errors.Is(err, ErrDegenerateDistribution) || attempt >= c.attempts {
				return nil, fmt.Errorf("ant %d after %d attempt(s): %w", ant, attempt, err)
			}
		}
		out = append(out, TourResult{Tour: t, Distance: c.distance(t)})
	}

	return out, nil
}

// distance sums the snapshot rows; same order and values as PathDistance.
func (c *Constructor) distance(t Tour) float64 {
	var sum float64
	for _, e := range t {
		sum += c.dist[e.From][e.To]
	}

	return sum
}

func (c *Constructor) checkPheromone(pheromone matrix.Matrix) error {
	if err := matrix.ValidateNotNil(pheromone); err != nil {
		return fmt.Errorf("pheromone: %w: %w", ErrInvalidConfiguration, err)
	}
	if pheromone.Rows() != c.n || pheromone.Cols() != c.n {
		return fmt.Errorf("pheromone %dx%d for %d nodes: %w", pheromone.Rows(), pheromone.Cols(), c.n, ErrShapeMismatch)
	}

	return nil
}

// pheromoneRow returns row i of the pheromone matrix, aliasing *Dense storage
// when possible and copying into scratch otherwise.
func (c *Constructor) pheromoneRow(pheromone matrix.Matrix, i int) ([]float64, error) {
	if d, ok := pheromone.(*matrix.Dense); ok {
		return d.RowView(i)
	}
	var (
		j   int
		err error
	)
	for j = 0; j < c.n; j++ {
		if c.tauRow[j], err = pheromone.At(i, j); err != nil {
			return nil, err
		}
	}

	return c.tauRow, nil
}
