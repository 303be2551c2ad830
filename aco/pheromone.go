// Package aco - pheromone tables and their updates.
//
// Ownership: every table is created by NewPheromone and owned by exactly one
// goroutine (a worker or the coordinator). Deposit and Decay mutate the
// table they are given in place and touch nothing else.
package aco

import (
	"fmt"

	"github.com/katalvlaran/antcolony/matrix"
)

// NewPheromone returns an n×n table with every cell set to 1/n.
func NewPheromone(n int) (*matrix.Dense, error) {
	if n < 2 {
		return nil, fmt.Errorf("n=%d: %w", n, ErrTooFewNodes)
	}

	return matrix.NewFilled(n, n, 1/float64(n))
}

// Deposit reinforces the topK shortest tours of results: for every edge of
// each selected tour it adds 1/dist(edge) to the pheromone cell of that
// edge. Results are ranked by ascending distance, ties in batch order.
// topK larger than len(results) selects all of them.
//
// Cells on no selected tour are left untouched; selected cells never
// decrease because distances are positive.
func Deposit(pheromone, dist matrix.Matrix, results []TourResult, topK int) error {
	if err := checkSameShape(pheromone, dist); err != nil {
		return err
	}
	if topK <= 0 {
		return fmt.Errorf("topK=%d: %w", topK, ErrBestAntsRange)
	}

	var (
		dense, isDense = pheromone.(*matrix.Dense)
		d, tau         float64
		err            error
	)
	for _, r := range selectBest(results, topK) {
		for _, e := range r.Tour {
			if d, err = dist.At(e.From, e.To); err != nil {
				return fmt.Errorf("deposit edge (%d,%d): %w", e.From, e.To, err)
			}
			if isDense {
				err = dense.Add(e.From, e.To, 1/d)
			} else if tau, err = pheromone.At(e.From, e.To); err == nil {
				err = pheromone.Set(e.From, e.To, tau+1/d)
			}
			if err != nil {
				return fmt.Errorf("deposit edge (%d,%d): %w", e.From, e.To, err)
			}
		}
	}

	return nil
}

// Decay multiplies every pheromone cell by rate, rate ∈ (0,1].
func Decay(pheromone matrix.Matrix, rate float64) error {
	if err := validateDecayRate(rate); err != nil {
		return err
	}
	if err := matrix.Scale(pheromone, rate); err != nil {
		return fmt.Errorf("decay: %w: %w", ErrInvalidConfiguration, err)
	}

	return nil
}

func checkSameShape(pheromone, dist matrix.Matrix) error {
	if matrix.ValidateNotNil(pheromone) != nil || matrix.ValidateNotNil(dist) != nil {
		return fmt.Errorf("pheromone or distances: %w", ErrNilDistances)
	}
	if err := matrix.ValidateSameShape(pheromone, dist); err != nil {
		return fmt.Errorf("%w: %w", ErrShapeMismatch, err)
	}

	return nil
}
