// Package aco - validation of Options and distance matrices.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from errors.go,
//     wrapped with the offending coordinates or value.
//   - O(n²) worst-case where n is the matrix order.
package aco

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// validateAll verifies Options + distance matrix and returns n (matrix order).
//
// Complexity: O(n²).
func validateAll(dist matrix.Matrix, opts Options) (int, error) {
	var (
		n   int
		err error
	)

	// Stage 1: Options-only sanity.
	if err = validateOptions(opts); err != nil {
		return 0, err
	}

	// Stage 2: matrix shape and values.
	if n, err = validateDistances(dist); err != nil {
		return 0, err
	}

	// Stage 3: start node range (after n is known).
	if opts.StartNode < 0 || opts.StartNode >= n {
		return 0, fmt.Errorf("start node %d with %d nodes: %w", opts.StartNode, n, ErrStartOutOfRange)
	}

	return n, nil
}

// validateOptions checks internal consistency of Options without
// referencing the distance matrix.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Ants <= 0 {
		return fmt.Errorf("ants=%d must be positive: %w", opts.Ants, ErrInvalidConfiguration)
	}
	if opts.BestAnts <= 0 || opts.BestAnts > opts.Ants {
		return fmt.Errorf("best ants=%d, ants=%d: %w", opts.BestAnts, opts.Ants, ErrBestAntsRange)
	}
	if opts.Iterations <= 0 {
		return fmt.Errorf("iterations=%d must be positive: %w", opts.Iterations, ErrInvalidConfiguration)
	}
	if err := validateDecayRate(opts.DecayRate); err != nil {
		return err
	}
	if !isFiniteNonNegative(opts.Alpha) || !isFiniteNonNegative(opts.Beta) {
		return fmt.Errorf("alpha=%g beta=%g must be finite and >= 0: %w", opts.Alpha, opts.Beta, ErrInvalidConfiguration)
	}
	if opts.Workers <= 0 {
		return fmt.Errorf("workers=%d must be positive: %w", opts.Workers, ErrInvalidConfiguration)
	}
	if opts.MaxConstructAttempts <= 0 {
		return fmt.Errorf("max construct attempts=%d must be positive: %w", opts.MaxConstructAttempts, ErrInvalidConfiguration)
	}

	return nil
}

// validateDecayRate enforces rate ∈ (0, 1].
func validateDecayRate(rate float64) error {
	if math.IsNaN(rate) || rate <= 0 || rate > 1 {
		return fmt.Errorf("decay rate %g: %w", rate, ErrDecayRange)
	}

	return nil
}

func isFiniteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}

// validateDistances performs full distance matrix validation:
//   - non-nil, square, n ≥ 2,
//   - diagonal == +Inf (no self-loop),
//   - off-diagonal > 0; +Inf allowed (missing edge), NaN and -Inf rejected.
//
// Zero off-diagonal distances are rejected: both the 1/d selection weight
// and the 1/d deposit would be infinite.
//
// Complexity: O(n²).
func validateDistances(dist matrix.Matrix) (int, error) {
	// Stage 1: shape.
	if err := matrix.ValidateSquareNonNil(dist); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return 0, ErrNilDistances
		}
		return 0, fmt.Errorf("%dx%d: %w", dist.Rows(), dist.Cols(), ErrNonSquare)
	}
	var n = dist.Rows()
	if n < 2 {
		return 0, fmt.Errorf("n=%d: %w", n, ErrTooFewNodes)
	}

	// Stage 2: values.
	var (
		i, j int
		d    float64
		err  error
	)
	for i = 0; i < n; i++ { // rows
		for j = 0; j < n; j++ { // cols
			if d, err = dist.At(i, j); err != nil {
				return 0, fmt.Errorf("distance (%d,%d): %w: %w", i, j, ErrInvalidConfiguration, err)
			}
			if i == j {
				if !math.IsInf(d, 1) {
					return 0, fmt.Errorf("distance (%d,%d)=%g: %w", i, j, d, ErrDiagonal)
				}
				continue
			}
			switch {
			case math.IsNaN(d) || math.IsInf(d, -1):
				return 0, fmt.Errorf("distance (%d,%d): %w", i, j, ErrNaNDistance)
			case d < 0:
				return 0, fmt.Errorf("distance (%d,%d)=%g: %w", i, j, d, ErrNegativeDistance)
			case d == 0:
				return 0, fmt.Errorf("distance (%d,%d): %w", i, j, ErrZeroDistance)
			}
		}
	}

	return n, nil
}
