package aco

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// PathDistance returns the sum of dist over the edges of t, in tour order.
// Workers report exactly this value, so recomputing it from a reported tour
// yields the reported distance bit for bit.
//
// Complexity: O(n).
func PathDistance(dist matrix.Matrix, t Tour) (float64, error) {
	var (
		sum float64
		w   float64
		err error
	)
	for _, e := range t {
		if w, err = dist.At(e.From, e.To); err != nil {
			return 0, fmt.Errorf("edge (%d,%d): %w", e.From, e.To, err)
		}
		if math.IsNaN(w) {
			return 0, fmt.Errorf("edge (%d,%d): %w", e.From, e.To, ErrNaNDistance)
		}
		sum += w
	}

	return sum, nil
}
