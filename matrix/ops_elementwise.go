// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide in-place element-wise kernels over a whole matrix.
//   - Keep all loops deterministic and cache-friendly with Dense fast-paths.
//
// Determinism & Performance:
//   - Fixed loop orders (i→j or flat 0..n-1).
//   - Dense fast-path operates on a single flat buffer (row-major).
//   - No allocations; O(r*c) time.

package matrix

import "math"

// Fill sets every cell of m to v.
// The Dense fast-path cannot fail; the generic path surfaces Set errors.
// Complexity: O(r*c).
func Fill(m Matrix, v float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("Fill", err)
	}
	if d, ok := m.(*Dense); ok {
		var k int
		for k = range d.data {
			d.data[k] = v
		}

		return nil
	}

	var (
		r, c = m.Rows(), m.Cols()
		i, j int
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if err := m.Set(i, j, v); err != nil {
				return validatorErrorf("Fill", err)
			}
		}
	}

	return nil
}

// Scale multiplies every cell of m by alpha in place: m[i,j] *= alpha.
//
// Errors: ErrNilMatrix, ErrNaNInf when alpha is not finite.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("Scale", err)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return validatorErrorf("Scale", ErrNaNInf)
	}
	if d, ok := m.(*Dense); ok {
		var k int
		for k = range d.data { // single flat pass
			d.data[k] *= alpha
		}

		return nil
	}

	var (
		r, c = m.Rows(), m.Cols()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("Scale", err)
			}
			if err = m.Set(i, j, v*alpha); err != nil {
				return validatorErrorf("Scale", err)
			}
		}
	}

	return nil
}
