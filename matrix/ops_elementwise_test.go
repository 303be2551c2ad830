package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// sliceMatrix is a minimal non-Dense Matrix used to exercise generic paths.
type sliceMatrix struct{ a [][]float64 }

var _ matrix.Matrix = sliceMatrix{}

func (m sliceMatrix) Rows() int { return len(m.a) }
func (m sliceMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m sliceMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m sliceMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m sliceMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	for i := range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return sliceMatrix{a: cp}
}

func TestScale_DenseAndGeneric(t *testing.T) {
	dense, err := matrix.NewFromRows([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)
	generic := sliceMatrix{a: [][]float64{{1, 2}, {3, 4}}}

	for name, m := range map[string]matrix.Matrix{"dense": dense, "generic": generic} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, matrix.Scale(m, 0.5))
			want := [][]float64{{0.5, 1}, {1.5, 2}}
			for i := 0; i < 2; i++ {
				for j := 0; j < 2; j++ {
					v, err := m.At(i, j)
					require.NoError(t, err)
					require.Equal(t, want[i][j], v)
				}
			}
		})
	}
}

func TestScale_RejectsNonFiniteFactor(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.Scale(m, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.Scale(m, math.Inf(1)), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.Scale(nil, 1), matrix.ErrNilMatrix)
}

func TestFill_DenseAndGeneric(t *testing.T) {
	dense, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	generic := sliceMatrix{a: [][]float64{{0, 0}, {0, 0}}}

	for name, m := range map[string]matrix.Matrix{"dense": dense, "generic": generic} {
		t.Run(name, func(t *testing.T) {
			require.NoError(t, matrix.Fill(m, 0.25))
			for i := 0; i < m.Rows(); i++ {
				for j := 0; j < m.Cols(); j++ {
					v, err := m.At(i, j)
					require.NoError(t, err)
					require.Equal(t, 0.25, v)
				}
			}
		})
	}
}
