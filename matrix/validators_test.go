package matrix_test

import (
	"testing"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateSquareNonNil(t *testing.T) {
	var nilDense *matrix.Dense
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(nilDense), matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.ErrorIs(t, matrix.ValidateSquareNonNil(rect), matrix.ErrNonSquare)

	sq, err := matrix.NewDense(3, 3)
	require.NoError(t, err)
	require.NoError(t, matrix.ValidateSquareNonNil(sq))
}

func TestValidateSameShape(t *testing.T) {
	a, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	b, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	c, err := matrix.NewDense(3, 2)
	require.NoError(t, err)

	require.NoError(t, matrix.ValidateSameShape(a, a.Clone()))
	require.ErrorIs(t, matrix.ValidateSameShape(a, b), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, matrix.ValidateSameShape(a, c), matrix.ErrDimensionMismatch)
}
