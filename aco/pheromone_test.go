package aco_test

import (
	"testing"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func snapshot(t require.TestingT, m matrix.Matrix) [][]float64 {
	out := make([][]float64, m.Rows())
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			v, err := m.At(i, j)
			require.NoError(t, err)
			out[i][j] = v
		}
	}

	return out
}

func TestNewPheromone_Uniform(t *testing.T) {
	p, err := aco.NewPheromone(4)
	require.NoError(t, err)
	for _, row := range snapshot(t, p) {
		for _, v := range row {
			require.Equal(t, 0.25, v)
		}
	}

	_, err = aco.NewPheromone(1)
	require.ErrorIs(t, err, aco.ErrTooFewNodes)
}

// TestDeposit_OnlySelectedEdgesGrow checks the deposit properties on random
// batches: cells on a selected tour never decrease and grow by exactly the
// summed 1/d of their occurrences; every other cell is unchanged.
func TestDeposit_OnlySelectedEdgesGrow(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(3, 8).Draw(t, "n")
		dist := circleDistances(t, n)
		c, err := aco.NewConstructor(dist, aco.DefaultOptions(), aco.NewSource(rapid.Int64().Draw(t, "seed")))
		require.NoError(t, err)
		pher, err := aco.NewPheromone(n)
		require.NoError(t, err)

		ants := rapid.IntRange(1, 12).Draw(t, "ants")
		topK := rapid.IntRange(1, ants).Draw(t, "topK")
		batch, err := c.GenerateBatch(pher, 0, ants)
		require.NoError(t, err)

		before := snapshot(t, pher)
		require.NoError(t, aco.Deposit(pher, dist, batch, topK))
		after := snapshot(t, pher)

		// Expected increments from an independent stable ranking.
		ranked := append([]aco.TourResult(nil), batch...)
		for i := 1; i < len(ranked); i++ { // insertion sort: stable
			for j := i; j > 0 && ranked[j].Distance < ranked[j-1].Distance; j-- {
				ranked[j], ranked[j-1] = ranked[j-1], ranked[j]
			}
		}
		want := make([][]float64, n)
		for i := range want {
			want[i] = append([]float64(nil), before[i]...)
		}
		for _, r := range ranked[:topK] {
			for _, e := range r.Tour {
				d, err := dist.At(e.From, e.To)
				require.NoError(t, err)
				want[e.From][e.To] += 1 / d
			}
		}

		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.GreaterOrEqual(t, after[i][j], before[i][j])
				require.InDelta(t, want[i][j], after[i][j], 1e-9)
			}
		}
	})
}

func TestDeposit_ExactAmounts(t *testing.T) {
	dist := fourNodeRing(t)
	pher, err := aco.NewPheromone(4)
	require.NoError(t, err)

	good, err := aco.TourFromNodes([]int{0, 1, 2, 3, 0})
	require.NoError(t, err)
	bad, err := aco.TourFromNodes([]int{0, 2, 1, 3, 0})
	require.NoError(t, err)
	batch := []aco.TourResult{
		{Tour: bad, Distance: 206},
		{Tour: good, Distance: 10},
	}

	require.NoError(t, aco.Deposit(pher, dist, batch, 1))

	for _, c := range []struct {
		from, to int
		want     float64
	}{
		{0, 1, 0.25 + 1},
		{1, 2, 0.25 + 0.5},
		{2, 3, 0.25 + 1.0/3},
		{3, 0, 0.25 + 0.25},
		{0, 2, 0.25}, // only on the unselected tour
		{1, 0, 0.25}, // reverse direction is a different cell
	} {
		v, err := pher.At(c.from, c.to)
		require.NoError(t, err)
		require.InDelta(t, c.want, v, 1e-12, "cell (%d,%d)", c.from, c.to)
	}
}

func TestDeposit_Errors(t *testing.T) {
	dist := fourNodeRing(t)
	pher, err := aco.NewPheromone(3)
	require.NoError(t, err)
	require.ErrorIs(t, aco.Deposit(pher, dist, nil, 1), aco.ErrShapeMismatch)

	pher4, err := aco.NewPheromone(4)
	require.NoError(t, err)
	require.ErrorIs(t, aco.Deposit(pher4, dist, nil, 0), aco.ErrBestAntsRange)
	require.ErrorIs(t, aco.Deposit(nil, dist, nil, 1), aco.ErrInvalidConfiguration)
	require.NoError(t, aco.Deposit(pher4, dist, nil, 3)) // empty batch is a no-op
}

// TestDecay_ScalesEveryCell: after Decay(rate) every cell equals its
// pre-decay value times rate.
func TestDecay_ScalesEveryCell(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(2, 6).Draw(t, "n")
		rate := rapid.Float64Range(0.01, 1).Draw(t, "rate")
		pher, err := aco.NewPheromone(n)
		require.NoError(t, err)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				require.NoError(t, pher.Set(i, j, rapid.Float64Range(0, 100).Draw(t, "tau")))
			}
		}

		before := snapshot(t, pher)
		require.NoError(t, aco.Decay(pher, rate))
		after := snapshot(t, pher)
		for i := range before {
			for j := range before[i] {
				require.Equal(t, before[i][j]*rate, after[i][j])
			}
		}
	})
}

func TestDecay_RateBounds(t *testing.T) {
	pher, err := aco.NewPheromone(2)
	require.NoError(t, err)
	require.ErrorIs(t, aco.Decay(pher, 0), aco.ErrDecayRange)
	require.ErrorIs(t, aco.Decay(pher, 1.5), aco.ErrDecayRange)
	require.ErrorIs(t, aco.Decay(pher, -0.1), aco.ErrDecayRange)

	require.NoError(t, aco.Decay(pher, 1)) // rate 1 disables decay
	v, err := pher.At(0, 1)
	require.NoError(t, err)
	require.Equal(t, 0.5, v)
}
