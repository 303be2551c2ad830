package report_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/report"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func mustTour(t *testing.T, nodes ...int) aco.Tour {
	tour, err := aco.TourFromNodes(nodes)
	require.NoError(t, err)

	return tour
}

func TestNormalize(t *testing.T) {
	cases := []struct {
		name  string
		nodes []int
		start int
		want  []int
	}{
		{"already at start", []int{0, 1, 2, 3, 0}, 0, []int{0, 1, 2, 3, 0}},
		{"rotated", []int{2, 3, 0, 1, 2}, 0, []int{0, 1, 2, 3, 0}},
		{"other start", []int{0, 3, 1, 2, 0}, 1, []int{1, 2, 0, 3, 1}},
		{"two nodes", []int{1, 0, 1}, 0, []int{0, 1, 0}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r, err := report.Normalize(aco.TourResult{Tour: mustTour(t, tc.nodes...), Distance: 7}, tc.start)
			require.NoError(t, err)
			require.Equal(t, tc.want, r.Nodes)
			require.Equal(t, 7.0, r.Distance)
		})
	}
}

func TestNormalize_Errors(t *testing.T) {
	_, err := report.Normalize(aco.TourResult{}, 0)
	require.ErrorIs(t, err, report.ErrEmptyTour)

	_, err = report.Normalize(aco.TourResult{Tour: mustTour(t, 0, 1, 0)}, 5)
	require.Error(t, err)
}

func TestPath(t *testing.T) {
	require.Equal(t, "0-2-1-0", report.Path([]int{0, 2, 1, 0}, report.Options{}))
	require.Equal(t, "1-3-2-1", report.Path([]int{0, 2, 1, 0}, report.Options{OneBased: true}))
	require.Equal(t, "", report.Path(nil, report.Options{}))
}

func ringSummary(t *testing.T) report.Summary {
	res := aco.Result{
		Best:          aco.TourResult{Tour: mustTour(t, 2, 3, 0, 1, 2), Distance: 10},
		BestIteration: 3,
		BestWorker:    2,
		Iterations:    50,
		Workers:       2,
		Reports:       100,
	}
	s, err := report.FromResult("ring4", res, 0)
	require.NoError(t, err)

	return s
}

func TestFormatters_Golden(t *testing.T) {
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)

	cases := []struct {
		name   string
		render func(*bytes.Buffer, report.Summary) error
		mutate func(*report.Summary)
	}{
		{
			name: "text_zero_based",
			render: func(b *bytes.Buffer, s report.Summary) error {
				return report.Text(b, s, report.Options{})
			},
		},
		{
			name: "text_one_based",
			render: func(b *bytes.Buffer, s report.Summary) error {
				return report.Text(b, s, report.Options{OneBased: true})
			},
			mutate: func(s *report.Summary) {
				s.RunID = "0192f0c4-7d1e-7a3b-8c55-2f4e6a8b9c01"
				s.ElapsedMillis = 12.34
			},
		},
		{
			name: "json_one_based",
			render: func(b *bytes.Buffer, s report.Summary) error {
				return report.JSON(b, s, report.Options{OneBased: true})
			},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := ringSummary(t)
			if tc.mutate != nil {
				tc.mutate(&s)
			}
			var buf bytes.Buffer
			require.NoError(t, tc.render(&buf, s))
			g.Assert(t, tc.name, buf.Bytes())
		})
	}
}

func TestJSON_DoesNotMutateSummary(t *testing.T) {
	s := ringSummary(t)
	var buf bytes.Buffer
	require.NoError(t, report.JSON(&buf, s, report.Options{OneBased: true}))
	require.Equal(t, []int{0, 1, 2, 3, 0}, s.Route.Nodes)
}
