package tsplib_test

import (
	"math"
	"strings"
	"testing"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/katalvlaran/antcolony/tsplib"
	"github.com/stretchr/testify/require"
)

var inf = math.Inf(1)

func rows(t *testing.T, m *matrix.Dense) [][]float64 {
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

func TestLoad_Euc2D(t *testing.T) {
	p, err := tsplib.Load("testdata/example.tsp")
	require.NoError(t, err)
	require.Equal(t, "example", p.Name)
	require.Equal(t, "five cities on a cross", p.Comment)
	require.Equal(t, 5, p.Dimension)
	require.True(t, p.Symmetric())
	require.Equal(t, tsplib.Point{X: 3, Y: -4}, p.Coords[3])

	m, err := p.DistanceMatrix()
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{inf, 5, 6, 5, 10},
		{5, inf, 5, 8, 8},
		{6, 5, inf, 5, 4},
		{5, 8, 5, inf, 8},
		{10, 8, 4, 8, inf},
	}, rows(t, m))
}

func TestLoad_UpperRow(t *testing.T) {
	p, err := tsplib.Load("testdata/upper_row.tsp")
	require.NoError(t, err)

	m, err := p.DistanceMatrix()
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{inf, 1, 100, 4},
		{1, inf, 2, 100},
		{100, 2, inf, 3},
		{4, 100, 3, inf},
	}, rows(t, m))
}

func TestLoad_ATSP(t *testing.T) {
	p, err := tsplib.Load("testdata/atsp3.tsp")
	require.NoError(t, err)
	require.False(t, p.Symmetric())
	require.Equal(t, "directed triangle", p.Comment)

	m, err := p.DistanceMatrix()
	require.NoError(t, err)
	require.Equal(t, [][]float64{
		{inf, 1, 7},
		{8, inf, 2},
		{3, 9, inf},
	}, rows(t, m))
}

func TestParse_ExplicitFormats(t *testing.T) {
	// Every format encodes the same symmetric 3-node matrix
	//
	//	. 1 2
	//	1 . 3
	//	2 3 .
	want := [][]float64{
		{inf, 1, 2},
		{1, inf, 3},
		{2, 3, inf},
	}
	cases := map[string]string{
		tsplib.FormatFullMatrix:   "0 1 2 1 0 3 2 3 0",
		tsplib.FormatUpperRow:     "1 2\n3",
		tsplib.FormatLowerRow:     "1\n2 3",
		tsplib.FormatUpperDiagRow: "0 1 2\n0 3\n0",
		tsplib.FormatLowerDiagRow: "0\n1 0\n2 3 0",
		tsplib.FormatUpperCol:     "1\n2 3",
		tsplib.FormatLowerCol:     "1 2\n3",
		tsplib.FormatUpperDiagCol: "0\n1 0\n2 3 0",
		tsplib.FormatLowerDiagCol: "0 1 2\n0 3\n0",
	}
	for format, data := range cases {
		t.Run(format, func(t *testing.T) {
			src := "TYPE: TSP\nDIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: " +
				format + "\nEDGE_WEIGHT_SECTION\n" + data + "\nEOF\n"
			p, err := tsplib.Parse(strings.NewReader(src))
			require.NoError(t, err)
			m, err := p.DistanceMatrix()
			require.NoError(t, err)
			require.Equal(t, want, rows(t, m))
		})
	}
}

func TestParse_CoordinateRules(t *testing.T) {
	cases := []struct {
		kind string
		b    string
		want float64
	}{
		{tsplib.WeightEuc2D, "2 1 1.5", 2},   // 1.80 → 2
		{tsplib.WeightCeil2D, "2 1 1", 2},    // 1.41 → 2
		{tsplib.WeightMan2D, "2 1.2 1.2", 2}, // 2.4 → 2
		{tsplib.WeightATT, "2 10 0", 4},      // r=3.16, nint 3 < r → 4
		{tsplib.WeightATT, "2 30 40", 16},    // r=15.81, nint 16
	}
	for _, tc := range cases {
		t.Run(tc.kind+"/"+tc.b, func(t *testing.T) {
			src := "DIMENSION: 2\nEDGE_WEIGHT_TYPE: " + tc.kind + "\nNODE_COORD_SECTION\n1 0 0\n" + tc.b + "\nEOF"
			p, err := tsplib.Parse(strings.NewReader(src))
			require.NoError(t, err)
			m, err := p.DistanceMatrix()
			require.NoError(t, err)
			d, err := m.At(0, 1)
			require.NoError(t, err)
			require.Equal(t, tc.want, d)
		})
	}
}

func TestParse_Geo(t *testing.T) {
	// One degree of latitude on the same meridian: 111.32 km, +1 and truncated.
	src := "DIMENSION: 2\nEDGE_WEIGHT_TYPE: GEO\nNODE_COORD_SECTION\n1 10.00 20.00\n2 11.00 20.00\nEOF"
	p, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	m, err := p.DistanceMatrix()
	require.NoError(t, err)
	d, err := m.At(1, 0)
	require.NoError(t, err)
	require.Equal(t, 112.0, d)
}

func TestParse_SkipsUnknownSections(t *testing.T) {
	src := `NAME: skip
TYPE: TSP
DIMENSION: 2
EDGE_WEIGHT_TYPE: EUC_2D
DISPLAY_DATA_TYPE: COORD_DISPLAY
NODE_COORD_SECTION
2 0 3
1 0 0
DISPLAY_DATA_SECTION
1 5 5
2 6 6
EOF
`
	p, err := tsplib.Parse(strings.NewReader(src))
	require.NoError(t, err)
	require.Equal(t, []tsplib.Point{{X: 0, Y: 0}, {X: 0, Y: 3}}, p.Coords)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		src  string
		want error
	}{
		{"no dimension", "TYPE: TSP\nEDGE_WEIGHT_TYPE: EXPLICIT\nEOF", tsplib.ErrDimension},
		{"bad dimension", "DIMENSION: x\n", tsplib.ErrSyntax},
		{"coords before dimension", "EDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n", tsplib.ErrDimension},
		{"node id out of range", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n3 0 0\n", tsplib.ErrDimension},
		{"duplicate node", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\n1 1 1\n", tsplib.ErrSyntax},
		{"missing node", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_2D\nNODE_COORD_SECTION\n1 0 0\nEOF", tsplib.ErrDimension},
		{"bad number", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\nEDGE_WEIGHT_SECTION\n1 x2\n", tsplib.ErrSyntax},
		{"short section", "DIMENSION: 3\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\nEDGE_WEIGHT_SECTION\n1 2\nEOF", tsplib.ErrDimension},
		{"unsupported type", "TYPE: HCP\nDIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_2D\n", tsplib.ErrUnsupported},
		{"unsupported weights", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EUC_3D\n", tsplib.ErrUnsupported},
		{"unsupported format", "DIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: FUNCTION\n", tsplib.ErrUnsupported},
		{"ATSP triangle", "TYPE: ATSP\nDIMENSION: 2\nEDGE_WEIGHT_TYPE: EXPLICIT\nEDGE_WEIGHT_FORMAT: UPPER_ROW\nEDGE_WEIGHT_SECTION\n1\n", tsplib.ErrUnsupported},
		{"stray data", "DIMENSION: 2\n1 2 3\n", tsplib.ErrSyntax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsplib.Parse(strings.NewReader(tc.src))
			require.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := tsplib.Load("testdata/does-not-exist.tsp")
	require.Error(t, err)
}
