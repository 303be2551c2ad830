package tsplib

// Problem types.
const (
	TypeTSP  = "TSP"
	TypeATSP = "ATSP"
)

// Edge weight types.
const (
	WeightExplicit = "EXPLICIT"
	WeightEuc2D    = "EUC_2D"
	WeightCeil2D   = "CEIL_2D"
	WeightMan2D    = "MAN_2D"
	WeightATT      = "ATT"
	WeightGeo      = "GEO"
)

// Edge weight formats for EXPLICIT instances.
const (
	FormatFullMatrix   = "FULL_MATRIX"
	FormatUpperRow     = "UPPER_ROW"
	FormatLowerRow     = "LOWER_ROW"
	FormatUpperDiagRow = "UPPER_DIAG_ROW"
	FormatLowerDiagRow = "LOWER_DIAG_ROW"
	FormatUpperCol     = "UPPER_COL"
	FormatLowerCol     = "LOWER_COL"
	FormatUpperDiagCol = "UPPER_DIAG_COL"
	FormatLowerDiagCol = "LOWER_DIAG_COL"
)

// Point is a node coordinate pair as written in NODE_COORD_SECTION.
type Point struct {
	X, Y float64
}

// Problem is a parsed TSPLIB file.
type Problem struct {
	Name    string
	Comment string
	Type    string
	// Dimension is the number of nodes.
	Dimension        int
	EdgeWeightType   string
	EdgeWeightFormat string

	// Coords holds node i+1 at index i for coordinate instances; nil for
	// EXPLICIT ones.
	Coords []Point

	// Weights holds the EDGE_WEIGHT_SECTION numbers in file order.
	Weights []float64
}

// Symmetric reports whether d(i,j) == d(j,i) is implied by the file.
func (p *Problem) Symmetric() bool { return p.Type != TypeATSP }
