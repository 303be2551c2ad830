// Package tsplib - distance functions and matrix assembly.
//
// Complexity: O(n²) time and memory for every edge weight type.
package tsplib

import (
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
)

// Constants of the TSPLIB GEO rule.
const (
	geoPi     = 3.141592
	geoRadius = 6378.388
)

// DistanceMatrix returns the n×n distance matrix of p with +Inf on the
// diagonal. For symmetric EXPLICIT formats both triangles are filled.
func (p *Problem) DistanceMatrix() (*matrix.Dense, error) {
	n := p.Dimension
	m, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("tsplib: %w", err)
	}

	if p.EdgeWeightType == WeightExplicit {
		if err = p.fillExplicit(m); err != nil {
			return nil, err
		}
	} else {
		dist, err := coordDistance(p.EdgeWeightType)
		if err != nil {
			return nil, err
		}
		var i, j int
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				if i != j {
					_ = m.Set(i, j, dist(p.Coords[i], p.Coords[j]))
				}
			}
		}
	}

	for i := 0; i < n; i++ {
		_ = m.Set(i, i, math.Inf(1))
	}

	return m, nil
}

// fillExplicit spreads p.Weights over m according to p.EdgeWeightFormat.
// Column formats list the same triangle entries as their row twins of the
// opposite triangle, so they share a walk.
func (p *Problem) fillExplicit(m *matrix.Dense) error {
	var (
		n    = p.Dimension
		k    int
		i, j int
	)
	put := func(i, j int) {
		v := p.Weights[k]
		k++
		_ = m.Set(i, j, v)
		_ = m.Set(j, i, v)
	}

	switch p.EdgeWeightFormat {
	case FormatFullMatrix:
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				_ = m.Set(i, j, p.Weights[k])
				k++
			}
		}
	case FormatUpperRow, FormatLowerCol:
		for i = 0; i < n; i++ {
			for j = i + 1; j < n; j++ {
				put(i, j)
			}
		}
	case FormatLowerRow, FormatUpperCol:
		for i = 0; i < n; i++ {
			for j = 0; j < i; j++ {
				put(i, j)
			}
		}
	case FormatUpperDiagRow, FormatLowerDiagCol:
		for i = 0; i < n; i++ {
			for j = i; j < n; j++ {
				put(i, j)
			}
		}
	case FormatLowerDiagRow, FormatUpperDiagCol:
		for i = 0; i < n; i++ {
			for j = 0; j <= i; j++ {
				put(i, j)
			}
		}
	default:
		return fmt.Errorf("%w: EDGE_WEIGHT_FORMAT %q", ErrUnsupported, p.EdgeWeightFormat)
	}

	return nil
}

func coordDistance(kind string) (func(a, b Point) float64, error) {
	switch kind {
	case WeightEuc2D:
		return euc2D, nil
	case WeightCeil2D:
		return ceil2D, nil
	case WeightMan2D:
		return man2D, nil
	case WeightATT:
		return att, nil
	case WeightGeo:
		return geo, nil
	}

	return nil, fmt.Errorf("%w: EDGE_WEIGHT_TYPE %q", ErrUnsupported, kind)
}

// nint rounds to the nearest integer the way TSPLIB does: (int)(x + 0.5).
func nint(x float64) float64 { return math.Floor(x + 0.5) }

func euc2D(a, b Point) float64 { return nint(math.Hypot(a.X-b.X, a.Y-b.Y)) }

func ceil2D(a, b Point) float64 { return math.Ceil(math.Hypot(a.X-b.X, a.Y-b.Y)) }

func man2D(a, b Point) float64 { return nint(math.Abs(a.X-b.X) + math.Abs(a.Y-b.Y)) }

// att is the pseudo-Euclidean distance of the att48/att532 instances.
func att(a, b Point) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	r := math.Sqrt((dx*dx + dy*dy) / 10)
	t := nint(r)
	if t < r {
		return t + 1
	}

	return t
}

// geo treats X as latitude and Y as longitude in DDD.MM form and returns
// the great-circle distance in kilometres, truncated as TSPLIB does.
func geo(a, b Point) float64 {
	latA, lonA := geoRadians(a.X), geoRadians(a.Y)
	latB, lonB := geoRadians(b.X), geoRadians(b.Y)
	q1 := math.Cos(lonA - lonB)
	q2 := math.Cos(latA - latB)
	q3 := math.Cos(latA + latB)

	return math.Trunc(geoRadius*math.Acos(0.5*((1+q1)*q2-(1-q1)*q3)) + 1)
}

func geoRadians(x float64) float64 {
	deg := math.Trunc(x)
	minutes := x - deg

	return geoPi * (deg + 5*minutes/3) / 180
}
