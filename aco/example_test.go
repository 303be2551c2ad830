// Package aco_test provides runnable, deterministic examples. Every example
// fixes its seed so the // Output: block is stable.
package aco_test

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/matrix"
)

// canonical orients a closed node sequence so that its second node is
// smaller than its second-to-last one.
func canonical(nodes []int) []int {
	n := len(nodes)
	if n < 4 || nodes[1] < nodes[n-2] {
		return nodes
	}
	out := make([]int, n)
	for i := range nodes {
		out[i] = nodes[n-1-i]
	}

	return out
}

func Example() {
	inf := math.Inf(1)
	dist, _ := matrix.NewFromRows([][]float64{
		{inf, 1, 100, 4},
		{1, inf, 2, 100},
		{100, 2, inf, 3},
		{4, 100, 3, inf},
	})

	opts := aco.DefaultOptions()
	opts.Ants, opts.BestAnts, opts.Iterations = 20, 5, 50
	opts.Beta = 2
	opts.Seed = 7

	res, err := aco.Solve(context.Background(), dist, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("tour:", canonical(res.Best.Tour.Nodes()))
	fmt.Println("distance:", res.Best.Distance)
	fmt.Println("reports:", res.Reports)
	// Output:
	// tour: [0 1 2 3 0]
	// distance: 10
	// reports: 50
}

func ExampleConstructTour() {
	inf := math.Inf(1)
	dist, _ := matrix.NewFromRows([][]float64{
		{inf, 2},
		{3, inf},
	})
	pher, _ := aco.NewPheromone(2)

	tour, _ := aco.ConstructTour(pher, dist, 0, 1, 1, aco.NewSource(1))
	d, _ := aco.PathDistance(dist, tour)
	fmt.Println(tour, d)
	// Output:
	// 0-1-0 5
}

func ExampleDeposit() {
	inf := math.Inf(1)
	dist, _ := matrix.NewFromRows([][]float64{
		{inf, 2, 4},
		{2, inf, 4},
		{4, 4, inf},
	})
	pher, _ := aco.NewPheromone(3)
	tour, _ := aco.TourFromNodes([]int{0, 1, 2, 0})

	_ = aco.Deposit(pher, dist, []aco.TourResult{{Tour: tour, Distance: 10}}, 1)
	v01, _ := pher.At(0, 1)
	v10, _ := pher.At(1, 0)
	fmt.Printf("%.4f %.4f\n", v01, v10)
	// Output:
	// 0.8333 0.3333
}
