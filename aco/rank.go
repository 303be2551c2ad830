package aco

import (
	"cmp"

	"github.com/addrummond/heap"
)

// rankedTour is a heap entry: a batch position ordered by distance, then by
// position so equal distances keep batch order (a stable sort).
type rankedTour struct {
	distance float64
	index    int
}

func (a *rankedTour) Cmp(b *rankedTour) int {
	if c := cmp.Compare(a.distance, b.distance); c != 0 {
		return c
	}

	return cmp.Compare(a.index, b.index)
}

// selectBest returns the k shortest results in ascending order without
// reordering results itself. O((n + k) log n).
func selectBest(results []TourResult, k int) []TourResult {
	if k > len(results) {
		k = len(results)
	}
	if k <= 0 {
		return nil
	}

	var h heap.Heap[rankedTour, heap.Min]
	for i := range results {
		heap.PushOrderable(&h, rankedTour{distance: results[i].Distance, index: i})
	}

	out := make([]TourResult, 0, k)
	for len(out) < k {
		e, ok := heap.PopOrderable(&h)
		if !ok {
			break
		}
		out = append(out, results[e.index])
	}

	return out
}

// bestOf returns the minimum-distance result, the earliest one on ties.
func bestOf(results []TourResult) (TourResult, bool) {
	best := selectBest(results, 1)
	if len(best) == 0 {
		return TourResult{}, false
	}

	return best[0], true
}
