// Package aco - tour utilities.
//
// Helpers operating purely on tour structure, without distances:
//   - ValidateTour: enforce closed Hamiltonian cycle invariants.
//   - TourFromNodes: build a Tour from a closed node sequence.
//
// Both run in O(n) time with a single O(n) marker slice.
package aco

import "fmt"

// ValidateTour enforces the invariants of a Tour over n nodes:
//
//	len(t) == n, t[0].From == start, t[n-1].To == start,
//	t[i].To == t[i+1].From, and the From nodes are a permutation of 0..n-1.
//
// Errors wrap ErrInvalidTour.
func ValidateTour(t Tour, n, start int) error {
	if n <= 0 || len(t) != n {
		return fmt.Errorf("%w: %d edges for %d nodes", ErrInvalidTour, len(t), n)
	}
	if start < 0 || start >= n {
		return fmt.Errorf("%w: start %d out of range", ErrInvalidTour, start)
	}
	if t[0].From != start || t[n-1].To != start {
		return fmt.Errorf("%w: does not start and end at %d", ErrInvalidTour, start)
	}

	seen := make([]bool, n)

	var (
		i int
		e Edge
	)
	for i, e = range t {
		if e.From < 0 || e.From >= n || e.To < 0 || e.To >= n {
			return fmt.Errorf("%w: edge %d (%d,%d) out of range", ErrInvalidTour, i, e.From, e.To)
		}
		if seen[e.From] {
			return fmt.Errorf("%w: node %d visited twice", ErrInvalidTour, e.From)
		}
		seen[e.From] = true
		if i+1 < n && t[i+1].From != e.To {
			return fmt.Errorf("%w: edge %d does not continue from %d", ErrInvalidTour, i+1, e.To)
		}
	}

	return nil
}

// TourFromNodes converts a closed visiting sequence [v0, v1, …, v0] into a
// Tour. The sequence must have at least 3 entries (two nodes plus closure).
func TourFromNodes(nodes []int) (Tour, error) {
	if len(nodes) < 3 || nodes[0] != nodes[len(nodes)-1] {
		return nil, fmt.Errorf("%w: node sequence must be closed with at least 2 nodes", ErrInvalidTour)
	}
	t := make(Tour, len(nodes)-1)
	for i := range t {
		t[i] = Edge{From: nodes[i], To: nodes[i+1]}
	}

	return t, nil
}
