// Package aco_test provides helpers shared across *_test.go files in this
// package: matrix builders for small instances and scripted collaborators.
package aco_test

import (
	"context"
	"math"
	"sync"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/matrix"
	"github.com/stretchr/testify/require"
)

// inf is the diagonal / missing-edge marker.
var inf = math.Inf(1)

// mustDistances builds a Dense from rows, forcing +Inf on the diagonal.
func mustDistances(t require.TestingT, rows [][]float64) *matrix.Dense {
	cp := make([][]float64, len(rows))
	for i := range rows {
		cp[i] = append([]float64(nil), rows[i]...)
		cp[i][i] = inf
	}
	m, err := matrix.NewFromRows(cp)
	require.NoError(t, err)

	return m
}

// fourNodeRing is the instance whose optimum is 0-1-2-3-0 with length 10:
// 0-1=1, 1-2=2, 2-3=3, 3-0=4, every other pair 100.
func fourNodeRing(t require.TestingT) *matrix.Dense {
	return mustDistances(t, [][]float64{
		{0, 1, 100, 4},
		{1, 0, 2, 100},
		{100, 2, 0, 3},
		{4, 100, 3, 0},
	})
}

// circleDistances places n points on a unit circle; the optimum is the
// perimeter order 0-1-…-(n-1)-0.
func circleDistances(t require.TestingT, n int) *matrix.Dense {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			if i == j {
				continue
			}
			ai := 2 * math.Pi * float64(i) / float64(n)
			aj := 2 * math.Pi * float64(j) / float64(n)
			rows[i][j] = math.Hypot(math.Cos(ai)-math.Cos(aj), math.Sin(ai)-math.Sin(aj))
		}
	}

	return mustDistances(t, rows)
}

// testOptions returns small deterministic options.
func testOptions() aco.Options {
	o := aco.DefaultOptions()
	o.Ants = 10
	o.BestAnts = 3
	o.Iterations = 5
	o.Workers = 2
	o.Seed = 42

	return o
}

// scriptedSource replays fixed values and counts draws.
type scriptedSource struct {
	vals  []float64
	calls int
}

func (s *scriptedSource) Float64() float64 {
	v := s.vals[s.calls%len(s.vals)]
	s.calls++

	return v
}

// scriptedTransport serves pre-loaded messages per worker and records the
// order in which the coordinator asked for them.
type scriptedTransport struct {
	mu    sync.Mutex
	queue map[int][]aco.Message
	order []int
	sent  []aco.Message
}

func newScriptedTransport() *scriptedTransport {
	return &scriptedTransport{queue: make(map[int][]aco.Message)}
}

func (s *scriptedTransport) push(msg aco.Message) {
	s.queue[msg.Worker] = append(s.queue[msg.Worker], msg)
}

func (s *scriptedTransport) Send(_ context.Context, msg aco.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, msg)

	return nil
}

func (s *scriptedTransport) Recv(_ context.Context, worker int) (aco.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.order = append(s.order, worker)
	q := s.queue[worker]
	if len(q) == 0 {
		return aco.Message{}, aco.ErrTransportClosed
	}
	s.queue[worker] = q[1:]

	return q[0], nil
}

func (s *scriptedTransport) Close() error { return nil }

// sameCycle reports whether a and b are the same closed node sequence, read
// in either direction from the shared start node.
func sameCycle(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	fwd, rev := true, true
	for i := range a {
		if a[i] != b[i] {
			fwd = false
		}
		if a[i] != b[len(b)-1-i] {
			rev = false
		}
	}

	return fwd || rev
}
