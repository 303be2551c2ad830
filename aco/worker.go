package aco

import (
	"context"
	"fmt"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/sirupsen/logrus"
)

// Worker is one colony: it owns a pheromone table that evolves across
// iterations and is never shared or decayed.
//
// Per iteration: GENERATE → DEPOSIT → SELECT_BEST → SEND.
type Worker struct {
	id        int
	opts      Options
	dist      matrix.Matrix
	pheromone *matrix.Dense
	builder   *Constructor
	transport Transport
	log       logrus.FieldLogger
}

// NewWorker validates inputs and prepares a colony with a fresh 1/n pheromone
// table. rng must not be shared with any other goroutine.
func NewWorker(id int, dist matrix.Matrix, opts Options, rng Source, t Transport) (*Worker, error) {
	if id <= CoordinatorID {
		return nil, fmt.Errorf("worker id %d: %w", id, ErrInvalidConfiguration)
	}
	if t == nil {
		return nil, fmt.Errorf("worker %d: nil transport: %w", id, ErrInvalidConfiguration)
	}
	n, err := validateAll(dist, opts)
	if err != nil {
		return nil, err
	}
	builder, err := NewConstructor(dist, opts, rng)
	if err != nil {
		return nil, err
	}
	pheromone, err := NewPheromone(n)
	if err != nil {
		return nil, err
	}

	return &Worker{
		id:        id,
		opts:      opts,
		dist:      dist,
		pheromone: pheromone,
		builder:   builder,
		transport: t,
		log:       opts.logger().WithField("worker", id),
	}, nil
}

// ID returns the worker identity used to tag its messages.
func (w *Worker) ID() int { return w.id }

// Pheromone returns a copy of the worker's current pheromone table.
func (w *Worker) Pheromone() matrix.Matrix { return w.pheromone.Clone() }

// Run executes Options.Iterations iterations and returns after the last send.
func (w *Worker) Run(ctx context.Context) error {
	for it := 0; it < w.opts.Iterations; it++ {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("worker %d iteration %d: %w: %w", w.id, it, ErrCommunicationFailure, err)
		}
		if err := w.Step(ctx, it); err != nil {
			return err
		}
	}
	w.log.Debug("worker finished")

	return nil
}

// Step runs a single iteration and sends its best tour.
func (w *Worker) Step(ctx context.Context, iteration int) error {
	// GENERATE
	batch, err := w.builder.GenerateBatch(w.pheromone, w.opts.StartNode, w.opts.Ants)
	if err != nil {
		return fmt.Errorf("worker %d iteration %d: %w", w.id, iteration, err)
	}

	// DEPOSIT
	if err = Deposit(w.pheromone, w.dist, batch, w.opts.BestAnts); err != nil {
		return fmt.Errorf("worker %d iteration %d: %w", w.id, iteration, err)
	}

	// SELECT_BEST
	best, _ := bestOf(batch) // batch is non-empty: Ants > 0

	w.log.WithFields(logrus.Fields{
		"iteration": iteration,
		"distance":  best.Distance,
	}).Debug("iteration best")

	// SEND
	msg := Message{Worker: w.id, Iteration: iteration, Result: best}
	if err = w.transport.Send(ctx, msg); err != nil {
		return fmt.Errorf("worker %d iteration %d: %w", w.id, iteration, err)
	}

	return nil
}
