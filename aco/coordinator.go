package aco

import (
	"context"
	"fmt"
	"math"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/sirupsen/logrus"
)

// Coordinator aggregates worker reports. It produces no tours; its own
// pheromone table is decayed once per iteration and otherwise unused.
type Coordinator struct {
	n         int
	opts      Options
	pheromone *matrix.Dense
	transport Transport
	log       logrus.FieldLogger
}

// NewCoordinator prepares a coordinator for n nodes and opts.Workers workers.
func NewCoordinator(n int, opts Options, t Transport) (*Coordinator, error) {
	if err := validateOptions(opts); err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("coordinator: nil transport: %w", ErrInvalidConfiguration)
	}
	if opts.StartNode < 0 || opts.StartNode >= n {
		return nil, fmt.Errorf("start node %d with %d nodes: %w", opts.StartNode, n, ErrStartOutOfRange)
	}
	pheromone, err := NewPheromone(n)
	if err != nil {
		return nil, err
	}

	return &Coordinator{
		n:         n,
		opts:      opts,
		pheromone: pheromone,
		transport: t,
		log:       opts.logger().WithField("worker", CoordinatorID),
	}, nil
}

// Pheromone returns a copy of the coordinator's pheromone table.
func (c *Coordinator) Pheromone() matrix.Matrix { return c.pheromone.Clone() }

// Run receives Iterations × Workers reports, one per worker per iteration
// in ascending worker order, and returns the all-time best. A report only
// replaces the best when strictly shorter.
func (c *Coordinator) Run(ctx context.Context) (Result, error) {
	res := Result{
		Best:          TourResult{Distance: math.Inf(1)},
		BestIteration: -1,
		BestWorker:    -1,
		Iterations:    c.opts.Iterations,
		Workers:       c.opts.Workers,
	}

	var (
		it, w int
		msg   Message
		err   error
	)
	for it = 0; it < c.opts.Iterations; it++ {
		for w = 1; w <= c.opts.Workers; w++ {
			// RECEIVE
			if msg, err = c.transport.Recv(ctx, w); err != nil {
				return res, fmt.Errorf("iteration %d: %w", it, err)
			}
			if err = c.check(msg, w, it); err != nil {
				return res, err
			}
			res.Reports++
			if c.opts.OnReport != nil {
				c.opts.OnReport(Report{Iteration: it, Worker: w, Result: msg.Result})
			}

			// COMPARE_AND_UPDATE_BEST
			c.log.WithFields(logrus.Fields{
				"iteration": it,
				"from":      w,
				"distance":  msg.Result.Distance,
			}).Debug("report received")
			if msg.Result.Distance < res.Best.Distance {
				res.Best = msg.Result
				res.BestIteration, res.BestWorker = it, w
				c.log.WithFields(logrus.Fields{
					"iteration": it,
					"from":      w,
					"distance":  msg.Result.Distance,
				}).Info("new best tour")
			}
		}

		// DECAY_OWN_PHEROMONE
		if err = Decay(c.pheromone, c.opts.DecayRate); err != nil {
			return res, fmt.Errorf("iteration %d: %w", it, err)
		}
	}

	return res, nil
}

// check validates one received message against the expected sender and
// iteration, and the tour it carries.
func (c *Coordinator) check(msg Message, worker, iteration int) error {
	if msg.Worker != worker {
		return fmt.Errorf("iteration %d: want worker %d, got %d: %w", iteration, worker, msg.Worker, ErrUnexpectedSender)
	}
	if msg.Iteration != iteration {
		return fmt.Errorf("worker %d: iteration %d, want %d: %w", worker, msg.Iteration, iteration, ErrMalformedReport)
	}
	if err := ValidateTour(msg.Result.Tour, c.n, c.opts.StartNode); err != nil {
		return fmt.Errorf("worker %d iteration %d: %w: %w", worker, iteration, ErrMalformedReport, err)
	}
	if d := msg.Result.Distance; math.IsNaN(d) || d < 0 {
		return fmt.Errorf("worker %d iteration %d: distance %g: %w", worker, iteration, d, ErrMalformedReport)
	}

	return nil
}
