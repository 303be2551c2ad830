// Package aco - run orchestration.
//
// Solve is the canonical entry point: it validates the input once, derives
// one random stream per worker in worker order, starts Options.Workers
// worker goroutines under an errgroup and runs the coordinator in the
// calling goroutine. The first failure on either side cancels the run.
package aco

import (
	"context"
	"errors"

	"github.com/katalvlaran/antcolony/matrix"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

// Solve runs the colonies over dist and returns the shortest tour any worker
// reported.
//
// Errors: ErrInvalidConfiguration (before anything starts),
// ErrDegenerateDistribution (a worker could not build a tour),
// ErrCommunicationFailure (cancelled ctx, malformed report).
func Solve(ctx context.Context, dist matrix.Matrix, opts Options) (Result, error) {
	// Stage 1: unified validation.
	n, err := validateAll(dist, opts)
	if err != nil {
		return Result{}, err
	}
	log := opts.logger()

	// Stage 2: topology. Streams are derived in ascending worker order so a
	// seed pins every worker's sequence.
	mailbox, err := NewMailbox(opts.Workers)
	if err != nil {
		return Result{}, err
	}
	defer mailbox.Close()

	var (
		base    = rngFromSeed(opts.Seed)
		workers = make([]*Worker, opts.Workers)
		id      int
	)
	for id = 1; id <= opts.Workers; id++ {
		if workers[id-1], err = NewWorker(id, dist, opts, deriveRNG(base, uint64(id)), mailbox); err != nil {
			return Result{}, err
		}
	}
	coord, err := NewCoordinator(n, opts, mailbox)
	if err != nil {
		return Result{}, err
	}

	log.WithFields(logrus.Fields{
		"nodes":      n,
		"workers":    opts.Workers,
		"ants":       opts.Ants,
		"iterations": opts.Iterations,
	}).Info("colony run started")

	// Stage 3: run.
	runCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	g, gctx := errgroup.WithContext(runCtx)
	for _, w := range workers {
		w := w
		g.Go(func() error { return w.Run(gctx) })
	}

	res, cerr := coord.Run(gctx)
	if cerr != nil {
		cancel()
		_ = mailbox.Close()
	}
	werr := g.Wait()

	// Stage 4: pick the root cause. A worker failure cancels gctx, which the
	// coordinator then sees as a failed receive.
	switch {
	case cerr == nil && werr == nil:
	case werr != nil && !errors.Is(werr, context.Canceled):
		return res, werr
	case cerr != nil:
		return res, cerr
	default:
		return res, werr
	}

	log.WithFields(logrus.Fields{
		"distance":  res.Best.Distance,
		"iteration": res.BestIteration,
		"from":      res.BestWorker,
	}).Info("colony run finished")

	return res, nil
}
