package aco

import (
	"io"

	"github.com/sirupsen/logrus"
)

// Defaults used by DefaultOptions.
const (
	DefaultAnts                 = 20
	DefaultBestAnts             = 5
	DefaultIterations           = 100
	DefaultDecayRate            = 0.95
	DefaultAlpha                = 1.0
	DefaultBeta                 = 1.0
	DefaultWorkers              = 1
	DefaultMaxConstructAttempts = 3
)

// CoordinatorID is the identity of the aggregating process. Workers are
// numbered 1..Options.Workers.
const CoordinatorID = 0

// Options configures a run. Start from DefaultOptions and override fields.
type Options struct {
	// Ants is the number of tours each worker builds per iteration.
	Ants int

	// BestAnts is how many of the shortest tours of a batch deposit pheromone.
	// Must satisfy 1 ≤ BestAnts ≤ Ants.
	BestAnts int

	// Iterations is the number of generate/report rounds.
	Iterations int

	// DecayRate multiplies the coordinator's pheromone once per iteration.
	// In (0,1]; 1 disables decay.
	DecayRate float64

	// Alpha and Beta are the exponents on pheromone and inverse distance.
	Alpha float64
	Beta  float64

	// Workers is the fixed number of worker colonies.
	Workers int

	// StartNode is the node every tour leaves from and returns to.
	StartNode int

	// Seed feeds the per-worker random streams; 0 selects a fixed default.
	Seed int64

	// MaxConstructAttempts bounds fresh attempts for a tour whose
	// construction hit ErrDegenerateDistribution.
	MaxConstructAttempts int

	// Logger receives structured run events; nil discards them.
	Logger logrus.FieldLogger

	// OnReport, when set, is called by the coordinator for every received
	// report, in receive order, before the best tour is updated.
	OnReport func(Report)
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Ants:                 DefaultAnts,
		BestAnts:             DefaultBestAnts,
		Iterations:           DefaultIterations,
		DecayRate:            DefaultDecayRate,
		Alpha:                DefaultAlpha,
		Beta:                 DefaultBeta,
		Workers:              DefaultWorkers,
		StartNode:            0,
		Seed:                 0,
		MaxConstructAttempts: DefaultMaxConstructAttempts,
	}
}

// logger returns opts.Logger or a logger writing nowhere.
func (o Options) logger() logrus.FieldLogger {
	if o.Logger != nil {
		return o.Logger
	}
	l := logrus.New()
	l.SetOutput(io.Discard)

	return l
}
