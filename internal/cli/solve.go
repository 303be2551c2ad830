package cli

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"time"

	"github.com/katalvlaran/antcolony/aco"
	"github.com/katalvlaran/antcolony/config"
	"github.com/katalvlaran/antcolony/report"
	"github.com/katalvlaran/antcolony/store"
	"github.com/katalvlaran/antcolony/tsplib"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// SolveOptions holds flags for the solve command. Zero-valued flags that
// were not set on the command line leave the configuration untouched.
type SolveOptions struct {
	*RootOptions
	Ants       int
	BestAnts   int
	Iterations int
	DecayRate  float64
	Alpha      float64
	Beta       float64
	Workers    int
	StartNode  int
	Seed       int64
	Attempts   int
	Database   string
	OneBased   bool
}

// NewSolveCommand creates the solve command.
func NewSolveCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SolveOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "solve <file.tsp>",
		Short: "Search a short closed tour through a TSPLIB instance",
		Long: `Load a TSPLIB instance, run the colonies and print the best tour.

Settings come from defaults, then --config, then ACO_* variables (the
--env-file first, the process environment last), then flags.

Example:
  antcolony solve --ants 20 --best-ants 5 --iterations 50 --beta 2 ring.tsp
  antcolony solve --workers 4 --seed 7 --db runs.db --format json att48.tsp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSolve(cmd, opts, args[0])
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.Ants, "ants", aco.DefaultAnts, "tours per worker per iteration")
	f.IntVar(&opts.BestAnts, "best-ants", aco.DefaultBestAnts, "shortest tours that deposit pheromone")
	f.IntVarP(&opts.Iterations, "iterations", "n", aco.DefaultIterations, "iterations")
	f.Float64Var(&opts.DecayRate, "decay", aco.DefaultDecayRate, "coordinator pheromone decay rate in (0,1]")
	f.Float64Var(&opts.Alpha, "alpha", aco.DefaultAlpha, "pheromone exponent")
	f.Float64Var(&opts.Beta, "beta", aco.DefaultBeta, "inverse distance exponent")
	f.IntVarP(&opts.Workers, "workers", "w", aco.DefaultWorkers, "worker colonies")
	f.IntVar(&opts.StartNode, "start", 0, "start node (0-based index)")
	f.Int64Var(&opts.Seed, "seed", 0, "random seed (0 = fixed default)")
	f.IntVar(&opts.Attempts, "attempts", aco.DefaultMaxConstructAttempts, "attempts per tour on a degenerate draw")
	f.StringVar(&opts.Database, "db", "", "SQLite run history (overrides config store)")
	f.BoolVar(&opts.OneBased, "one-based", false, "print TSPLIB 1-based node labels")

	return cmd
}

// applyFlags copies explicitly set flags onto cfg.
func (o *SolveOptions) applyFlags(flags *pflag.FlagSet, cfg *config.Config) {
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "ants":
			cfg.Ants = o.Ants
		case "best-ants":
			cfg.BestAnts = o.BestAnts
		case "iterations":
			cfg.Iterations = o.Iterations
		case "decay":
			cfg.DecayRate = o.DecayRate
		case "alpha":
			cfg.Alpha = o.Alpha
		case "beta":
			cfg.Beta = o.Beta
		case "workers":
			cfg.Workers = o.Workers
		case "start":
			cfg.StartNode = o.StartNode
		case "seed":
			cfg.Seed = o.Seed
		case "attempts":
			cfg.MaxConstructAttempts = o.Attempts
		case "db":
			cfg.Store = o.Database
		}
	})
}

func runSolve(cmd *cobra.Command, opts *SolveOptions, path string) error {
	cfg, err := opts.loadConfig()
	if err != nil {
		return err
	}
	opts.applyFlags(cmd.Flags(), &cfg)
	log, err := opts.newLogger(cfg, cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	problem, err := tsplib.Load(path)
	if err != nil {
		return WrapExitError(ExitCommandError, "load problem", err)
	}
	dist, err := problem.DistanceMatrix()
	if err != nil {
		return WrapExitError(ExitCommandError, "build distances", err)
	}
	name := problem.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	solverOpts := cfg.Options(log)

	var rec *recorder
	if cfg.Store != "" {
		if rec, err = openRecorder(ctx, cfg.Store, name, problem.Dimension, solverOpts, log); err != nil {
			return WrapExitError(ExitFailure, "open run history", err)
		}
		defer rec.close()
		solverOpts.OnReport = rec.onReport
		solverOpts.Logger = log.WithField("run", rec.id)
	}

	started := time.Now()
	res, runErr := aco.Solve(ctx, dist, solverOpts)
	elapsed := time.Since(started)

	if rec != nil {
		if err = rec.finish(res, runErr); err != nil && runErr == nil {
			return WrapExitError(ExitFailure, "record run", err)
		}
	}
	if runErr != nil {
		return runErr
	}

	summary, err := report.FromResult(name, res, cfg.StartNode)
	if err != nil {
		return err
	}
	if rec != nil {
		summary.RunID = rec.id
	}
	if opts.Verbose {
		summary.ElapsedMillis = float64(elapsed.Microseconds()) / 1000
	}

	ropts := report.Options{OneBased: opts.OneBased}
	if opts.Format == "json" {
		return report.JSON(cmd.OutOrStdout(), summary, ropts)
	}

	return report.Text(cmd.OutOrStdout(), summary, ropts)
}

// recorder streams a run into the history store from the coordinator's
// report hook. The hook runs in the Solve caller's goroutine.
type recorder struct {
	ctx   context.Context
	st    *store.Store
	id    string
	log   logrus.FieldLogger
	first error
}

func openRecorder(ctx context.Context, path, name string, nodes int, opts aco.Options, log logrus.FieldLogger) (*recorder, error) {
	st, err := store.Open(path)
	if err != nil {
		return nil, err
	}
	id, err := st.BeginRun(ctx, name, nodes, store.ParamsFrom(opts))
	if err != nil {
		st.Close()
		return nil, err
	}
	log.WithField("run", id).Info("recording run history")

	return &recorder{ctx: ctx, st: st, id: id, log: log.WithField("run", id)}, nil
}

func (r *recorder) onReport(rep aco.Report) {
	if r.first != nil {
		return
	}
	if err := r.st.RecordReport(r.ctx, r.id, rep); err != nil {
		r.first = err
		r.log.WithError(err).Warn("run history: report not recorded")
	}
}

// finish records the outcome; the write uses a fresh context so that a
// cancelled run is still marked failed.
func (r *recorder) finish(res aco.Result, runErr error) error {
	err := r.st.FinishRun(context.Background(), r.id, res, runErr)

	return errors.Join(r.first, err)
}

func (r *recorder) close() {
	if err := r.st.Close(); err != nil {
		r.log.WithError(err).Warn("run history: close")
	}
}
