package cli

import (
	"fmt"
	"io"
	"slices"

	"github.com/katalvlaran/antcolony/config"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Config  string // YAML file, optional
	EnvFile string // dotenv file, optional
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the antcolony command tree.
func NewRootCommand(version string) *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "antcolony",
		Short: "Ant colony optimization for closed tours",
		Long: `antcolony searches for a short closed tour through every node of a
TSPLIB instance with cooperating ant colonies: each worker evolves its own
pheromone table and a coordinator keeps the best tour any worker reports.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return WrapExitError(ExitCommandError, "invalid flag",
					fmt.Errorf("format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVarP(&opts.Config, "config", "c", "", "YAML configuration file")
	cmd.PersistentFlags().StringVar(&opts.EnvFile, "env-file", ".env", "dotenv file with ACO_* overrides")

	cmd.AddCommand(NewSolveCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewVersionCommand(version))

	return cmd
}

// loadConfig resolves defaults, the config file and the environment.
func (o *RootOptions) loadConfig() (config.Config, error) {
	cfg := config.Default()
	if o.Config != "" {
		var err error
		if cfg, err = config.Load(o.Config); err != nil {
			return cfg, WrapExitError(ExitCommandError, "load config", err)
		}
	}
	env, err := config.Environment(o.EnvFile)
	if err != nil {
		return cfg, WrapExitError(ExitCommandError, "read environment", err)
	}
	if err = cfg.ApplyEnv(env); err != nil {
		return cfg, WrapExitError(ExitCommandError, "apply environment", err)
	}

	return cfg, nil
}

// newLogger builds the run logger: stderr-style writer w, level from cfg
// unless --verbose, text or JSON formatter.
func (o *RootOptions) newLogger(cfg config.Config, w io.Writer) (*logrus.Logger, error) {
	if err := cfg.Validate(); err != nil {
		return nil, WrapExitError(ExitCommandError, "invalid config", err)
	}
	log := logrus.New()
	log.SetOutput(w)
	level, _ := logrus.ParseLevel(cfg.LogLevel) // checked by Validate
	if o.Verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	if cfg.LogFormat == "json" {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	}

	return log, nil
}
