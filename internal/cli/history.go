package cli

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/katalvlaran/antcolony/report"
	"github.com/katalvlaran/antcolony/store"
	"github.com/spf13/cobra"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	Database string
	Limit    int
	Run      string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded runs",
		Long: `List runs recorded by "solve --db", newest first, or show the
reports of one run with --run.

Example:
  antcolony history --db runs.db --limit 5
  antcolony history --db runs.db --run 0192f0c4-7d1e-7a3b-8c55-2f4e6a8b9c01`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "SQLite run history (defaults to config store)")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum runs to list (0 = all)")
	cmd.Flags().StringVar(&opts.Run, "run", "", "show the reports of one run")

	return cmd
}

type historyRun struct {
	ID        string       `json:"id"`
	Instance  string       `json:"instance"`
	Nodes     int          `json:"nodes"`
	Status    string       `json:"status"`
	StartedAt time.Time    `json:"started_at"`
	Distance  *float64     `json:"best_distance,omitempty"`
	Tour      []int        `json:"best_tour,omitempty"`
	Error     string       `json:"error,omitempty"`
	Params    store.Params `json:"params"`
}

func runHistory(cmd *cobra.Command, opts *HistoryOptions) error {
	path := opts.Database
	if path == "" {
		cfg, err := opts.loadConfig()
		if err != nil {
			return err
		}
		path = cfg.Store
	}
	if path == "" {
		return WrapExitError(ExitCommandError, "history", fmt.Errorf("no database: use --db or set store in the config"))
	}

	st, err := store.Open(path)
	if err != nil {
		return WrapExitError(ExitFailure, "open run history", err)
	}
	defer st.Close()

	if opts.Run != "" {
		return showRun(cmd, opts, st)
	}

	runs, err := st.Runs(cmd.Context(), opts.Limit)
	if err != nil {
		return WrapExitError(ExitFailure, "list runs", err)
	}

	out := make([]historyRun, 0, len(runs))
	for _, r := range runs {
		h := historyRun{
			ID:        r.ID,
			Instance:  r.Instance,
			Nodes:     r.Nodes,
			Status:    r.Status,
			StartedAt: r.StartedAt.UTC(),
			Tour:      r.BestTour,
			Error:     r.Error,
			Params:    r.Params,
		}
		if !math.IsNaN(r.BestDistance) {
			d := r.BestDistance
			h.Distance = &d
		}
		out = append(out, h)
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tINSTANCE\tNODES\tSTATUS\tBEST\tSTARTED")
	for _, h := range out {
		best := "-"
		if h.Distance != nil {
			best = strconv.FormatFloat(*h.Distance, 'f', -1, 64)
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\t%s\t%s\t%s\n",
			h.ID, h.Instance, h.Nodes, h.Status, best, h.StartedAt.Format(time.RFC3339))
	}

	return tw.Flush()
}

func showRun(cmd *cobra.Command, opts *HistoryOptions, st *store.Store) error {
	if _, err := st.Get(cmd.Context(), opts.Run); err != nil {
		return WrapExitError(ExitCommandError, "show run", err)
	}
	reports, err := st.Reports(cmd.Context(), opts.Run)
	if err != nil {
		return WrapExitError(ExitFailure, "show run", err)
	}

	if opts.Format == "json" {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(reports)
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ITERATION\tWORKER\tDISTANCE\tTOUR")
	for _, r := range reports {
		fmt.Fprintf(tw, "%d\t%d\t%s\t%s\n", r.Iteration, r.Worker,
			strconv.FormatFloat(r.Result.Distance, 'f', -1, 64), report.Path(r.Result.Tour.Nodes(), report.Options{}))
	}

	return tw.Flush()
}
