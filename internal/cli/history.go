package cli

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/roach88/torsor/internal/store"
)

// HistoryOptions holds flags for the history command.
type HistoryOptions struct {
	*RootOptions
	DB    string
	Suite string
	Limit  int
	RunID  string
	Delete string
}

// NewHistoryCommand creates the history command.
func NewHistoryCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &HistoryOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded suite runs",
		Long: `List suite runs recorded by "torsor check --db", newest first.

With --run, print the case results of a single run instead. With
--delete, remove a run and its case results.

Examples:
  torsor history --db runs.db
  torsor history --db runs.db --suite capabilities --limit 5
  torsor history --db runs.db --run 01963a6e-...
  torsor history --db runs.db --delete 01963a6e-...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHistory(cmd.Context(), opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DB, "db", rootOpts.Config.DB, "run history database (required)")
	cmd.Flags().StringVar(&opts.Suite, "suite", "", "only runs of this suite")
	cmd.Flags().IntVar(&opts.Limit, "limit", 20, "maximum number of runs (0 = all)")
	cmd.Flags().StringVar(&opts.RunID, "run", "", "show the case results of one run")
	cmd.Flags().StringVar(&opts.Delete, "delete", "", "delete one run")
	cmd.MarkFlagsMutuallyExclusive("run", "delete")

	return cmd
}

func runHistory(ctx context.Context, opts *HistoryOptions, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	if opts.DB == "" {
		return NewExitError(ExitCommandError, "--db is required (or set TORSOR_DB)")
	}

	st, err := store.Open(opts.DB)
	if err != nil {
		return WrapExitError(ExitCommandError, "open history database", err)
	}
	defer st.Close()

	f := opts.formatter(cmd)

	if opts.Delete != "" {
		return deleteRun(ctx, st, opts.Delete, f)
	}

	if opts.RunID != "" {
		report, err := st.ReadReport(ctx, opts.RunID)
		if errors.Is(err, sql.ErrNoRows) {
			return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", opts.RunID))
		}
		if err != nil {
			return WrapExitError(ExitCommandError, "read run", err)
		}
		if opts.Format == "json" {
			return f.Success(report)
		}
		return report.WriteText(cmd.OutOrStdout())
	}

	runs, err := st.ListRuns(ctx, opts.Suite, opts.Limit)
	if err != nil {
		return WrapExitError(ExitCommandError, "list runs", err)
	}
	if opts.Format == "json" {
		return f.Success(runs)
	}
	return writeRunsText(cmd.OutOrStdout(), runs)
}

// deleteRun removes a run after checking it exists, so that a mistyped ID
// is reported instead of silently ignored.
func deleteRun(ctx context.Context, st *store.Store, id string, f *OutputFormatter) error {
	run, err := st.ReadRun(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return NewExitError(ExitCommandError, fmt.Sprintf("run not found: %s", id))
	}
	if err != nil {
		return WrapExitError(ExitCommandError, "read run", err)
	}
	if err := st.DeleteRun(ctx, id); err != nil {
		return WrapExitError(ExitCommandError, "delete run", err)
	}
	if f.Format == "json" {
		return f.Success(run)
	}
	return f.Success(fmt.Sprintf("deleted %s (%s)", run.ID, run.Suite))
}

func writeRunsText(w io.Writer, runs []store.Run) error {
	if len(runs) == 0 {
		_, err := fmt.Fprintln(w, "No runs recorded.")
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "RUN\tRECORDED\tSUITE\tPASSED\tFAILED")
	for _, r := range runs {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%d\n", r.ID, r.RecordedAt, r.Suite, r.Passed, r.Failed)
	}
	return tw.Flush()
}
