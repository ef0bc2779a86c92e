package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/torsor/internal/harness"
	"github.com/roach88/torsor/internal/store"
)

// CheckOptions holds flags for the check command.
type CheckOptions struct {
	*RootOptions
	ModuleDir string // module whose torsor package is probed
	ProbeDir  string // probe package directory
	DB        string // run history database; empty disables recording
	Filter    string // suite filter (glob pattern on suite name)
}

// SuiteOutcome is one suite's report plus the history ID it was recorded
// under, if any.
type SuiteOutcome struct {
	Source string          `json:"source"`
	RunID  string          `json:"run_id,omitempty"`
	Report *harness.Report `json:"report"`
}

// CheckResult holds the overall check result.
type CheckResult struct {
	Suites []SuiteOutcome `json:"suites"`
	Passed int            `json:"passed"`
	Failed int            `json:"failed"`
	Total  int            `json:"total"`
}

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &CheckOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "check <suite.yaml|dir>...",
		Short: "Run capability suites",
		Long: `Run capability suites against the torsor package.

Each suite case is type-checked and its verdict (allowed or rejected)
compared with the expected one. Directories are searched recursively for
.yaml and .yml files.

Exit codes:
  0 - Every case matched its expectation
  1 - One or more cases did not
  2 - Command error (invalid paths, invalid suite, etc.)

Examples:
  torsor check torsor/testdata/suites
  torsor check capabilities.yaml --filter "cap*"
  torsor check torsor/testdata/suites --db runs.db --format json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.Context(), opts, args, cmd)
		},
	}

	cfg := rootOpts.Config
	moduleDir := cfg.ModuleDir
	if moduleDir == "" {
		moduleDir = "."
	}

	cmd.Flags().StringVar(&opts.ModuleDir, "module-dir", moduleDir, "module root containing the probe package")
	cmd.Flags().StringVar(&opts.ProbeDir, "probe-dir", cfg.ProbeDir, "probe package directory (default "+harness.DefaultProbeDir+")")
	cmd.Flags().StringVar(&opts.DB, "db", cfg.DB, "record runs in this SQLite database")
	cmd.Flags().StringVar(&opts.Filter, "filter", "", "filter suites by glob pattern on name")

	return cmd
}

func runCheck(ctx context.Context, opts *CheckOptions, paths []string, cmd *cobra.Command) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger(cmd.ErrOrStderr())

	suites, err := loadSuites(paths, opts.Filter)
	if err != nil {
		return err
	}

	h, err := harness.New(harness.Options{
		ModuleDir: opts.ModuleDir,
		ProbeDir:  opts.ProbeDir,
		Clock:     harness.NewClock(),
		Logger:    logger,
	})
	if err != nil {
		return WrapExitError(ExitCommandError, "configure harness", err)
	}

	var st *store.Store
	if opts.DB != "" {
		st, err = store.Open(opts.DB)
		if err != nil {
			return WrapExitError(ExitCommandError, "open history database", err)
		}
		defer st.Close()
	}

	result := CheckResult{Suites: make([]SuiteOutcome, 0, len(suites))}
	for _, s := range suites {
		report, err := h.Run(ctx, s)
		if err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("run suite %s", s.Name), err)
		}

		outcome := SuiteOutcome{Source: s.Path, Report: report}
		if st != nil {
			outcome.RunID, err = st.WriteRun(ctx, report, s.Path)
			if err != nil {
				return WrapExitError(ExitCommandError, "record run", err)
			}
			logger.Debug("run recorded", "suite", s.Name, "run", outcome.RunID)
		}

		result.Suites = append(result.Suites, outcome)
		result.Passed += report.Passed
		result.Failed += report.Failed
	}
	result.Total = result.Passed + result.Failed

	f := opts.formatter(cmd)
	if opts.Format == "json" {
		if result.Failed > 0 {
			err = f.encode(CLIResponse{
				Status: "error",
				Data:   result,
				Error: &CLIError{
					Code:    "E_CASE_MISMATCH",
					Message: fmt.Sprintf("%d case(s) failed", result.Failed),
				},
			})
		} else {
			err = f.Success(result)
		}
		if err != nil {
			return err
		}
	} else if err := writeCheckText(cmd.OutOrStdout(), result, opts.Verbose); err != nil {
		return err
	}

	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d case(s) failed", result.Failed))
	}
	return nil
}

// loadSuites loads suites from files and directories in argument order.
func loadSuites(paths []string, filter string) ([]*harness.Suite, error) {
	var suites []*harness.Suite
	for _, p := range paths {
		info, err := os.Stat(p)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, fmt.Sprintf("suite path not found: %s", p), err)
		}

		var loaded []*harness.Suite
		if info.IsDir() {
			loaded, err = harness.LoadSuites(p)
		} else {
			var s *harness.Suite
			s, err = harness.LoadSuite(p)
			loaded = []*harness.Suite{s}
		}
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "load suite", err)
		}

		for _, s := range loaded {
			if filter != "" {
				matched, err := filepath.Match(filter, s.Name)
				if err != nil {
					return nil, WrapExitError(ExitCommandError, "invalid filter pattern", err)
				}
				if !matched {
					continue
				}
			}
			suites = append(suites, s)
		}
	}
	return suites, nil
}

func writeCheckText(w io.Writer, result CheckResult, verbose bool) error {
	if len(result.Suites) == 0 {
		_, err := fmt.Fprintln(w, "No suites found.")
		return err
	}

	for _, o := range result.Suites {
		if err := o.Report.WriteText(w); err != nil {
			return err
		}
		for _, c := range o.Report.Failures() {
			if c.Diagnostic != "" && verbose {
				fmt.Fprintf(w, "  %s: %s\n", c.Name, c.Diagnostic)
			}
		}
		if o.RunID != "" {
			fmt.Fprintf(w, "recorded %s\n", o.RunID)
		}
		fmt.Fprintln(w)
	}

	fmt.Fprintf(w, "Check Summary: %d passed, %d failed, %d total\n", result.Passed, result.Failed, result.Total)
	if result.Failed == 0 {
		fmt.Fprintln(w, "All cases matched")
	} else {
		var names []string
		for _, o := range result.Suites {
			if !o.Report.OK() {
				names = append(names, o.Report.Suite)
			}
		}
		fmt.Fprintf(w, "Failing suites: %s\n", strings.Join(names, ", "))
	}
	return nil
}
