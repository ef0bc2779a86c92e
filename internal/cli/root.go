package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/torsor/internal/config"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Config supplies flag defaults; flags win.
	Config config.Config
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the torsor CLI.
func NewRootCommand(cfg config.Config) *cobra.Command {
	opts := &RootOptions{Config: cfg}

	cmd := &cobra.Command{
		Use:   "torsor",
		Short: "torsor - positions and offsets, checked by the compiler",
		Long: `Check that the torsor API accepts exactly the expressions it should.

Capability suites list Go expressions and statements together with whether
the type checker must allow or reject them. Runs can be recorded in a
SQLite history database.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if _, err := opts.logLevel(); err != nil {
				return WrapExitError(ExitCommandError, "invalid log level", err)
			}
			return nil
		},
	}

	format := cfg.Format
	if format == "" {
		format = "text"
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", format, "output format (json|text)")

	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewHistoryCommand(opts))
	cmd.AddCommand(NewVersionCommand(opts))

	return cmd
}

// Logger returns a text logger on w. --verbose forces debug level,
// otherwise the configured level applies.
func (o *RootOptions) Logger(w io.Writer) *slog.Logger {
	level, err := o.logLevel()
	if err != nil {
		level = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) logLevel() (slog.Level, error) {
	if o.Verbose {
		return slog.LevelDebug, nil
	}
	if o.Config.LogLevel == "" {
		return slog.LevelWarn, nil
	}
	return o.Config.Level()
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout(), Verbose: o.Verbose}
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	return slices.Contains(ValidFormats, format)
}
