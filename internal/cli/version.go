package cli

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

// VersionInfo is the payload of the version command.
type VersionInfo struct {
	Version string `json:"version"`
	Go      string `json:"go"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{Version: Version, Go: runtime.Version()}
			if rootOpts.Format == "json" {
				return rootOpts.formatter(cmd).Success(info)
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "torsor %s (%s)\n", info.Version, info.Go)
			return err
		},
	}
}
