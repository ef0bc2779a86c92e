// torsor runs capability suites against the torsor package and keeps a
// history of their verdicts.
//
// Usage:
//
//	torsor check <suite.yaml|dir>...   Type-check suites, exit 1 on mismatch
//	torsor history --db runs.db        List recorded runs
//	torsor version                     Print version info
//
// Flag defaults come from TORSOR_* environment variables.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/torsor/internal/cli"
	"github.com/roach88/torsor/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "torsor: %v\n", err)
		os.Exit(cli.ExitCommandError)
	}

	if err := cli.NewRootCommand(cfg).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "torsor: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
