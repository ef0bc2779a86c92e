package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/torsor/internal/config"
)

func defaultConfig() config.Config {
	return config.Config{Format: "text", ModuleDir: ".", LogLevel: "warn"}
}

func TestRootCommand(t *testing.T) {
	cmd := NewRootCommand(defaultConfig())
	require.NotNil(t, cmd)
	assert.Equal(t, "torsor", cmd.Use)
	assert.Contains(t, cmd.Long, "Capability suites")
}

func TestCommandPresence(t *testing.T) {
	cmd := NewRootCommand(defaultConfig())

	for _, cmdName := range []string{"check", "history", "version"} {
		t.Run(cmdName, func(t *testing.T) {
			subCmd, _, err := cmd.Find([]string{cmdName})
			require.NoError(t, err, "Command %s should exist", cmdName)
			require.NotNil(t, subCmd)
			assert.Equal(t, cmdName, subCmd.Name())
		})
	}
}

func TestGlobalFlags(t *testing.T) {
	cmd := NewRootCommand(defaultConfig())

	verboseFlag := cmd.PersistentFlags().Lookup("verbose")
	require.NotNil(t, verboseFlag)
	assert.Equal(t, "v", verboseFlag.Shorthand)
	assert.Equal(t, "false", verboseFlag.DefValue)

	formatFlag := cmd.PersistentFlags().Lookup("format")
	require.NotNil(t, formatFlag)
	assert.Equal(t, "text", formatFlag.DefValue)
}

func TestFlagDefaultsFromConfig(t *testing.T) {
	cfg := config.Config{
		Format:    "json",
		DB:        "/var/lib/torsor/runs.db",
		ModuleDir: "/src/torsor",
		ProbeDir:  "/src/torsor/probe",
	}
	cmd := NewRootCommand(cfg)

	assert.Equal(t, "json", cmd.PersistentFlags().Lookup("format").DefValue)

	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)
	assert.Equal(t, cfg.ModuleDir, checkCmd.Flags().Lookup("module-dir").DefValue)
	assert.Equal(t, cfg.ProbeDir, checkCmd.Flags().Lookup("probe-dir").DefValue)
	assert.Equal(t, cfg.DB, checkCmd.Flags().Lookup("db").DefValue)

	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)
	assert.Equal(t, cfg.DB, historyCmd.Flags().Lookup("db").DefValue)
}

func TestCheckCommandFlags(t *testing.T) {
	cmd := NewRootCommand(defaultConfig())
	checkCmd, _, err := cmd.Find([]string{"check"})
	require.NoError(t, err)

	for _, name := range []string{"module-dir", "probe-dir", "db", "filter"} {
		assert.NotNil(t, checkCmd.Flags().Lookup(name), "missing flag %s", name)
	}
	assert.Equal(t, ".", checkCmd.Flags().Lookup("module-dir").DefValue)
	assert.Equal(t, "", checkCmd.Flags().Lookup("db").DefValue)
}

func TestHistoryCommandFlags(t *testing.T) {
	cmd := NewRootCommand(defaultConfig())
	historyCmd, _, err := cmd.Find([]string{"history"})
	require.NoError(t, err)

	limitFlag := historyCmd.Flags().Lookup("limit")
	require.NotNil(t, limitFlag)
	assert.Equal(t, "20", limitFlag.DefValue)
	assert.NotNil(t, historyCmd.Flags().Lookup("run"))
	assert.NotNil(t, historyCmd.Flags().Lookup("suite"))
}

func TestFormatValidation(t *testing.T) {
	tests := []struct {
		format string
		valid  bool
	}{
		{"text", true},
		{"json", true},
		{"yaml", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.valid, isValidFormat(tt.format), "format %q", tt.format)
	}
}

func TestFormatValidationIntegration(t *testing.T) {
	cmd := NewRootCommand(defaultConfig())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"version", "--format", "xml"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestInvalidLogLevel(t *testing.T) {
	cfg := defaultConfig()
	cfg.LogLevel = "chatty"
	cmd := NewRootCommand(cfg)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"version"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestVerboseOverridesLogLevel(t *testing.T) {
	opts := &RootOptions{Config: config.Config{LogLevel: "error"}}

	var buf bytes.Buffer
	opts.Logger(&buf).Debug("hidden")
	assert.Empty(t, buf.String())

	opts.Verbose = true
	opts.Logger(&buf).Debug("shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestVersionCommand(t *testing.T) {
	buf := &bytes.Buffer{}
	cmd := NewRootCommand(defaultConfig())
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "torsor "+Version)
}
