package torsor_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/torsor/internal/harness"
)

// TestCapabilities type-checks the suites in testdata/suites through the
// go command and pins which expressions the API accepts.
func TestCapabilities(t *testing.T) {
	if testing.Short() {
		t.Skip("type-checks through the go command")
	}

	suites, err := harness.LoadSuites("testdata/suites")
	require.NoError(t, err)
	require.NotEmpty(t, suites)

	for _, s := range suites {
		t.Run(s.Name, func(t *testing.T) {
			report, err := harness.Run(context.Background(), s, harness.Options{ModuleDir: ".."})
			require.NoError(t, err)

			for _, c := range report.Failures() {
				assert.Fail(t, "unexpected verdict",
					"case %q: want %s, got %s: %s", c.Name, c.Want, c.Got, c.Diagnostic)
			}
			harness.AssertGolden(t, s.Name, report)
		})
	}
}
