package harness

import (
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// WriteText writes the report in the stable text form used for golden
// files. Diagnostics are left out because their wording belongs to the
// toolchain, not to the API under test.
func (r *Report) WriteText(w io.Writer) error {
	var b strings.Builder
	fmt.Fprintf(&b, "suite %s\n", r.Suite)
	for _, c := range r.Cases {
		status := "ok  "
		if !c.Pass {
			status = "FAIL"
		}
		fmt.Fprintf(&b, "%s %03d %-8s %s\n", status, c.Seq, c.Got, c.Name)
	}
	fmt.Fprintf(&b, "passed %d failed %d\n", r.Passed, r.Failed)
	_, err := io.WriteString(w, b.String())
	return err
}

// Text returns the WriteText form as a string.
func (r *Report) Text() string {
	var b strings.Builder
	_ = r.WriteText(&b)
	return b.String()
}

// AssertGolden compares the report against testdata/golden/{name}.golden.
//
// To regenerate golden files, run the calling package's tests with -update.
func AssertGolden(t *testing.T, name string, report *Report) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(report.Text()))
}
