package harness

// Verdict is what the type checker made of a case.
type Verdict string

// Verdict constants.
const (
	Allowed  Verdict = "allowed"
	Rejected Verdict = "rejected"
)

// CaseResult is the outcome of a single case.
type CaseResult struct {
	// Seq is the logical time at which the case was evaluated.
	// Cases are evaluated in suite order, starting at 1.
	Seq int64 `json:"seq"`

	Name string  `json:"name"`
	Want Verdict `json:"want"`
	Got  Verdict `json:"got"`

	// Pass is true when Got matches Want.
	Pass bool `json:"pass"`

	// Diagnostic is the first type error reported inside the case body.
	// Empty when the case type-checked. The wording comes from go/types and
	// may change between toolchains.
	Diagnostic string `json:"diagnostic,omitempty"`
}

// Report is the outcome of running a suite.
type Report struct {
	Suite  string       `json:"suite"`
	Cases  []CaseResult `json:"cases"`
	Passed int          `json:"passed"`
	Failed int          `json:"failed"`
}

// NewReport creates an empty report for the named suite.
func NewReport(suite string) *Report {
	return &Report{
		Suite: suite,
		Cases: []CaseResult{},
	}
}

// Add records a case result and updates the totals.
func (r *Report) Add(c CaseResult) {
	r.Cases = append(r.Cases, c)
	if c.Pass {
		r.Passed++
	} else {
		r.Failed++
	}
}

// OK reports whether every case matched its expectation.
func (r *Report) OK() bool {
	return r.Failed == 0
}

// Failures returns the cases that did not match their expectation.
func (r *Report) Failures() []CaseResult {
	var out []CaseResult
	for _, c := range r.Cases {
		if !c.Pass {
			out = append(out, c)
		}
	}
	return out
}
