package harness

import (
	"fmt"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/errors"
	"cuelang.org/go/cue/token"
	cueyaml "cuelang.org/go/encoding/yaml"
)

// suiteSchema is the shape of a suite file. Definitions are closed, so
// misspelled fields are reported with their position.
const suiteSchema = `
#Verdict: "allowed" | "rejected"

#Case: {
	name!: string & !=""
	expr?: string & !=""
	stmt?: string & !=""
	want!: #Verdict
	note?: string
}

#Suite: {
	name!:         string & !=""
	description!:  string & !=""
	imports?:      [...string]
	declarations?: [...string]
	cases!:        [#Case, ...#Case]
}
`

// SuiteError describes an invalid suite file.
type SuiteError struct {
	Field   string
	Message string
	Pos     token.Pos

	// Err classifies the problem, e.g. ErrDeclarations. May be nil.
	Err error
}

func (e *SuiteError) Unwrap() error {
	return e.Err
}

func (e *SuiteError) Error() string {
	if e.Pos.IsValid() {
		return fmt.Sprintf("%s:%d:%d: %s: %s",
			e.Pos.Filename(), e.Pos.Line(), e.Pos.Column(),
			e.Field, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// validateSchema unifies the YAML document with #Suite.
func validateSchema(filename string, data []byte) error {
	file, err := cueyaml.Extract(filename, data)
	if err != nil {
		return formatCUEError(err)
	}

	ctx := cuecontext.New()
	schema := ctx.CompileString(suiteSchema, cue.Filename("suite.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile suite schema: %w", err)
	}

	doc := ctx.BuildFile(file)
	if err := doc.Err(); err != nil {
		return formatCUEError(err)
	}

	v := schema.LookupPath(cue.ParsePath("#Suite")).Unify(doc)
	return formatCUEError(v.Validate(cue.Concrete(true)))
}

// formatCUEError reduces a CUE error list to its first error, keeping the
// position in the suite file when there is one.
func formatCUEError(err error) error {
	if err == nil {
		return nil
	}

	errs := errors.Errors(err)
	if len(errs) == 0 {
		return err
	}

	first := errs[0]
	field := "schema"
	if path := first.Path(); len(path) > 0 {
		field = strings.Join(path, ".")
	}

	format, args := first.Msg()
	e := &SuiteError{Field: field, Message: fmt.Sprintf(format, args...)}
	if positions := errors.Positions(first); len(positions) > 0 {
		e.Pos = positions[0]
	}
	return e
}
