// Package harness verifies, at build time, which expressions a package's
// exported API accepts and which it rejects.
//
// A type whose value lies in the operations it does not offer has to be
// tested negatively: "a.Add(b) does not compile" is as much a part of the
// contract as "a.Add(2) == b". The harness type-checks such expressions
// and reports whether each one was accepted or rejected.
//
// # Suite Format
//
// Suites are YAML files:
//
//	name: capabilities
//	description: "Which operand pairs the arithmetic accepts"
//	imports:
//	  - github.com/roach88/torsor/torsor
//	declarations:
//	  - var _torsor torsor.Of[int]
//	  - var _int int
//	cases:
//	  - name: position plus offset
//	    expr: _torsor.Add(_int)
//	    want: allowed
//	  - name: position plus position
//	    expr: _torsor.Add(_torsor)
//	    want: rejected
//
// A case has either an expr, evaluated as "_ = expr", or a stmt, used as
// written. Files are checked against a CUE schema and decoded strictly, so
// unknown fields are errors.
//
// # Execution
//
// A suite is rendered as one Go file with one function per case and is
// overlaid into an existing, otherwise empty package (see [DefaultProbeDir])
// through golang.org/x/tools/go/packages. The package is type-checked once
// and each type error is attributed to the case whose lines contain it.
// Because the probe package imports the API like any client would,
// unexported identifiers stay out of reach.
//
// Errors outside every case body mean the shared declarations are broken
// and the run fails with [ErrDeclarations].
//
// # Determinism
//
// Case results are stamped from a logical [Clock] and the text form of a
// [Report] omits compiler wording, so reports can be compared against
// golden files with [AssertGolden].
package harness
