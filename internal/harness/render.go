package harness

import (
	"fmt"
	"strconv"
	"strings"
)

// span is the inclusive line range of a case body in the rendered file.
type span struct {
	start, end int
}

func (s span) contains(line int) bool {
	return line >= s.start && line <= s.end
}

// probeFile is a suite rendered as one Go source file.
type probeFile struct {
	src   []byte
	cases []span
}

// caseAt returns the index of the case whose body holds line, or -1.
func (f *probeFile) caseAt(line int) int {
	for i, s := range f.cases {
		if s.contains(line) {
			return i
		}
	}
	return -1
}

// lineWriter tracks the line number of the next line written.
type lineWriter struct {
	b    strings.Builder
	line int
}

func (w *lineWriter) println(s string) {
	w.b.WriteString(s)
	w.b.WriteByte('\n')
	w.line += strings.Count(s, "\n") + 1
}

// render emits one function per case so that type errors can be attributed
// by line. Declarations live at package level where unused variables are
// not an error.
func render(s *Suite, pkg string) *probeFile {
	w := &lineWriter{line: 1}
	w.println("// Code generated by torsor harness. DO NOT EDIT.")
	w.println("")
	w.println("package " + pkg)

	if len(s.Imports) > 0 {
		w.println("")
		w.println("import (")
		for _, imp := range s.Imports {
			w.println("\t" + strconv.Quote(imp))
		}
		w.println(")")
	}

	for _, d := range s.Declarations {
		w.println("")
		w.println(d)
	}

	f := &probeFile{cases: make([]span, len(s.Cases))}
	for i, c := range s.Cases {
		w.println("")
		w.println(fmt.Sprintf("// %s", strings.ReplaceAll(c.Name, "\n", " ")))
		w.println(fmt.Sprintf("func probe%04d() {", i))
		start := w.line
		w.println(c.Body())
		f.cases[i] = span{start: start, end: w.line - 1}
		w.println("}")
	}

	f.src = []byte(w.b.String())
	return f
}
