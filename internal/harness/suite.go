package harness

import (
	"bytes"
	"fmt"
	"go/parser"
	"go/token"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/text/unicode/norm"
	"gopkg.in/yaml.v3"
)

// Suite is a catalogue of expressions whose acceptance by the type checker
// is part of an API contract.
type Suite struct {
	// Name uniquely identifies this suite. It names the golden file.
	Name string `yaml:"name"`

	// Description explains what contract the suite pins down.
	Description string `yaml:"description"`

	// Imports are the import paths available to declarations and cases.
	// Every import must be used by at least one of them.
	Imports []string `yaml:"imports,omitempty"`

	// Declarations are package-level Go declarations shared by all cases,
	// typically the operand variables: "var _torsor torsor.Of[int]".
	Declarations []string `yaml:"declarations,omitempty"`

	// Cases are evaluated in order.
	Cases []Case `yaml:"cases"`

	// Path is the file the suite was loaded from, if any.
	Path string `yaml:"-"`
}

// Case is a single probe.
//
// Exactly one of Expr and Stmt is set. An Expr is evaluated as "_ = Expr";
// a Stmt is placed in a function body as written. Local variables in a Stmt
// must be used, or the case is rejected for that reason alone.
type Case struct {
	Name string  `yaml:"name"`
	Expr string  `yaml:"expr,omitempty"`
	Stmt string  `yaml:"stmt,omitempty"`
	Want Verdict `yaml:"want"`
	Note string  `yaml:"note,omitempty"`
}

// Body returns the Go statement list for the case.
func (c Case) Body() string {
	if c.Expr != "" {
		return "_ = " + c.Expr
	}
	return c.Stmt
}

// LoadSuite reads a suite file, validates it against the suite schema and
// checks that every case body parses as Go.
func LoadSuite(path string) (*Suite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read suite file: %w", err)
	}

	if err := validateSchema(path, data); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	// Strict decode catches anything the schema lets through by accident.
	var suite Suite
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&suite); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	suite.Path = path

	if err := ValidateSuite(&suite); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	return &suite, nil
}

// LoadSuites loads every .yaml and .yml file under dir in lexical order.
func LoadSuites(dir string) ([]*Suite, error) {
	var suites []*Suite
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		ext := filepath.Ext(path)
		if ext != ".yaml" && ext != ".yml" {
			return nil
		}
		s, err := LoadSuite(path)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		suites = append(suites, s)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return suites, nil
}

// ValidateSuite checks the invariants the schema cannot express and
// normalizes names to NFC so that visually identical names compare equal.
func ValidateSuite(s *Suite) error {
	s.Name = norm.NFC.String(s.Name)
	if s.Name == "" {
		return &SuiteError{Field: "name", Message: "name is required"}
	}
	if len(s.Cases) == 0 {
		return &SuiteError{Field: "cases", Message: "at least one case is required"}
	}

	for i, d := range s.Declarations {
		if err := parseDecl(d); err != nil {
			return &SuiteError{
				Field:   fmt.Sprintf("declarations[%d]", i),
				Message: fmt.Sprintf("declaration does not parse: %v", err),
				Err:     ErrDeclarations,
			}
		}
	}

	seen := make(map[string]bool, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		c.Name = norm.NFC.String(c.Name)
		field := fmt.Sprintf("cases[%d]", i)

		if c.Name == "" {
			return &SuiteError{Field: field + ".name", Message: "name is required"}
		}
		if seen[c.Name] {
			return &SuiteError{Field: field + ".name", Message: fmt.Sprintf("duplicate case name %q", c.Name)}
		}
		seen[c.Name] = true

		if (c.Expr == "") == (c.Stmt == "") {
			return &SuiteError{Field: field, Message: fmt.Sprintf("case %q must set exactly one of expr and stmt", c.Name)}
		}
		if c.Want != Allowed && c.Want != Rejected {
			return &SuiteError{Field: field + ".want", Message: fmt.Sprintf("want must be %q or %q, got %q", Allowed, Rejected, c.Want)}
		}
		if err := parseBody(c.Body()); err != nil {
			return &SuiteError{Field: field, Message: fmt.Sprintf("case %q does not parse: %v", c.Name, err)}
		}
	}
	return nil
}

// parseDecl checks that d parses as package-level declarations.
func parseDecl(d string) error {
	src := "package p\n" + d + "\n"
	_, err := parser.ParseFile(token.NewFileSet(), "decl.go", src, parser.SkipObjectResolution)
	return err
}

// parseBody rejects syntax errors up front. A syntax error in the rendered
// probe file would stop type checking for every case, not just this one.
func parseBody(body string) error {
	src := "package p\nfunc f() {\n" + body + "\n}\n"
	_, err := parser.ParseFile(token.NewFileSet(), "case.go", src, parser.SkipObjectResolution)
	return err
}
