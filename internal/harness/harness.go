package harness

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"regexp"
	"strings"

	"golang.org/x/tools/go/packages"
)

var (
	// ErrDeclarations is returned when the suite's shared declarations or
	// imports do not type-check. No case verdict would be meaningful.
	ErrDeclarations = errors.New("suite declarations do not type-check")

	// ErrProbePackage is returned when the probe package cannot be loaded.
	ErrProbePackage = errors.New("probe package could not be loaded")
)

// DefaultProbeDir is the probe package, relative to the module root.
const DefaultProbeDir = "internal/harness/probe"

// Options configures a run.
type Options struct {
	// ModuleDir is the root of the module whose API is probed.
	// Defaults to the current directory.
	ModuleDir string

	// ProbeDir is an existing package directory the rendered suite is
	// overlaid into. Relative paths are resolved against ModuleDir.
	// Defaults to DefaultProbeDir.
	ProbeDir string

	// ProbePackage is the package name declared in ProbeDir.
	// Defaults to "probe".
	ProbePackage string

	// Env overrides the environment of the go command. Nil inherits.
	Env []string

	// Clock stamps case results. Defaults to a fresh clock per run.
	Clock *Clock

	// Logger receives progress at debug level. Defaults to discarding.
	Logger *slog.Logger
}

func (o Options) withDefaults() (Options, error) {
	if o.ModuleDir == "" {
		o.ModuleDir = "."
	}
	if o.ProbeDir == "" {
		o.ProbeDir = DefaultProbeDir
	}
	if !filepath.IsAbs(o.ProbeDir) {
		o.ProbeDir = filepath.Join(o.ModuleDir, o.ProbeDir)
	}
	abs, err := filepath.Abs(o.ProbeDir)
	if err != nil {
		return o, fmt.Errorf("resolve probe dir: %w", err)
	}
	o.ProbeDir = abs
	if o.ProbePackage == "" {
		o.ProbePackage = "probe"
	}
	if o.Clock == nil {
		o.Clock = NewClock()
	}
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return o, nil
}

// Harness type-checks suites against a probe package.
type Harness struct {
	opts   Options
	logger *slog.Logger
}

// New creates a harness. See Options for defaults.
func New(opts Options) (*Harness, error) {
	opts, err := opts.withDefaults()
	if err != nil {
		return nil, err
	}
	return &Harness{opts: opts, logger: opts.Logger}, nil
}

// Run is shorthand for New(opts) followed by Harness.Run.
func Run(ctx context.Context, s *Suite, opts Options) (*Report, error) {
	h, err := New(opts)
	if err != nil {
		return nil, err
	}
	return h.Run(ctx, s)
}

// Run type-checks every case of s and compares each verdict with the
// case's expectation.
//
// The suite is rendered as a single file and type-checked once. Each type
// error is attributed to the case whose body contains it; a case with no
// errors is Allowed, a case with at least one is Rejected.
func (h *Harness) Run(ctx context.Context, s *Suite) (*Report, error) {
	if err := ValidateSuite(s); err != nil {
		return nil, fmt.Errorf("invalid suite: %w", err)
	}

	file := render(s, h.opts.ProbePackage)
	overlay := filepath.Join(h.opts.ProbeDir, "zz_probe_"+fileSafe(s.Name)+".go")

	h.logger.Debug("loading probe package",
		"suite", s.Name,
		"dir", h.opts.ProbeDir,
		"cases", len(s.Cases),
	)

	cfg := &packages.Config{
		Context: ctx,
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedSyntax | packages.NeedTypes | packages.NeedTypesInfo,
		Dir:     h.opts.ProbeDir,
		Env:     h.opts.Env,
		Overlay: map[string][]byte{overlay: file.src},
	}
	pkgs, err := packages.Load(cfg, ".")
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProbePackage, err)
	}
	if len(pkgs) != 1 {
		return nil, fmt.Errorf("%w: expected 1 package in %s, got %d", ErrProbePackage, h.opts.ProbeDir, len(pkgs))
	}
	pkg := pkgs[0]

	if err := loadError(pkg); err != nil {
		return nil, err
	}

	diags := make([][]string, len(s.Cases))
	for _, terr := range pkg.TypeErrors {
		pos := terr.Fset.Position(terr.Pos)
		i := -1
		if sameFile(pos.Filename, overlay) {
			i = file.caseAt(pos.Line)
		}
		if i < 0 {
			return nil, fmt.Errorf("%w: %s", ErrDeclarations, terr.Error())
		}
		diags[i] = append(diags[i], terr.Msg)
	}

	report := NewReport(s.Name)
	for i, c := range s.Cases {
		got := Allowed
		diagnostic := ""
		if len(diags[i]) > 0 {
			got = Rejected
			diagnostic = diags[i][0]
		}
		result := CaseResult{
			Seq:        Ticks(h.opts.Clock.Next()),
			Name:       c.Name,
			Want:       c.Want,
			Got:        got,
			Pass:       got == c.Want,
			Diagnostic: diagnostic,
		}
		report.Add(result)

		h.logger.Debug("case evaluated",
			"suite", s.Name,
			"case", c.Name,
			"want", c.Want,
			"got", got,
		)
		if !result.Pass {
			h.logger.Warn("case mismatch",
				"suite", s.Name,
				"case", c.Name,
				"want", c.Want,
				"got", got,
				"diagnostic", diagnostic,
			)
		}
	}

	h.logger.Info("suite finished",
		"suite", s.Name,
		"passed", report.Passed,
		"failed", report.Failed,
	)
	return report, nil
}

// loadError reports problems that are not type errors: a missing package,
// a broken go.mod, or a parse error. Type errors are returned as
// packages.TypeError too, and are left to the caller.
func loadError(pkg *packages.Package) error {
	var msgs []string
	for _, e := range pkg.Errors {
		if e.Kind == packages.TypeError {
			continue
		}
		msgs = append(msgs, e.Error())
	}
	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrProbePackage, strings.Join(msgs, "; "))
	}
	if pkg.Types == nil {
		return fmt.Errorf("%w: no type information for %s", ErrProbePackage, pkg.PkgPath)
	}
	return nil
}

// sameFile compares by base name as well, since the go command may report
// the overlay under a symlink-resolved directory.
func sameFile(a, b string) bool {
	if filepath.Clean(a) == filepath.Clean(b) {
		return true
	}
	return filepath.Base(a) == filepath.Base(b)
}

var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_]+`)

func fileSafe(name string) string {
	return strings.Trim(unsafeChars.ReplaceAllString(strings.ToLower(name), "_"), "_")
}
